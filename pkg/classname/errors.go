package classname

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedSpan is returned for an annotation whose span is empty,
	// reversed, or outside the text.
	ErrMalformedSpan = errors.New("malformed span")

	// ErrPlaceholderNotFound is returned in strict mode when a frozen
	// placeholder cannot be located after re-wrapping.
	ErrPlaceholderNotFound = errors.New("placeholder not found")

	// ErrInvalidOptions is returned for an unusable render configuration.
	ErrInvalidOptions = errors.New("invalid options")
)

// SpanError describes a malformed annotation.
type SpanError struct {
	Node    ClassNameNode
	Message string
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("%s node %s: %s", e.Node.Kind, e.Node.Span, e.Message)
}

// Unwrap returns ErrMalformedSpan.
func (e *SpanError) Unwrap() error {
	return ErrMalformedSpan
}

// PlaceholderError describes a frozen child that could not be restored.
type PlaceholderError struct {
	// Placeholder is the frozen text that was searched for.
	Placeholder string

	// Span is the child's span in the source.
	Span Span
}

func (e *PlaceholderError) Error() string {
	return fmt.Sprintf("placeholder for %s not found in re-wrapped parent: %q", e.Span, e.Placeholder)
}

// Unwrap returns ErrPlaceholderNotFound.
func (e *PlaceholderError) Unwrap() error {
	return ErrPlaceholderNotFound
}

// ValidateSpans checks that every annotation lies inside a text of the
// given length and is long enough to hold its delimiters.
// Returns the first problem found.
func ValidateSpans(nodes []ClassNameNode, textLen int) error {
	for _, node := range nodes {
		switch {
		case node.Span.Start < 0:
			return &SpanError{Node: node, Message: "start offset is negative"}
		case node.Span.Start >= node.Span.End:
			return &SpanError{Node: node, Message: "start offset is not before end offset"}
		case node.Span.End > textLen:
			return &SpanError{
				Node:    node,
				Message: fmt.Sprintf("end offset %d exceeds text length %d", node.Span.End, textLen),
			}
		case node.Kind.IsLiteral() && node.Delimiter != DelimiterNone && node.Span.Len() < 2:
			return &SpanError{Node: node, Message: "literal is shorter than its delimiters"}
		}
	}
	return nil
}
