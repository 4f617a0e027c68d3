// Package classname rewrites class name literals embedded in markup so they
// wrap at a configured width, leaving the rest of the text byte-identical.
//
// Callers supply already-formatted source text, a flat list of annotated
// spans, and a re-wrap callback. The package recovers nesting from span
// containment, protects nested dynamic content behind length-preserving
// placeholders, re-wraps each literal, picks its quotes and splices the
// result back in place.
package classname

import "fmt"

// Span is a half-open [Start, End) byte range into a text snapshot.
type Span struct {
	Start int
	End   int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Encloses reports whether s strictly contains other: other starts after s
// and ends no later than s.
func (s Span) Encloses(other Span) bool {
	return s.Start < other.Start && other.End <= s.End
}

// Shift returns the span moved by delta bytes.
func (s Span) Shift(delta int) Span {
	return Span{Start: s.Start + delta, End: s.End + delta}
}

func (s Span) String() string {
	return fmt.Sprintf("[%d:%d]", s.Start, s.End)
}

// Kind identifies the variant of a ClassNameNode.
type Kind int

const (
	// KindUnknown is a raw literal not classified by context.
	KindUnknown Kind = iota

	// KindAttribute is a literal bound directly to a markup attribute.
	KindAttribute

	// KindExpression is a literal in a host-language expression position.
	KindExpression

	// KindPreserving is a ternary or logical frame. It carries no literal
	// content of its own and only anchors its literal descendants.
	KindPreserving
)

var kindNames = map[Kind]string{
	KindUnknown:    "unknown",
	KindAttribute:  "attribute",
	KindExpression: "expression",
	KindPreserving: "preserving",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a kind name to a Kind.
func ParseKind(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown node kind %q", name)
}

// IsLiteral reports whether nodes of this kind render quoted text.
func (k Kind) IsLiteral() bool {
	return k != KindPreserving
}

// Delimiter is the quote character enclosing a literal.
type Delimiter int

const (
	// DelimiterNone marks an unquoted literal. It is never given quotes.
	DelimiterNone Delimiter = iota

	// DelimiterSingle is a single-quoted string.
	DelimiterSingle

	// DelimiterDouble is a double-quoted string.
	DelimiterDouble

	// DelimiterBacktick is a template literal.
	DelimiterBacktick
)

// Char returns the delimiter character, or "" for DelimiterNone.
func (d Delimiter) Char() string {
	switch d {
	case DelimiterSingle:
		return "'"
	case DelimiterDouble:
		return `"`
	case DelimiterBacktick:
		return "`"
	default:
		return ""
	}
}

func (d Delimiter) String() string {
	switch d {
	case DelimiterSingle:
		return "single"
	case DelimiterDouble:
		return "double"
	case DelimiterBacktick:
		return "backtick"
	default:
		return "none"
	}
}

// DelimiterOf returns the delimiter for a quote character.
func DelimiterOf(c byte) Delimiter {
	switch c {
	case '\'':
		return DelimiterSingle
	case '"':
		return DelimiterDouble
	case '`':
		return DelimiterBacktick
	default:
		return DelimiterNone
	}
}

// ClassNameNode is one annotated span reported by a span collector.
// Fields that do not apply to the node's Kind are ignored.
type ClassNameNode struct {
	Kind      Kind
	Span      Span
	Delimiter Delimiter

	// Element is the owning element name of an attribute.
	Element string

	// OnTagLine is set when an attribute starts on the same source line
	// as its owning tag.
	OnTagLine bool

	// SameLineAsName is set when an expression starts on the same source
	// line as the name that owns it.
	SameLineAsName bool

	// ObjectKey marks a literal used as an object property key.
	ObjectKey bool

	// TernaryOperand marks a literal that is a ternary branch.
	TernaryOperand bool

	// BoundAttribute marks a literal inside a bound or templated attribute
	// (for example :class or [ngClass]).
	BoundAttribute bool

	// PreserveDelimiter forbids changing the literal's delimiter.
	PreserveDelimiter bool

	HasSingleQuote bool
	HasDoubleQuote bool
	HasBacktick    bool
}

// contains reports whether the node's content was flagged as containing
// the quote character of d.
func (n *ClassNameNode) contains(d Delimiter) bool {
	switch d {
	case DelimiterSingle:
		return n.HasSingleQuote
	case DelimiterDouble:
		return n.HasDoubleQuote
	case DelimiterBacktick:
		return n.HasBacktick
	default:
		return false
	}
}

// StructuredNode is a ClassNameNode placed in a Forest. Parent and children
// are indices into Forest.Nodes.
type StructuredNode struct {
	ClassNameNode

	// Index is the node's own position in Forest.Nodes.
	Index int

	// Parent is the index of the enclosing node, or -1 for a root.
	Parent int

	// Children are the indices of directly nested nodes, left to right.
	Children []int
}

// HasParent reports whether the node is nested inside another node.
func (n *StructuredNode) HasParent() bool {
	return n.Parent >= 0
}
