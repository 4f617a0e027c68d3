package classname

import "strings"

// TokenKind identifies the role of a Token.
type TokenKind int

const (
	TokenText TokenKind = iota
	TokenOpeningDelimiter
	TokenClosingDelimiter
	TokenNode
)

func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "text"
	case TokenOpeningDelimiter:
		return "opening-delimiter"
	case TokenClosingDelimiter:
		return "closing-delimiter"
	case TokenNode:
		return "node"
	default:
		return "unknown"
	}
}

// Token is one piece of a linearized literal. Concatenating the bodies of
// a token sequence reproduces the covered text until the sequence is
// formatted.
type Token struct {
	Kind TokenKind
	Span Span
	Body string

	// Node is the structured node behind a TokenNode.
	Node *StructuredNode

	// Children is the linearized content of a TokenNode.
	Children []Token

	// Frozen is the text that stands in for a nested TokenNode inside its
	// parent's body while the parent is re-wrapped. For literals it
	// includes the original delimiters.
	Frozen string
}

// IsLiteralNode reports whether the token is a node with literal content.
func (t *Token) IsLiteralNode() bool {
	return t.Kind == TokenNode && t.Node.Kind.IsLiteral()
}

// Concat joins the bodies of tokens in order.
func Concat(tokens []Token) string {
	var b strings.Builder
	for i := range tokens {
		b.WriteString(tokens[i].Body)
	}
	return b.String()
}

// frozenBody joins tokens with every nested node replaced by its frozen
// form. A literal's frozen form already carries its delimiters, so the
// delimiter tokens around it are skipped.
func frozenBody(tokens []Token) string {
	var b strings.Builder
	for i := 0; i < len(tokens); i++ {
		tok := &tokens[i]
		switch {
		case tok.Kind == TokenOpeningDelimiter && i+2 < len(tokens) && tokens[i+1].IsLiteralNode():
			b.WriteString(tokens[i+1].Frozen)
			i += 2
		case tok.Kind == TokenNode:
			b.WriteString(tok.Frozen)
		default:
			b.WriteString(tok.Body)
		}
	}
	return b.String()
}

// hasNodes reports whether any token is a node.
func hasNodes(tokens []Token) bool {
	for i := range tokens {
		if tokens[i].Kind == TokenNode {
			return true
		}
	}
	return false
}
