package classname

import (
	"slices"
	"strings"
)

// Linearize splits text[span] into tokens around the given nodes, which
// must be direct children of the level being linearized (or the root being
// rewritten). Literal nodes are split into opening delimiter, content and
// closing delimiter; a node's nested nodes are linearized into its
// Children. Tokens are returned left to right and together reproduce
// text[span] exactly.
func Linearize(text string, forest *Forest, span Span, ids []int) ([]Token, error) {
	order := slices.Clone(ids)
	slices.SortFunc(order, func(a, b int) int {
		return forest.Nodes[b].Span.Start - forest.Nodes[a].Span.Start
	})

	// Built back to front, reversed at the end.
	var tokens []Token
	cursor := span.End

	for _, id := range order {
		node := forest.Node(id)
		if node.Span.End > cursor || node.Span.Start < span.Start {
			return nil, &SpanError{Node: node.ClassNameNode, Message: "overlaps a sibling or escapes its parent"}
		}
		if node.Span.End < cursor {
			tokens = append(tokens, textToken(text, Span{Start: node.Span.End, End: cursor}))
		}

		if !node.Kind.IsLiteral() {
			children, err := Linearize(text, forest, node.Span, node.Children)
			if err != nil {
				return nil, err
			}
			tok := Token{
				Kind:     TokenNode,
				Span:     node.Span,
				Body:     text[node.Span.Start:node.Span.End],
				Node:     node,
				Children: children,
			}
			if node.HasParent() {
				tok.Frozen = Freeze(normalizeSpace(tok.Body))
			}
			tokens = append(tokens, tok)
			cursor = node.Span.Start
			continue
		}

		openLen, closeLen := delimiterWidths(text, node)
		content := Span{Start: node.Span.Start + openLen, End: node.Span.End - closeLen}
		if content.Start > content.End {
			return nil, &SpanError{Node: node.ClassNameNode, Message: "literal is shorter than its delimiters"}
		}

		children, err := Linearize(text, forest, content, node.Children)
		if err != nil {
			return nil, err
		}

		open := Token{
			Kind: TokenOpeningDelimiter,
			Span: Span{Start: node.Span.Start, End: content.Start},
			Body: text[node.Span.Start:content.Start],
		}
		closing := Token{
			Kind: TokenClosingDelimiter,
			Span: Span{Start: content.End, End: node.Span.End},
			Body: text[content.End:node.Span.End],
		}
		tok := Token{
			Kind:     TokenNode,
			Span:     content,
			Body:     text[content.Start:content.End],
			Node:     node,
			Children: children,
		}
		if node.HasParent() {
			tok.Frozen = open.Body + Freeze(normalizeSpace(tok.Body)) + closing.Body
		}

		tokens = append(tokens, closing, tok, open)
		cursor = node.Span.Start
	}

	if cursor > span.Start {
		tokens = append(tokens, textToken(text, Span{Start: span.Start, End: cursor}))
	}

	slices.Reverse(tokens)
	return tokens, nil
}

func textToken(text string, span Span) Token {
	return Token{Kind: TokenText, Span: span, Body: text[span.Start:span.End]}
}

// delimiterWidths returns how many bytes to strip from each end of a
// literal. A computed object key written as [`...`] strips the bracket too.
func delimiterWidths(text string, node *StructuredNode) (int, int) {
	if node.Delimiter == DelimiterNone {
		return 0, 0
	}
	if node.ObjectKey && node.Delimiter == DelimiterBacktick &&
		strings.HasPrefix(text[node.Span.Start:], "[`") &&
		strings.HasSuffix(text[:node.Span.End], "`]") && node.Span.Len() >= 4 {
		return 2, 2
	}
	return 1, 1
}
