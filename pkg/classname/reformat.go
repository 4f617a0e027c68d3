package classname

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// anchor describes where a piece of text starts on its output line.
type anchor struct {
	// prefix is the text between the start of the line and the anchor.
	prefix string

	// indent is the leading whitespace of that line.
	indent string
}

// anchorAt returns the anchor for a byte offset into text.
func anchorAt(text string, offset int) anchor {
	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	line := text[lineStart:offset]
	return anchor{prefix: line, indent: leadingSpace(line)}
}

// advance returns the anchor just after seg, which follows a.
func (a anchor) advance(seg string) anchor {
	i := strings.LastIndexByte(seg, '\n')
	if i < 0 {
		return anchor{prefix: a.prefix + seg, indent: a.indent}
	}
	line := seg[i+1:]
	return anchor{prefix: line, indent: leadingSpace(line)}
}

func leadingSpace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}

// widthCondition measures display width independently of the locale.
//
//nolint:gochecknoglobals // Read-only measuring configuration.
var widthCondition = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// formatter re-renders the literal tokens of one occurrence.
type formatter struct {
	ctx   context.Context
	opts  Options
	rules dialectRules
	rw    Rewrapper
	unit  string

	// attributeQuote is the quote of the attribute value being formatted
	// around nested literals, or DelimiterNone outside one.
	attributeQuote Delimiter
}

func newFormatter(ctx context.Context, opts Options, rw Rewrapper) *formatter {
	return &formatter{
		ctx:   ctx,
		opts:  opts,
		rules: dialectTable[opts.Dialect],
		rw:    rw,
		unit:  opts.indentUnit(),
	}
}

// width returns the display width of s, counting tabs as TabWidth columns.
func (f *formatter) width(s string) int {
	tabs := strings.Count(s, "\t")
	return widthCondition.StringWidth(strings.ReplaceAll(s, "\t", "")) + tabs*f.opts.TabWidth
}

// formatTokens formats a token sequence whose first token starts at the
// given anchor. Tokens are visited left to right and each anchor is taken
// from the finalized text of the tokens before it, so a sibling that broke
// onto several lines moves everything after it.
func (f *formatter) formatTokens(tokens []Token, start anchor) error {
	at, prev := start, start
	for i := range tokens {
		tok := &tokens[i]
		if tok.Kind == TokenNode {
			if !tok.Node.Kind.IsLiteral() {
				if err := f.formatTokens(tok.Children, at); err != nil {
					return err
				}
			} else {
				if i == 0 || i+1 >= len(tokens) {
					return &SpanError{Node: tok.Node.ClassNameNode, Message: "literal is missing its delimiters"}
				}
				if err := f.formatLiteral(tokens, i, prev); err != nil {
					return err
				}
				// The opening delimiter may have changed.
				at = prev.advance(tokens[i-1].Body)
			}
		}
		prev = at
		at = at.advance(f.text(tok))
	}
	return nil
}

// text returns the current rendering of tok. Lost placeholders stay in
// place here; the final render reports them.
func (f *formatter) text(tok *Token) string {
	if tok.Kind != TokenNode {
		return tok.Body
	}
	asm := &assembler{ctx: f.ctx, quiet: true}
	var (
		s   string
		err error
	)
	if tok.Node.Kind.IsLiteral() {
		s, err = asm.unfreeze(tok)
	} else {
		s, err = asm.render(tok.Children)
	}
	if err != nil {
		return tok.Body
	}
	return s
}

// formatLiteral re-wraps the literal at tokens[i], whose opening delimiter
// starts at the given anchor, then rewrites its delimiters and formats its
// nested nodes against the new layout.
func (f *formatter) formatLiteral(tokens []Token, i int, at anchor) error {
	tok := &tokens[i]
	open, closing := &tokens[i-1], &tokens[i+1]
	node := tok.Node

	content := frozenBody(tok.Children)
	interpolated := hasNodes(tok.Children)
	level := f.indentLevel(node)

	lines, err := f.wrapLines(normalizeSpace(content), at, open.Body, closing.Body, level)
	if err != nil {
		return err
	}
	if len(lines) > 1 && !f.canSpanLines(node) {
		lines = []string{strings.Join(lines, " ")}
	}
	multiline := len(lines) > 1

	choice := f.chooseDelimiter(node, content, interpolated, multiline)
	body := strings.Join(lines, "\n"+f.continuationIndent(at.indent, level))

	switch {
	case choice.rewritten:
		body = escapeTemplate(body)
	case node.Kind != KindAttribute:
		body = requote(body, node.Delimiter, choice.delimiter)
	}

	tok.Body = body
	open.Body = choice.open
	closing.Body = choice.close

	if !interpolated {
		return nil
	}
	if node.Kind == KindAttribute && !choice.rewritten {
		outer := f.attributeQuote
		f.attributeQuote = choice.delimiter
		defer func() { f.attributeQuote = outer }()
	}
	return f.formatNested(tok, at.advance(open.Body))
}

// formatNested formats the nested nodes of a re-wrapped literal. Each
// nested node is anchored where its frozen form landed in the new body,
// after the nested nodes before it have taken their final shape.
func (f *formatter) formatNested(tok *Token, start anchor) error {
	at := start
	from := 0
	for i := range tok.Children {
		child := &tok.Children[i]
		if child.Kind != TokenNode {
			continue
		}
		pos := strings.Index(tok.Body[from:], child.Frozen)
		if pos < 0 {
			// Reported when the body is reassembled.
			continue
		}
		pos += from
		at = at.advance(tok.Body[from:pos])

		var err error
		if child.Node.Kind.IsLiteral() {
			err = f.formatLiteral(tok.Children, i, at)
		} else {
			err = f.formatTokens(child.Children, at)
		}
		if err != nil {
			return err
		}

		if child.Node.Kind.IsLiteral() {
			at = at.advance(tok.Children[i-1].Body + f.text(child) + tok.Children[i+1].Body)
		} else {
			at = at.advance(f.text(child))
		}
		from = pos + len(child.Frozen)
	}
	return nil
}

// wrapLines wraps content and returns its lines. The first line is wrapped
// at the target width; continuation lines are wrapped again at the
// narrower continuation width.
func (f *formatter) wrapLines(content string, at anchor, open, closing string, level int) ([]string, error) {
	if content == "" {
		return []string{""}, nil
	}

	var lead, trail string
	if f.opts.EndingPosition != EndingRelative {
		lead = padding(f.width(at.prefix) + f.width(open))
		trail = padding(f.width(closing))
	}

	lines, err := f.rewrap(lead+content+trail, f.opts.TargetWidth, lead, trail)
	if err != nil || len(lines) <= 1 {
		return lines, err
	}

	rest := strings.Join(lines[1:], " ")
	continuation, err := f.rewrap(rest+trail, f.continuationWidth(at.indent, level), "", trail)
	if err != nil {
		return nil, err
	}
	return append(lines[:1], continuation...), nil
}

// rewrap calls the re-wrap callback and strips the padding back off.
func (f *formatter) rewrap(text string, width int, lead, trail string) ([]string, error) {
	out, err := f.rw.Rewrap(f.ctx, text, WrapOptions{Width: max(width, 1), TabWidth: f.opts.TabWidth})
	if err != nil {
		return nil, fmt.Errorf("rewrap: %w", err)
	}
	out = strings.TrimSpace(out)
	out = strings.TrimPrefix(out, lead)
	out = strings.TrimSuffix(out, trail)

	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines, nil
}

// indentLevel returns how many indentation units continuation lines of the
// literal are indented by in relative and absolute-with-indent modes.
func (f *formatter) indentLevel(node *StructuredNode) int {
	level := 1
	switch node.Kind {
	case KindAttribute:
		if node.OnTagLine {
			level++
		}
	case KindExpression, KindUnknown:
		if node.SameLineAsName {
			level++
		}
		if node.TernaryOperand {
			level++
		}
		if node.BoundAttribute {
			level += f.rules.boundIndent
		}
	}
	return level
}

func (f *formatter) continuationIndent(base string, level int) string {
	if f.opts.EndingPosition == EndingAbsolute {
		return base
	}
	return base + strings.Repeat(f.unit, level)
}

func (f *formatter) continuationWidth(base string, level int) int {
	switch f.opts.EndingPosition {
	case EndingAbsolute:
		return f.opts.TargetWidth - f.width(base)
	case EndingAbsoluteWithIndent:
		return f.opts.TargetWidth - f.width(base) - f.opts.TabWidth*level
	default:
		return f.opts.TargetWidth - f.opts.TabWidth*level
	}
}
