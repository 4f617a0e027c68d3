package classname

import (
	"context"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	// afterOpening matches an interpolation opening followed by a line
	// break and indentation at the end of the text before a placeholder.
	afterOpening = regexp.MustCompile(`\$\{[ \t]*\n\s*$`)

	// beforeClosing matches a line break and indentation followed by an
	// interpolation closing at the start of the text after a placeholder.
	beforeClosing = regexp.MustCompile(`^\s*\n[ \t]*\}`)
)

// assembler substitutes formatted nested content back into re-wrapped
// literal bodies and joins the final token bodies.
type assembler struct {
	ctx    context.Context
	strict bool

	// quiet leaves lost placeholders in place without reporting them.
	quiet bool

	// lost counts placeholders reported missing in lenient mode.
	lost int
}

// render joins the final bodies of tokens, restoring nested content.
func (a *assembler) render(tokens []Token) (string, error) {
	var b strings.Builder
	for i := range tokens {
		tok := &tokens[i]
		switch {
		case tok.Kind != TokenNode:
			b.WriteString(tok.Body)
		case !tok.Node.Kind.IsLiteral():
			s, err := a.render(tok.Children)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		default:
			s, err := a.unfreeze(tok)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
	}
	return b.String(), nil
}

// unfreeze returns the literal's body with every frozen nested node
// replaced by its own unfrozen rendering, innermost first.
func (a *assembler) unfreeze(tok *Token) (string, error) {
	body := tok.Body
	from := 0
	for i := range tok.Children {
		child := &tok.Children[i]
		if child.Kind != TokenNode {
			continue
		}

		var replacement string
		var err error
		if child.Node.Kind.IsLiteral() {
			replacement, err = a.unfreeze(child)
			replacement = tok.Children[i-1].Body + replacement + tok.Children[i+1].Body
		} else {
			replacement, err = a.render(child.Children)
		}
		if err != nil {
			return "", err
		}

		pos := strings.Index(body[from:], child.Frozen)
		if pos < 0 {
			if err := a.missing(child); err != nil {
				return "", err
			}
			continue
		}
		pos += from

		if child.Node.Kind.IsLiteral() {
			body = body[:pos] + replacement + body[pos+len(child.Frozen):]
			from = pos + len(replacement)
			continue
		}
		body, from = substituteFrame(body, pos, len(child.Frozen), replacement)
	}
	return body, nil
}

// missing reports a frozen node whose placeholder was lost. In strict mode
// this fails the rewrite; otherwise it is counted so the caller can keep
// the occurrence as it was.
func (a *assembler) missing(child *Token) error {
	if a.quiet {
		return nil
	}
	err := &PlaceholderError{Placeholder: child.Frozen, Span: child.Node.Span}
	if a.strict {
		return err
	}
	log.FromContext(a.ctx).Warn("frozen placeholder lost", "error", err)
	a.lost++
	return nil
}

// substituteFrame replaces the placeholder of a preserving frame at
// body[pos:pos+n]. When the re-wrap moved the placeholder onto its own line
// right after an interpolation opening, or right before a closing, the
// connecting whitespace is collapsed to a single line break plus the
// indentation of the relocated line. Returns the new body and the offset
// just past the replacement.
func substituteFrame(body string, pos, n int, replacement string) (string, int) {
	before, after := body[:pos], body[pos+n:]

	if afterOpening.MatchString(before) {
		open := strings.LastIndex(before, "${") + 2
		run := before[open:]
		indent := run[strings.LastIndexByte(run, '\n')+1:]
		before = before[:open] + "\n" + indent
		replacement = strings.TrimLeft(replacement, " \t\n")
	}
	if beforeClosing.MatchString(after) {
		end := strings.IndexByte(after, '}')
		run := after[:end]
		indent := run[strings.LastIndexByte(run, '\n')+1:]
		after = "\n" + indent + after[end:]
		replacement = strings.TrimRight(replacement, " \t\n")
	}

	return before + replacement + after, len(before) + len(replacement)
}
