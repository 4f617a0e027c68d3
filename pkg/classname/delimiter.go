package classname

import "strings"

// delimiterChoice is the final quoting of a literal.
type delimiterChoice struct {
	delimiter Delimiter
	open      string
	close     string

	// rewritten is set when an attribute value was turned into an
	// expression wrapper.
	rewritten bool
}

func quoted(d Delimiter) delimiterChoice {
	return delimiterChoice{delimiter: d, open: d.Char(), close: d.Char()}
}

// chooseDelimiter picks the delimiter for a literal. In order: a forced
// delimiter, a multi-line or interpolated body that needs a template, the
// dialect's bound-attribute quote, then the preferred quote unless the
// content contains it and not the alternative. An unquoted literal stays
// unquoted.
func (f *formatter) chooseDelimiter(node *StructuredNode, content string, interpolated, multiline bool) delimiterChoice {
	orig := node.Delimiter
	if orig == DelimiterNone {
		return quoted(DelimiterNone)
	}

	if node.Kind == KindAttribute {
		// Nested frames are written as {expr} mustaches, which would turn
		// into plain text inside a template.
		if multiline && !interpolated && f.opts.AllowSyntaxRewrite && f.rules.attributeOpen != "" {
			return delimiterChoice{
				delimiter: DelimiterBacktick,
				open:      f.rules.attributeOpen,
				close:     f.rules.attributeClose,
				rewritten: true,
			}
		}
		if node.PreserveDelimiter {
			return quoted(orig)
		}
		return quoted(avoidQuote(node, content, DelimiterDouble, orig))
	}

	var d Delimiter
	switch {
	case node.PreserveDelimiter:
		d = orig
	case interpolated || multiline:
		d = DelimiterBacktick
	case orig == DelimiterBacktick && hasInterpolation(content):
		d = DelimiterBacktick
	case node.BoundAttribute && f.rules.boundQuote != DelimiterNone:
		d = f.rules.boundQuote
	default:
		preferred := f.opts.PreferredQuote.delimiter()
		d = avoidQuote(node, content, preferred, preferred)
	}
	// A literal inside a quoted attribute value cannot reuse its quote.
	if !node.PreserveDelimiter && d != DelimiterBacktick && d == f.attributeQuote {
		d = alternateQuote(d)
	}

	choice := quoted(d)
	if node.ObjectKey && d == DelimiterBacktick {
		choice.open, choice.close = "[`", "`]"
	}
	return choice
}

// avoidQuote returns preferred unless the content contains it and not its
// alternative. When the content contains both, both is returned.
func avoidQuote(node *StructuredNode, content string, preferred, both Delimiter) Delimiter {
	alternate := alternateQuote(preferred)
	hasPreferred := node.contains(preferred) || strings.Contains(content, preferred.Char())
	hasAlternate := node.contains(alternate) || strings.Contains(content, alternate.Char())
	switch {
	case hasPreferred && hasAlternate:
		return both
	case hasPreferred:
		return alternate
	default:
		return preferred
	}
}

// alternateQuote returns the other string quote.
func alternateQuote(d Delimiter) Delimiter {
	if d == DelimiterSingle {
		return DelimiterDouble
	}
	return DelimiterSingle
}

// canSpanLines reports whether the literal may be rendered over several
// lines.
func (f *formatter) canSpanLines(node *StructuredNode) bool {
	if node.Kind == KindAttribute {
		return node.Delimiter != DelimiterNone
	}
	if node.PreserveDelimiter && node.Delimiter != DelimiterBacktick {
		return false
	}
	if node.BoundAttribute && !f.rules.templateLiterals {
		return false
	}
	return true
}

// hasInterpolation reports whether template content contains an unescaped
// ${ sequence.
func hasInterpolation(content string) bool {
	for i := 0; i+1 < len(content); i++ {
		switch content[i] {
		case '\\':
			i++
		case '$':
			if content[i+1] == '{' {
				return true
			}
		}
	}
	return false
}

// requote converts string literal content written for one delimiter to
// content valid inside another. Escapes made unnecessary are dropped and
// occurrences of the new delimiter are escaped.
func requote(content string, from, to Delimiter) string {
	if from == to || to == DelimiterNone {
		return content
	}
	q := to.Char()[0]

	var b strings.Builder
	b.Grow(len(content) + 4)
	for i := 0; i < len(content); i++ {
		c := content[i]
		switch {
		case c == '\\' && i+1 < len(content):
			next := content[i+1]
			switch {
			case next != q && (next == '\'' || next == '"' || next == '`'):
				b.WriteByte(next)
			case next == '$' && from == DelimiterBacktick && to != DelimiterBacktick:
				b.WriteByte(next)
			default:
				b.WriteByte(c)
				b.WriteByte(next)
			}
			i++
		case c == q:
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '$' && to == DelimiterBacktick && i+1 < len(content) && content[i+1] == '{':
			b.WriteString(`\$`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// escapeTemplate escapes attribute text so it is literal inside a
// template. Attribute values carry no escapes of their own.
func escapeTemplate(content string) string {
	r := strings.NewReplacer("\\", "\\\\", "`", "\\`", "${", "\\${")
	return r.Replace(content)
}
