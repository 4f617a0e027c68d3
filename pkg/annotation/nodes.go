package annotation

import (
	"fmt"
	"strings"

	"github.com/yaklabco/classwrap/pkg/classname"
)

// Nodes converts the sidecar entries into engine annotations for source.
// A literal without an explicit delimiter takes it from the source
// character at its start; the quote flags are always derived from the
// literal's content. Spans are checked against source before conversion.
func (f *File) Nodes(source string) ([]classname.ClassNameNode, error) {
	nodes := make([]classname.ClassNameNode, 0, len(f.Nodes))
	for i, entry := range f.Nodes {
		node, err := entry.node(source)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		nodes = append(nodes, node)
	}

	if err := classname.ValidateSpans(nodes, len(source)); err != nil {
		return nil, err
	}
	return nodes, nil
}

func (e Entry) node(source string) (classname.ClassNameNode, error) {
	kind, err := classname.ParseKind(e.Kind)
	if err != nil {
		return classname.ClassNameNode{}, err
	}

	node := classname.ClassNameNode{
		Kind:              kind,
		Span:              classname.Span{Start: e.Start, End: e.End},
		Element:           e.Element,
		OnTagLine:         e.OnTagLine,
		SameLineAsName:    e.SameLineAsName,
		ObjectKey:         e.ObjectKey,
		TernaryOperand:    e.TernaryOperand,
		BoundAttribute:    e.BoundAttribute,
		PreserveDelimiter: e.PreserveDelimiter,
	}
	if !kind.IsLiteral() {
		return node, nil
	}
	if e.Start < 0 || e.End > len(source) || e.Start >= e.End {
		// Reported with full context by ValidateSpans.
		return node, nil
	}

	text := source[e.Start:e.End]
	node.Delimiter, err = delimiter(e.Delimiter, text, e.ObjectKey)
	if err != nil {
		return classname.ClassNameNode{}, err
	}

	content := text
	if node.Delimiter != classname.DelimiterNone && len(text) >= 2 {
		content = text[1 : len(text)-1]
		if e.ObjectKey && strings.HasPrefix(text, "[`") && len(text) >= 4 {
			content = text[2 : len(text)-2]
		}
	}
	node.HasSingleQuote = strings.Contains(content, "'")
	node.HasDoubleQuote = strings.Contains(content, `"`)
	node.HasBacktick = strings.Contains(content, "`")
	return node, nil
}

// delimiter resolves an explicit delimiter name, or reads it from the
// first character of the literal.
func delimiter(name, text string, objectKey bool) (classname.Delimiter, error) {
	switch name {
	case "single", "'":
		return classname.DelimiterSingle, nil
	case "double", `"`:
		return classname.DelimiterDouble, nil
	case "backtick", "`":
		return classname.DelimiterBacktick, nil
	case "none":
		return classname.DelimiterNone, nil
	case "":
	default:
		return classname.DelimiterNone, fmt.Errorf("unknown delimiter %q", name)
	}

	if objectKey && strings.HasPrefix(text, "[`") {
		return classname.DelimiterBacktick, nil
	}
	return classname.DelimiterOf(text[0]), nil
}
