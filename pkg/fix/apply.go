package fix

import (
	"fmt"
	"strings"
)

// ApplyEdits applies a sorted, validated slice of edits to content.
// Edits must be prepared with PrepareEdits before calling.
func ApplyEdits(content []byte, edits []TextEdit) []byte {
	if len(edits) == 0 {
		return content
	}
	return []byte(apply(string(content), edits))
}

// Apply validates edits against content and applies them in offset order.
func Apply(content string, edits []TextEdit) (string, error) {
	prepared, err := PrepareEdits(edits, len(content))
	if err != nil {
		return "", fmt.Errorf("prepare edits: %w", err)
	}
	return apply(content, prepared), nil
}

func apply(content string, edits []TextEdit) string {
	if len(edits) == 0 {
		return content
	}

	size := len(content)
	for _, e := range edits {
		size += e.Delta()
	}

	var out strings.Builder
	out.Grow(size)

	cursor := 0
	for _, e := range edits {
		out.WriteString(content[cursor:e.StartOffset])
		out.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	out.WriteString(content[cursor:])

	return out.String()
}
