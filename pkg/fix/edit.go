// Package fix provides byte-range text edits, their validation and
// application, and unified diffs for previewing them.
package fix

// TextEdit represents a single text replacement in a file.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// Replace returns an edit that replaces bytes [start, end) with text.
func Replace(start, end int, text string) TextEdit {
	return TextEdit{StartOffset: start, EndOffset: end, NewText: text}
}

// Len returns the number of bytes the edit removes.
func (e TextEdit) Len() int {
	return e.EndOffset - e.StartOffset
}

// Delta returns how much the edit changes the content length.
func (e TextEdit) Delta() int {
	return len(e.NewText) - e.Len()
}
