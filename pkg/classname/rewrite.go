package classname

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/classwrap/pkg/fix"
)

// Rewrite re-wraps every annotated class name literal in source and
// returns the new text. Text outside the annotated spans is left
// byte-identical. Rewrite has no side effects; the same inputs always
// produce the same output.
func Rewrite(ctx context.Context, source string, annotations []ClassNameNode, opts Options, rw Rewrapper) (string, error) {
	edits, err := Plan(ctx, source, annotations, opts, rw)
	if err != nil {
		return "", err
	}

	return fix.Apply(source, edits)
}

// Plan computes the replacement for each top-level literal occurrence and
// returns one edit per occurrence that changed, in source coordinates.
//
// Occurrences are processed left to right as an ordered fold: each one is
// laid out against the text with all earlier replacements already
// spliced in, so line prefixes and indentation reflect them.
func Plan(ctx context.Context, source string, annotations []ClassNameNode, opts Options, rw Rewrapper) ([]fix.TextEdit, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if rw == nil {
		return nil, fmt.Errorf("%w: rewrapper is nil", ErrInvalidOptions)
	}
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateSpans(annotations, len(source)); err != nil {
		return nil, err
	}

	logger := log.FromContext(ctx)
	forest := Resolve(annotations)
	fmtr := newFormatter(ctx, opts, rw)
	asm := &assembler{ctx: ctx, strict: opts.Strict}

	var edits []fix.TextEdit
	working := source
	delta := 0
	lastEnd := 0

	for _, root := range forest.Roots() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		node := forest.Node(root)
		if node.Span.Start < lastEnd {
			logger.Warn("skipping class name overlapping a previous one",
				"kind", node.Kind, "start", node.Span.Start, "end", node.Span.End)
			continue
		}
		lastEnd = node.Span.End

		tokens, err := Linearize(source, forest, node.Span, []int{root})
		if err != nil {
			return nil, err
		}

		shifted := node.Span.Shift(delta)
		if err := fmtr.formatTokens(tokens, anchorAt(working, shifted.Start)); err != nil {
			return nil, err
		}
		asm.lost = 0
		out, err := asm.render(tokens)
		if err != nil {
			return nil, err
		}
		if asm.lost > 0 {
			logger.Warn("leaving class name unchanged after losing nested content",
				"kind", node.Kind, "start", node.Span.Start, "end", node.Span.End)
			continue
		}

		if out == source[node.Span.Start:node.Span.End] {
			continue
		}

		logger.Debug("rewrote class name",
			"kind", node.Kind, "start", node.Span.Start, "end", node.Span.End)

		edit := fix.Replace(node.Span.Start, node.Span.End, out)
		edits = append(edits, edit)
		working = working[:shifted.Start] + out + working[shifted.End:]
		delta += edit.Delta()
	}

	return edits, nil
}
