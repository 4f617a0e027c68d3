package fix_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/classwrap/pkg/fix"
)

func numbered(n int, change map[int]string) []byte {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		if line, ok := change[i]; ok {
			b.WriteString(line)
		} else {
			fmt.Fprintf(&b, "line %d", i)
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func TestGenerateDiff_NoChanges(t *testing.T) {
	t.Parallel()

	diff := fix.GenerateDiff("a.html", []byte("x\n"), []byte("x\n"))
	assert.Nil(t, diff)
	assert.False(t, diff.HasChanges())
	assert.Empty(t, diff.String())
}

func TestGenerateDiff_SingleLine(t *testing.T) {
	t.Parallel()

	original := []byte("<div\n  class=\"a b c\">\n</div>\n")
	modified := []byte("<div\n  class=\"a b\n    c\">\n</div>\n")

	diff := fix.GenerateDiff("src/page.html", original, modified)
	require.True(t, diff.HasChanges())
	assert.Equal(t, 2, diff.Additions)
	assert.Equal(t, 1, diff.Deletions)

	want := "--- a/src/page.html\n" +
		"+++ b/src/page.html\n" +
		"@@ -1,3 +1,4 @@\n" +
		" <div\n" +
		"-  class=\"a b c\">\n" +
		"+  class=\"a b\n" +
		"+    c\">\n" +
		" </div>\n"
	assert.Equal(t, want, diff.String())
}

func TestGenerateDiff_EmptyOriginal(t *testing.T) {
	t.Parallel()

	diff := fix.GenerateDiff("new.vue", nil, []byte("x\n"))
	require.Len(t, diff.Hunks, 1)

	hunk := diff.Hunks[0]
	assert.Equal(t, 0, hunk.OriginalStart)
	assert.Equal(t, 0, hunk.OriginalCount)
	assert.Equal(t, 1, hunk.ModifiedStart)
	assert.Equal(t, 1, hunk.ModifiedCount)
}

func TestGenerateDiff_Hunks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		lines     int
		change    map[int]string
		wantStart []int
		wantCount []int
	}{
		{
			name:      "distant changes split",
			lines:     20,
			change:    map[int]string{2: "two", 18: "eighteen"},
			wantStart: []int{1, 15},
			wantCount: []int{5, 6},
		},
		{
			name:      "nearby changes merge",
			lines:     20,
			change:    map[int]string{2: "two", 8: "eight"},
			wantStart: []int{1},
			wantCount: []int{11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diff := fix.GenerateDiff("f.tsx", numbered(tt.lines, nil), numbered(tt.lines, tt.change))
			require.Len(t, diff.Hunks, len(tt.wantStart))
			for i, hunk := range diff.Hunks {
				assert.Equal(t, tt.wantStart[i], hunk.OriginalStart)
				assert.Equal(t, tt.wantCount[i], hunk.OriginalCount)
				assert.Equal(t, hunk.OriginalCount, hunk.ModifiedCount)
			}
			assert.Equal(t, len(tt.change), diff.Additions)
			assert.Equal(t, len(tt.change), diff.Deletions)
		})
	}
}

// replay rebuilds both sides of a diff from its hunks and the original.
func replay(t *testing.T, original []string, diff *fix.Diff) []string {
	t.Helper()

	var out []string
	next := 0
	for _, hunk := range diff.Hunks {
		start := hunk.OriginalStart - 1
		if hunk.OriginalCount == 0 {
			start = hunk.OriginalStart
		}
		out = append(out, original[next:start]...)
		next = start
		for _, line := range hunk.Lines {
			switch line.Kind {
			case fix.DiffLineContext:
				require.Equal(t, original[next], line.Content)
				out = append(out, line.Content)
				next++
			case fix.DiffLineRemove:
				require.Equal(t, original[next], line.Content)
				next++
			case fix.DiffLineAdd:
				out = append(out, line.Content)
			}
		}
	}
	return append(out, original[next:]...)
}

func lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func FuzzGenerateDiff(f *testing.F) {
	f.Add("a\nb\nc\n", "a\nc\nd\n")
	f.Add("", "x\n")
	f.Add("x\ny\n", "")
	f.Add("1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n", "0\n2\n3\n4\n5\n6\n7\n8\n9\nX\n")

	f.Fuzz(func(t *testing.T, original, modified string) {
		if !strings.HasSuffix(original, "\n") || !strings.HasSuffix(modified, "\n") {
			t.Skip()
		}

		diff := fix.GenerateDiff("f", []byte(original), []byte(modified))
		if original == modified {
			assert.Nil(t, diff)
			return
		}
		if diff == nil {
			// Only the terminators differ.
			assert.Equal(t, lines(original), lines(modified))
			return
		}
		assert.Equal(t, lines(modified), replay(t, lines(original), diff))
	})
}
