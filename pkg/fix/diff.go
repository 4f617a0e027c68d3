package fix

import (
	"fmt"
	"strings"
)

// ContextLines is the number of unchanged lines shown around each change.
const ContextLines = 3

// Diff is a line-based unified diff between two versions of a file.
type Diff struct {
	// Path is the file path used in the diff header.
	Path string

	// Hunks contains the changed regions with their context.
	Hunks []DiffHunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines deleted.
	Deletions int
}

// DiffHunk is one "@@" section of a unified diff. Line numbers are 1-based;
// a zero count is paired with the line before the hunk, as diff(1) does.
type DiffHunk struct {
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []DiffLine
}

// DiffLine is a single line in a hunk.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// DiffLineKind indicates the type of diff line.
type DiffLineKind int

const (
	DiffLineContext DiffLineKind = iota
	DiffLineAdd
	DiffLineRemove
)

// prefix returns the unified diff marker for the line kind.
func (k DiffLineKind) prefix() byte {
	switch k {
	case DiffLineAdd:
		return '+'
	case DiffLineRemove:
		return '-'
	default:
		return ' '
	}
}

// GenerateDiff creates a unified diff between original and modified content.
// Returns nil if there are no changes.
func GenerateDiff(path string, original, modified []byte) *Diff {
	if string(original) == string(modified) {
		return nil
	}

	ops := editScript(splitLines(original), splitLines(modified))
	hunks := groupHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	diff := &Diff{Path: path, Hunks: hunks}
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineAdd:
				diff.Additions++
			case DiffLineRemove:
				diff.Deletions++
			}
		}
	}
	return diff
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String returns the diff in unified format with ---/+++ headers.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n+++ b/%s\n", path, path)
	for _, hunk := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)
		for _, line := range hunk.Lines {
			b.WriteByte(line.Kind.prefix())
			b.WriteString(line.Content)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// splitLines splits content into lines without their terminators.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}

// editScript returns the line operations turning a into b. The common
// prefix and suffix are matched directly; the middle uses an LCS table.
func editScript(a, b []string) []DiffLine {
	pre := 0
	for pre < len(a) && pre < len(b) && a[pre] == b[pre] {
		pre++
	}
	suf := 0
	for suf < len(a)-pre && suf < len(b)-pre && a[len(a)-1-suf] == b[len(b)-1-suf] {
		suf++
	}

	ops := make([]DiffLine, 0, len(a)+len(b)-pre-suf)
	for _, line := range a[:pre] {
		ops = append(ops, DiffLine{Kind: DiffLineContext, Content: line})
	}
	ops = append(ops, lcsScript(a[pre:len(a)-suf], b[pre:len(b)-suf])...)
	for _, line := range a[len(a)-suf:] {
		ops = append(ops, DiffLine{Kind: DiffLineContext, Content: line})
	}
	return ops
}

// lcsScript diffs a and b with a longest-common-subsequence table.
// Removals are emitted before additions.
func lcsScript(a, b []string) []DiffLine {
	n, m := len(a), len(b)

	// table[i][j] is the LCS length of a[i:] and b[j:].
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else {
				table[i][j] = max(table[i+1][j], table[i][j+1])
			}
		}
	}

	var ops []DiffLine
	i, j := 0, 0
	for i < n || j < m {
		switch {
		case i < n && j < m && a[i] == b[j]:
			ops = append(ops, DiffLine{Kind: DiffLineContext, Content: a[i]})
			i++
			j++
		case i == n || (j < m && table[i][j+1] > table[i+1][j]):
			ops = append(ops, DiffLine{Kind: DiffLineAdd, Content: b[j]})
			j++
		default:
			ops = append(ops, DiffLine{Kind: DiffLineRemove, Content: a[i]})
			i++
		}
	}
	return ops
}

// groupHunks cuts an edit script into hunks. Changes separated by no more
// than twice the context length share a hunk.
func groupHunks(ops []DiffLine) []DiffHunk {
	// Line numbers (0-based) in each file before ops[k].
	origAt := make([]int, len(ops)+1)
	modAt := make([]int, len(ops)+1)
	for k, op := range ops {
		origAt[k+1], modAt[k+1] = origAt[k], modAt[k]
		if op.Kind != DiffLineAdd {
			origAt[k+1]++
		}
		if op.Kind != DiffLineRemove {
			modAt[k+1]++
		}
	}

	var hunks []DiffHunk
	for k := 0; k < len(ops); k++ {
		if ops[k].Kind == DiffLineContext {
			continue
		}

		// Extend over changes and short context runs.
		end := k + 1
		for next := end; next < len(ops); {
			if ops[next].Kind != DiffLineContext {
				next++
				end = next
				continue
			}
			run := next
			for run < len(ops) && ops[run].Kind == DiffLineContext {
				run++
			}
			if run == len(ops) || run-next > 2*ContextLines {
				break
			}
			next = run
		}

		start := max(k-ContextLines, 0)
		stop := min(end+ContextLines, len(ops))
		hunk := DiffHunk{
			OriginalStart: origAt[start] + 1,
			OriginalCount: origAt[stop] - origAt[start],
			ModifiedStart: modAt[start] + 1,
			ModifiedCount: modAt[stop] - modAt[start],
			Lines:         ops[start:stop],
		}
		if hunk.OriginalCount == 0 {
			hunk.OriginalStart--
		}
		if hunk.ModifiedCount == 0 {
			hunk.ModifiedStart--
		}
		hunks = append(hunks, hunk)
		k = end - 1
	}
	return hunks
}
