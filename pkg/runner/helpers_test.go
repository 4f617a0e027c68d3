package runner_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/classwrap/pkg/annotation"
)

// longClass is a class list that does not fit in 40 columns.
func longClass() string {
	names := make([]string, 0, 20)
	for i := 1; i <= 20; i++ {
		names = append(names, fmt.Sprintf("c%02d", i))
	}
	return strings.Join(names, " ")
}

// sidecarFor annotates the first class="..." attribute of source.
func sidecarFor(t *testing.T, source, dialect string) string {
	t.Helper()

	start := strings.Index(source, `class="`)
	require.GreaterOrEqual(t, start, 0)
	start += len("class=")
	end := strings.Index(source[start+1:], `"`)
	require.GreaterOrEqual(t, end, 0)
	end += start + 2

	var b strings.Builder
	if dialect != "" {
		fmt.Fprintf(&b, "dialect: %s\n", dialect)
	}
	fmt.Fprintf(&b, "nodes:\n  - kind: attribute\n    start: %d\n    end: %d\n    on_tag_line: true\n", start, end)
	return b.String()
}

// project creates files under a temp dir. A source entry gets a sidecar
// when annotate is true.
type projectFile struct {
	content  string
	annotate bool
	dialect  string
}

func project(t *testing.T, files map[string]projectFile) string {
	t.Helper()

	dir := t.TempDir()
	for name, f := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(f.content), 0o644))
		if f.annotate {
			sidecar := sidecarFor(t, f.content, f.dialect)
			require.NoError(t, os.WriteFile(annotation.SidecarPath(path), []byte(sidecar), 0o644))
		}
	}
	return dir
}
