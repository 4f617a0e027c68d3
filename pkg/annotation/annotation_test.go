package annotation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/classwrap/pkg/annotation"
	"github.com/yaklabco/classwrap/pkg/classname"
)

const source = `<div class="a b" :class="cond ? 'x' : 'y'"></div>`

const sidecar = `
dialect: vue
nodes:
  - kind: attribute
    start: 11
    end: 16
    element: div
    on_tag_line: true
  - kind: preserving
    start: 25
    end: 41
  - kind: expression
    start: 32
    end: 35
    ternary_operand: true
    bound_attribute: true
  - kind: expression
    start: 38
    end: 41
    delimiter: single
    ternary_operand: true
    bound_attribute: true
`

func TestParse(t *testing.T) {
	t.Parallel()

	file, err := annotation.Parse([]byte(sidecar))
	require.NoError(t, err)
	assert.Equal(t, "vue", file.Dialect)
	require.Len(t, file.Nodes, 4)
	assert.Equal(t, "attribute", file.Nodes[0].Kind)
	assert.True(t, file.Nodes[0].OnTagLine)
	assert.Equal(t, "single", file.Nodes[3].Delimiter)
}

func TestParse_Forms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "  \n", want: 0},
		{name: "yaml list", input: "- {kind: attribute, start: 0, end: 3}\n", want: 1},
		{name: "json object", input: `{"nodes": [{"kind": "expression", "start": 1, "end": 4}]}`, want: 1},
		{name: "json list", input: `[{"kind": "attribute", "start": 0, "end": 3}, {"kind": "preserving", "start": 5, "end": 9}]`, want: 2},
		{name: "document marker", input: "---\nnodes: []\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file, err := annotation.Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Len(t, file.Nodes, tt.want)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := annotation.Parse([]byte("nodes:\n  - kind: attribute\n    begin: 3\n"))
	require.Error(t, err)
}

func TestNodes(t *testing.T) {
	t.Parallel()

	file, err := annotation.Parse([]byte(sidecar))
	require.NoError(t, err)

	nodes, err := file.Nodes(source)
	require.NoError(t, err)
	require.Len(t, nodes, 4)

	assert.Equal(t, classname.KindAttribute, nodes[0].Kind)
	assert.Equal(t, classname.DelimiterDouble, nodes[0].Delimiter)
	assert.Equal(t, `"a b"`, source[nodes[0].Span.Start:nodes[0].Span.End])

	assert.Equal(t, classname.KindPreserving, nodes[1].Kind)
	assert.Equal(t, classname.DelimiterNone, nodes[1].Delimiter)

	assert.Equal(t, classname.DelimiterSingle, nodes[2].Delimiter)
	assert.True(t, nodes[2].BoundAttribute)
	assert.Equal(t, classname.DelimiterSingle, nodes[3].Delimiter)
}

func TestNodes_QuoteFlags(t *testing.T) {
	t.Parallel()

	src := "x = `it's \"quoted\"`"
	file := &annotation.File{Nodes: []annotation.Entry{{Kind: "expression", Start: 4, End: len(src)}}}

	nodes, err := file.Nodes(src)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, classname.DelimiterBacktick, nodes[0].Delimiter)
	assert.True(t, nodes[0].HasSingleQuote)
	assert.True(t, nodes[0].HasDoubleQuote)
	assert.False(t, nodes[0].HasBacktick)
}

func TestNodes_ObjectKey(t *testing.T) {
	t.Parallel()

	src := "{[`a b`]: x}"
	file := &annotation.File{Nodes: []annotation.Entry{{Kind: "expression", Start: 1, End: 8, ObjectKey: true}}}

	nodes, err := file.Nodes(src)
	require.NoError(t, err)
	assert.Equal(t, classname.DelimiterBacktick, nodes[0].Delimiter)
	assert.False(t, nodes[0].HasBacktick)
}

func TestNodes_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry annotation.Entry
	}{
		{name: "unknown kind", entry: annotation.Entry{Kind: "template", Start: 0, End: 3}},
		{name: "unknown delimiter", entry: annotation.Entry{Kind: "attribute", Start: 11, End: 16, Delimiter: "guillemet"}},
		{name: "past end", entry: annotation.Entry{Kind: "attribute", Start: 11, End: 500}},
		{name: "reversed", entry: annotation.Entry{Kind: "attribute", Start: 16, End: 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file := &annotation.File{Nodes: []annotation.Entry{tt.entry}}
			_, err := file.Nodes(source)
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "page.vue")
	require.NoError(t, os.WriteFile(annotation.SidecarPath(path), []byte(sidecar), 0o644))

	file, err := annotation.Load(annotation.SidecarPath(path))
	require.NoError(t, err)
	assert.Len(t, file.Nodes, 4)

	_, err = annotation.Load(filepath.Join(dir, "missing.vue.classnames.yaml"))
	require.ErrorIs(t, err, annotation.ErrNoSidecar)
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	file, err := annotation.Parse([]byte(sidecar))
	require.NoError(t, err)

	data, err := file.Marshal()
	require.NoError(t, err)

	again, err := annotation.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, file, again)
}

func TestSidecarPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "src/App.vue.classnames.yaml", annotation.SidecarPath("src/App.vue"))
	assert.True(t, annotation.IsSidecar("src/App.vue.classnames.yaml"))
	assert.False(t, annotation.IsSidecar("src/App.vue"))
}
