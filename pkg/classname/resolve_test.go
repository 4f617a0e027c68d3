package classname_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/classwrap/pkg/classname"
)

func node(kind classname.Kind, start, end int) classname.ClassNameNode {
	return classname.ClassNameNode{Kind: kind, Span: classname.Span{Start: start, End: end}}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	// Given out of order on purpose.
	nodes := []classname.ClassNameNode{
		node(classname.KindExpression, 13, 15),
		node(classname.KindExpression, 40, 50),
		node(classname.KindPreserving, 12, 20),
		node(classname.KindExpression, 0, 30),
		node(classname.KindExpression, 5, 10),
	}

	forest := classname.Resolve(nodes)
	require.Len(t, forest.Nodes, 5)

	starts := make([]int, 0, len(forest.Nodes))
	for i := range forest.Nodes {
		assert.Equal(t, i, forest.Nodes[i].Index)
		starts = append(starts, forest.Nodes[i].Span.Start)
	}
	assert.Equal(t, []int{0, 5, 12, 13, 40}, starts)

	assert.Equal(t, -1, forest.Nodes[0].Parent)
	assert.Equal(t, 0, forest.Nodes[1].Parent)
	assert.Equal(t, 0, forest.Nodes[2].Parent)
	assert.Equal(t, 2, forest.Nodes[3].Parent)
	assert.Equal(t, -1, forest.Nodes[4].Parent)

	assert.Equal(t, []int{1, 2}, forest.Nodes[0].Children)
	assert.Equal(t, []int{3}, forest.Nodes[2].Children)
	assert.Equal(t, []int{0, 4}, forest.Roots())
}

func TestResolve_Unrelated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		nodes []classname.ClassNameNode
	}{
		{
			name: "identical spans",
			nodes: []classname.ClassNameNode{
				node(classname.KindExpression, 10, 20),
				node(classname.KindAttribute, 10, 20),
			},
		},
		{
			name: "partial overlap",
			nodes: []classname.ClassNameNode{
				node(classname.KindExpression, 10, 20),
				node(classname.KindExpression, 15, 25),
			},
		},
		{
			name: "shared start",
			nodes: []classname.ClassNameNode{
				node(classname.KindExpression, 10, 30),
				node(classname.KindExpression, 10, 20),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			forest := classname.Resolve(tt.nodes)
			for i := range forest.Nodes {
				assert.False(t, forest.Nodes[i].HasParent())
				assert.Empty(t, forest.Nodes[i].Children)
			}
			assert.Len(t, forest.Roots(), len(tt.nodes))
		})
	}
}

func TestResolve_Empty(t *testing.T) {
	t.Parallel()

	forest := classname.Resolve(nil)
	assert.Empty(t, forest.Nodes)
	assert.Empty(t, forest.Roots())
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	nodes := []classname.ClassNameNode{
		node(classname.KindExpression, 5, 10),
		node(classname.KindExpression, 0, 30),
	}
	classname.Resolve(nodes)
	assert.Equal(t, 5, nodes[0].Span.Start)
	assert.Equal(t, 0, nodes[1].Span.Start)
}

func TestSpan(t *testing.T) {
	t.Parallel()

	outer := classname.Span{Start: 0, End: 10}
	assert.Equal(t, 10, outer.Len())
	assert.True(t, outer.Encloses(classname.Span{Start: 1, End: 10}))
	assert.False(t, outer.Encloses(classname.Span{Start: 0, End: 5}))
	assert.False(t, outer.Encloses(classname.Span{Start: 5, End: 11}))
	assert.Equal(t, classname.Span{Start: 3, End: 13}, outer.Shift(3))
	assert.Equal(t, "[0:10]", outer.String())
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, kind := range []classname.Kind{
		classname.KindUnknown,
		classname.KindAttribute,
		classname.KindExpression,
		classname.KindPreserving,
	} {
		got, err := classname.ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	_, err := classname.ParseKind("template")
	require.Error(t, err)
}
