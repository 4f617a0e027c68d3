package classname

import "slices"

// Forest holds structured nodes in resolved order. An ancestor always
// precedes its descendants and left siblings precede right siblings.
type Forest struct {
	Nodes []StructuredNode
}

// Roots returns the indices of nodes with no parent, left to right.
func (f *Forest) Roots() []int {
	var roots []int
	for i := range f.Nodes {
		if !f.Nodes[i].HasParent() {
			roots = append(roots, i)
		}
	}
	return roots
}

// Node returns the node at index i.
func (f *Forest) Node(i int) *StructuredNode {
	return &f.Nodes[i]
}

// compareSpans orders spans so that an enclosing span sorts before the
// spans it encloses and disjoint spans sort left to right. Identical spans
// and partial overlaps compare equal.
func compareSpans(a, b Span) int {
	switch {
	case a.End <= b.Start:
		return -1
	case b.End <= a.Start:
		return 1
	case a.Start < b.Start && a.End >= b.End:
		return -1
	case b.Start < a.Start && b.End >= a.End:
		return 1
	default:
		return 0
	}
}

// Resolve builds a forest from a flat list of annotations using only span
// containment. Each node's parent is the nearest preceding node, in
// resolved order, whose span strictly encloses it.
// Duplicate or partially overlapping spans are left unrelated.
func Resolve(nodes []ClassNameNode) *Forest {
	sorted := slices.Clone(nodes)
	slices.SortStableFunc(sorted, func(a, b ClassNameNode) int {
		return compareSpans(a.Span, b.Span)
	})

	forest := &Forest{Nodes: make([]StructuredNode, len(sorted))}
	for i, node := range sorted {
		forest.Nodes[i] = StructuredNode{ClassNameNode: node, Index: i, Parent: -1}
	}

	for i := 1; i < len(forest.Nodes); i++ {
		child := &forest.Nodes[i]
		for j := i - 1; j >= 0; j-- {
			candidate := &forest.Nodes[j]
			if candidate.Span.Encloses(child.Span) {
				child.Parent = j
				candidate.Children = append(candidate.Children, i)
				break
			}
		}
	}

	return forest
}
