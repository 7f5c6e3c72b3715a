package docspan

import (
	"cmp"
	"fmt"
	"slices"
)

// Node is one element of a structure tree. The root node has a nil Span.
type Node struct {
	Span     *Span
	Parent   *Node
	Children []*Node
}

// Kind returns the kind of the wrapped span, or "" for the root.
func (n *Node) Kind() Kind {
	if n.Span == nil {
		return ""
	}
	return n.Span.Kind
}

// IsRoot reports whether n is the synthetic root.
func (n *Node) IsRoot() bool {
	return n.Span == nil
}

func (n *Node) covers(s Span) bool {
	return n.Span == nil || n.Span.Covers(s)
}

// Ambiguity records two spans with identical range and depth. The tree
// builder nests the later span under the earlier one and keeps going.
type Ambiguity struct {
	Outer Span
	Inner Span
}

// Error implements the error interface so ambiguities can be logged as warnings.
func (a Ambiguity) Error() string {
	return fmt.Sprintf("ambiguous structure: %s and %s share range and depth %d", a.Outer, a.Inner, a.Inner.Depth)
}

// Code returns EAMBIGUOUS.
func (a Ambiguity) Code() string {
	return EAMBIGUOUS
}

// Tree is a snapshot of the structure derived from a span list. It does not
// follow later changes to the spans it was built from.
type Tree struct {
	Root        *Node
	Ambiguities []Ambiguity
}

// BuildTree reconstructs the parent/child hierarchy of spans using the
// covering relation. Spans with identical ranges are nested by ascending
// depth; equal depths keep input order and are reported as ambiguities.
func BuildTree(spans []Span) *Tree {
	sorted := cloneSpans(spans)
	slices.SortStableFunc(sorted, func(a, b Span) int {
		if c := cmp.Compare(a.Begin, b.Begin); c != 0 {
			return c
		}
		if c := cmp.Compare(b.End, a.End); c != 0 {
			return c
		}
		return cmp.Compare(a.Depth, b.Depth)
	})

	tree := &Tree{Root: &Node{}}
	stack := []*Node{tree.Root}
	for i := range sorted {
		s := &sorted[i]
		for len(stack) > 1 && !stack[len(stack)-1].covers(*s) {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]
		if parent.Span != nil && parent.Span.SameRange(*s) && parent.Span.Depth == s.Depth {
			tree.Ambiguities = append(tree.Ambiguities, Ambiguity{Outer: *parent.Span, Inner: *s})
		}

		node := &Node{Span: s, Parent: parent}
		parent.Children = append(parent.Children, node)
		stack = append(stack, node)
	}
	return tree
}

// Walk visits every node below the root in document order. Returning false
// from fn stops the walk.
func (t *Tree) Walk(fn func(*Node) bool) {
	stack := slices.Clone(t.Root.Children)
	slices.Reverse(stack)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
}

// Lookup returns the first node in document order whose span has the same
// range and kind as s. A zero Kind matches any kind.
func (t *Tree) Lookup(s Span) *Node {
	var found *Node
	t.Walk(func(n *Node) bool {
		if n.Span.SameRange(s) && (s.Kind == "" || n.Span.Kind == s.Kind) {
			found = n
			return false
		}
		return true
	})
	return found
}

// Nodes returns every node below the root in document order.
func (t *Tree) Nodes() []*Node {
	var nodes []*Node
	t.Walk(func(n *Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}
