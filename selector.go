package docspan

// Selector evaluates paths against structure trees and generates them back.
//
// Kinds lists the recognized kinds. Nodes of any other kind are transparent
// wrappers: their children count as children of the nearest recognized
// ancestor, in both directions. An empty Kinds recognizes every kind.
type Selector struct {
	Kinds []Kind
}

// NewSelector returns a Selector recognizing the given kinds.
func NewSelector(kinds ...Kind) *Selector {
	return &Selector{Kinds: kinds}
}

func (s *Selector) recognizes(kind Kind) bool {
	if len(s.Kinds) == 0 {
		return true
	}
	for _, k := range s.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// children returns the recognized children of n, looking through
// unrecognized wrappers. The walk is iterative to bound stack depth.
func (s *Selector) children(n *Node) []*Node {
	var out []*Node
	stack := make([]*Node, 0, len(n.Children))
	for i := len(n.Children) - 1; i >= 0; i-- {
		stack = append(stack, n.Children[i])
	}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.recognizes(c.Kind()) {
			out = append(out, c)
			continue
		}
		for i := len(c.Children) - 1; i >= 0; i-- {
			stack = append(stack, c.Children[i])
		}
	}
	return out
}

// parent returns the nearest recognized ancestor of n, or the root.
func (s *Selector) parent(n *Node) *Node {
	p := n.Parent
	for p != nil && !p.IsRoot() && !s.recognizes(p.Kind()) {
		p = p.Parent
	}
	return p
}

func (s *Selector) match(n *Node, seg Segment) []*Node {
	var out []*Node
	count := 0
	for _, c := range s.children(n) {
		if c.Kind() != seg.Kind {
			continue
		}
		count++
		if seg.Nth == 0 || seg.Nth == count {
			out = append(out, c)
		}
	}
	return out
}

// Select returns the nodes matched by the last segment of p, in document
// order. An empty result is a normal outcome, not an error.
func (s *Selector) Select(tree *Tree, p Path) []*Node {
	if p.IsZero() {
		return nil
	}
	candidates := []*Node{tree.Root}
	for _, seg := range p.Segments {
		var next []*Node
		for _, c := range candidates {
			next = append(next, s.match(c, seg)...)
		}
		if len(next) == 0 {
			return nil
		}
		candidates = next
	}
	return candidates
}

// GeneratePath returns the shortest path that selects exactly n. It reports
// false for the root, for nodes of an unrecognized kind, and for nodes not
// attached to a tree.
func (s *Selector) GeneratePath(n *Node) (Path, bool) {
	if n == nil || n.IsRoot() || !s.recognizes(n.Kind()) {
		return Path{}, false
	}

	var reversed []Segment
	for cur := n; !cur.IsRoot(); {
		parent := s.parent(cur)
		if parent == nil {
			return Path{}, false
		}

		seg := Segment{Kind: cur.Kind()}
		total, pos := 0, 0
		for _, sib := range s.children(parent) {
			if sib.Kind() != seg.Kind {
				continue
			}
			total++
			if sib == cur {
				pos = total
			}
		}
		if total > 1 {
			seg.Nth = pos
		}
		reversed = append(reversed, seg)
		cur = parent
	}

	p := Path{Segments: make([]Segment, len(reversed))}
	for i, seg := range reversed {
		p.Segments[len(reversed)-1-i] = seg
	}
	return p, true
}

// Select evaluates p against tree with every kind recognized.
func Select(tree *Tree, p Path) []*Node {
	return (&Selector{}).Select(tree, p)
}

// GeneratePath returns the path selecting n when only the given kinds are
// recognized.
func GeneratePath(n *Node, kinds ...Kind) (Path, bool) {
	return NewSelector(kinds...).GeneratePath(n)
}

// SpansOf returns the spans wrapped by nodes.
func SpansOf(nodes []*Node) []Span {
	if len(nodes) == 0 {
		return nil
	}
	spans := make([]Span, len(nodes))
	for i, n := range nodes {
		spans[i] = *n.Span
	}
	return spans
}
