package dom

// testNode is a minimal, mutable tree used by this package's own tests. It
// is deliberately separate from the domtest package: these tests exercise
// dom in isolation, without pulling in a layout engine.
type testNode struct {
	kind     NodeKind
	tag      string
	classes  map[string]bool
	text     string
	parent   *testNode
	children []*testNode
}

func newEl(tag string, children ...*testNode) *testNode {
	n := &testNode{kind: KindElement, tag: tag}
	for _, c := range children {
		n.children = append(n.children, c)
		c.parent = n
	}
	return n
}

func newText(text string) *testNode {
	return &testNode{kind: KindText, text: text}
}

func (n *testNode) withClass(token string) *testNode {
	if n.classes == nil {
		n.classes = map[string]bool{}
	}
	n.classes[token] = true
	return n
}

func (n *testNode) Kind() NodeKind { return n.kind }
func (n *testNode) Text() string   { return n.text }
func (n *testNode) Tag() string    { return n.tag }

func (n *testNode) HasClass(token string) bool {
	return n.classes != nil && n.classes[token]
}

func (n *testNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *testNode) FirstChild() Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

func (n *testNode) LastChild() Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

func (n *testNode) NextSibling() Node { return n.sibling(1) }
func (n *testNode) PrevSibling() Node { return n.sibling(-1) }

func (n *testNode) sibling(delta int) Node {
	if n.parent == nil {
		return nil
	}
	idx := n.parent.IndexOf(n)
	if idx < 0 {
		return nil
	}
	idx += delta
	if idx < 0 || idx >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[idx]
}

func (n *testNode) ChildCount() int { return len(n.children) }

func (n *testNode) ChildAt(i int) Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *testNode) IndexOf(child Node) int {
	cn, ok := child.(*testNode)
	if !ok {
		return -1
	}
	for i, c := range n.children {
		if c == cn {
			return i
		}
	}
	return -1
}

// blockHost is a LayoutHost stub that reports every tag in blockTags as a
// block and everything else as inline; it never computes real rects.
type blockHost struct {
	blockTags map[string]bool
}

func (h blockHost) ComputedDisplay(n Node) Display {
	if !IsElement(n) {
		return Display{Available: true, Inline: true}
	}
	return Display{Available: true, Inline: !h.blockTags[n.Tag()]}
}

func (h blockHost) ClientRects(n Node, start, end int) []Rect { return nil }
func (h blockHost) BoundingRect(n Node) Rect                  { return Rect{} }
func (h blockHost) CaretRangeFromPoint(x, y float64) (Node, int, bool) {
	return nil, 0, false
}

// treeMutator mutates testNode trees in place, the way a real host would
// mutate its own DOM on Normalize's behalf.
type treeMutator struct{}

func (treeMutator) SetText(n Node, text string) {
	n.(*testNode).text = text
}

func (treeMutator) RemoveChild(parent, child Node) {
	p := parent.(*testNode)
	c := child.(*testNode)
	idx := p.IndexOf(c)
	if idx < 0 {
		return
	}
	p.children = append(p.children[:idx], p.children[idx+1:]...)
	c.parent = nil
}
