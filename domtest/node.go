package domtest

import "github.com/iw2rmb/flouris/dom"

// Node is a mutable, in-memory dom.Node implementation. The zero value is
// not usable; construct with Text or Element.
type Node struct {
	kind     dom.NodeKind
	tag      string
	classes  map[string]bool
	text     string
	parent   *Node
	children []*Node
}

// Text constructs a text leaf.
func Text(s string) *Node {
	return &Node{kind: dom.KindText, text: s}
}

// Element constructs an element node with the given tag and children.
func Element(tag string, children ...*Node) *Node {
	n := &Node{kind: dom.KindElement, tag: tag}
	for _, c := range children {
		n.children = append(n.children, c)
		c.parent = n
	}
	return n
}

// WithClass adds a class token to an element node and returns it, for
// fluent construction (e.g. Element("SPAN", ...).WithClass("atomic-component")).
func (n *Node) WithClass(token string) *Node {
	if n.classes == nil {
		n.classes = map[string]bool{}
	}
	n.classes[token] = true
	return n
}

// Append adds child as n's last child.
func (n *Node) Append(child *Node) *Node {
	n.children = append(n.children, child)
	child.parent = n
	return n
}

func (n *Node) Kind() dom.NodeKind { return n.kind }
func (n *Node) Text() string       { return n.text }
func (n *Node) Tag() string        { return n.tag }

func (n *Node) HasClass(token string) bool {
	return n.classes != nil && n.classes[token]
}

func (n *Node) Parent() dom.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) FirstChild() dom.Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

func (n *Node) LastChild() dom.Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

func (n *Node) NextSibling() dom.Node { return n.sibling(1) }
func (n *Node) PrevSibling() dom.Node { return n.sibling(-1) }

func (n *Node) sibling(delta int) dom.Node {
	if n.parent == nil {
		return nil
	}
	idx := n.parent.indexOf(n)
	if idx < 0 {
		return nil
	}
	idx += delta
	if idx < 0 || idx >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[idx]
}

func (n *Node) ChildCount() int { return len(n.children) }

func (n *Node) ChildAt(i int) dom.Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *Node) IndexOf(child dom.Node) int {
	cn, ok := child.(*Node)
	if !ok {
		return -1
	}
	return n.indexOf(cn)
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Mutator implements dom.Mutator over *Node trees.
type Mutator struct{}

func (Mutator) SetText(n dom.Node, text string) {
	n.(*Node).text = text
}

func (Mutator) RemoveChild(parent, child dom.Node) {
	p := parent.(*Node)
	c := child.(*Node)
	idx := p.indexOf(c)
	if idx < 0 {
		return
	}
	p.children = append(p.children[:idx], p.children[idx+1:]...)
	c.parent = nil
}
