package dom

// NodeKind discriminates the two node shapes the caret core ever addresses
// or traverses: text content and elements (containers or atomics).
type NodeKind int

const (
	KindText NodeKind = iota
	KindElement
)

func (k NodeKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindElement:
		return "element"
	default:
		return "unknown"
	}
}

// Node is the tree shape the caret core needs from a host-rendered
// document. It is deliberately small: enough to walk the tree in either
// direction, classify a node, and translate an atomic endpoint into a
// parent-indexed offset.
//
// Implementations may wrap a live, mutable tree as long as the host
// invalidates any retained Position after a mutation.
type Node interface {
	Kind() NodeKind

	// Text returns the text content of a KindText node. It returns "" for
	// a KindElement node.
	Text() string

	// Tag returns the upper-cased tag name of a KindElement node (e.g.
	// "BR", "DIV", "STRONG"). It returns "" for a KindText node.
	Tag() string

	// HasClass reports whether a KindElement node carries the given class
	// token. It always returns false for a KindText node.
	HasClass(token string) bool

	Parent() Node
	FirstChild() Node
	LastChild() Node
	NextSibling() Node
	PrevSibling() Node

	// ChildCount and ChildAt give index-addressed access to children, used
	// by normalization's "resolve to the k-th child" rule and by range
	// materialization's parent-indexed atomic offsets.
	ChildCount() int
	ChildAt(i int) Node

	// IndexOf returns the index of child among this node's children, or -1
	// if child is not a direct child of this node.
	IndexOf(child Node) int
}

// SameNode reports whether a and b refer to the same node. Both nil is
// considered the same node; exactly one nil is not.
func SameNode(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}
