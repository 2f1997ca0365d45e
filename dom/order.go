package dom

// CompareOrder reports the document-order relationship between a and b:
// -1 if a precedes b, +1 if a follows b, 0 if they are the same node. It
// implements the same ancestor-path algorithm a browser's
// Node.compareDocumentPosition uses, walking each node's Parent() chain to
// the root and comparing the first pair of ancestors that diverge by their
// sibling index. An ancestor is considered to precede its own descendant.
//
// a and b must share a common ancestor (typically the editor root); if they
// do not, the result is unspecified but still total (never panics).
func CompareOrder(a, b Node) int {
	if SameNode(a, b) {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	pathA := ancestorPath(a)
	pathB := ancestorPath(b)

	i := 0
	for i < len(pathA) && i < len(pathB) && SameNode(pathA[i], pathB[i]) {
		i++
	}

	switch {
	case i == len(pathA) && i == len(pathB):
		return 0
	case i == len(pathA):
		// a is an ancestor of b (or equal); ancestors precede descendants.
		return -1
	case i == len(pathB):
		return 1
	default:
		parent := pathA[i-1]
		ia := parent.IndexOf(pathA[i])
		ib := parent.IndexOf(pathB[i])
		if ia < ib {
			return -1
		}
		if ia > ib {
			return 1
		}
		return 0
	}
}

// ancestorPath returns [root, ..., parent, n] — n's ancestor chain including
// itself, ordered from outermost to n.
func ancestorPath(n Node) []Node {
	var rev []Node
	for cur := n; cur != nil; cur = cur.Parent() {
		rev = append(rev, cur)
	}
	path := make([]Node, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}
	return path
}
