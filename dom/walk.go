package dom

// Direction is the traversal direction for a Walker.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Walker enumerates addressable leaves under root, starting
// just after (Forward) or just before (Backward) a given node, or from the
// very beginning/end of the document when no start node is given. It is a
// single-use, stateful iterator; construct a fresh one for each traversal.
//
// root itself is never yielded. A forward step from a container descends
// into its first child unless the container is atomic; backward is the
// mirror. Non-addressable containers are traversed but never yielded.
type Walker struct {
	root    Node
	cfg     ClassifyConfig
	dir     Direction
	start   Node // nil means "from the document's own start/end boundary"
	cur     Node
	started bool
}

// NewWalker constructs a Walker over root's subtree. If start is non-nil,
// the first call to Next returns the first addressable leaf strictly after
// (Forward) or before (Backward) start. If start is nil, the first call to
// Next returns the very first (Forward) or very last (Backward) addressable
// leaf under root.
func NewWalker(root Node, start Node, dir Direction, cfg ClassifyConfig) *Walker {
	return &Walker{root: root, cfg: cfg, dir: dir, start: start}
}

// Next returns the next addressable leaf in the walker's direction, or
// ok=false once the walker is exhausted.
func (w *Walker) Next() (Node, bool) {
	if w.root == nil {
		return nil, false
	}
	for {
		var n Node
		if !w.started {
			w.started = true
			n = w.firstStep()
		} else if w.cur == nil {
			return nil, false
		} else if w.dir == Forward {
			n = nextRaw(w.root, w.cur, w.cfg)
		} else {
			n = prevRaw(w.root, w.cur, w.cfg)
		}

		if n == nil {
			w.cur = nil
			return nil, false
		}
		w.cur = n
		if IsAddressable(n, w.cfg) {
			return n, true
		}
	}
}

func (w *Walker) firstStep() Node {
	if w.dir == Forward {
		if w.start != nil {
			return nextRaw(w.root, w.start, w.cfg)
		}
		return firstRaw(w.root)
	}
	if w.start != nil {
		return prevRaw(w.root, w.start, w.cfg)
	}
	return lastRaw(w.root, w.cfg)
}

// firstRaw returns root's first child, the entry point for a Forward walk
// that starts from the document's own beginning.
func firstRaw(root Node) Node {
	if root == nil {
		return nil
	}
	return root.FirstChild()
}

// lastRaw returns the deepest last descendant of root's last child, the
// entry point for a Backward walk that starts from the document's own end.
func lastRaw(root Node, cfg ClassifyConfig) Node {
	if root == nil {
		return nil
	}
	lc := root.LastChild()
	if lc == nil {
		return nil
	}
	return deepestLast(lc, cfg)
}

// nextRaw advances one step in pre-order from cur (which must be root or a
// descendant of root): it descends into cur's first child unless cur is
// atomic, and otherwise climbs to the nearest ancestor-or-self with an
// unvisited next sibling. It returns nil once the climb reaches root.
func nextRaw(root Node, cur Node, cfg ClassifyConfig) Node {
	if cur == nil {
		return nil
	}
	if !IsAtomic(cur, cfg) {
		if fc := cur.FirstChild(); fc != nil {
			return fc
		}
	}
	n := cur
	for n != nil && n != root {
		if sib := n.NextSibling(); sib != nil {
			return sib
		}
		n = n.Parent()
	}
	return nil
}

// prevRaw is the mirror of nextRaw: it moves to the previous sibling's
// deepest last descendant, or climbs to the parent if there is no previous
// sibling. When the climb reaches root it returns root itself; called with
// cur == root, it returns nil.
func prevRaw(root Node, cur Node, cfg ClassifyConfig) Node {
	if cur == nil || cur == root {
		return nil
	}
	if sib := cur.PrevSibling(); sib != nil {
		return deepestLast(sib, cfg)
	}
	parent := cur.Parent()
	if parent == nil {
		return nil
	}
	return parent
}

func deepestLast(n Node, cfg ClassifyConfig) Node {
	for !IsAtomic(n, cfg) {
		lc := n.LastChild()
		if lc == nil {
			break
		}
		n = lc
	}
	return n
}
