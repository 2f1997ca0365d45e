package dom

import "strings"

// Normalize runs the one-shot pre-pass over root's subtree: it merges
// adjacent text siblings, collapses whitespace runs to a single space, and
// trims leading/trailing whitespace from text leaves that sit against a
// block boundary. editor.Attach calls it exactly once; after that, root's
// text node boundaries are stable for the rest of the session.
//
// host resolves block/inline for the trim rule (dom.IsBlock); mut performs
// the actual edits. Normalize is idempotent: running it again on an already
// normalized tree is a no-op.
func Normalize(root Node, host LayoutHost, mut Mutator) {
	if root == nil || mut == nil {
		return
	}
	mergeAdjacentText(root, mut)
	collapseAndTrim(root, host, mut)
}

// mergeAdjacentText walks the tree iteratively (a stack, not recursion) and
// folds every run of consecutive text siblings into the first node of the
// run.
func mergeAdjacentText(root Node, mut Mutator) {
	stack := []Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children := snapshotChildren(n)
		i := 0
		for i < len(children) {
			if !IsText(children[i]) {
				i++
				continue
			}
			j := i + 1
			for j < len(children) && IsText(children[j]) {
				j++
			}
			if j > i+1 {
				var merged strings.Builder
				merged.WriteString(children[i].Text())
				for k := i + 1; k < j; k++ {
					merged.WriteString(children[k].Text())
				}
				mut.SetText(children[i], merged.String())
				for k := i + 1; k < j; k++ {
					mut.RemoveChild(n, children[k])
				}
			}
			i = j
		}

		for _, c := range children {
			if IsElement(c) {
				stack = append(stack, c)
			}
		}
	}
}

// collapseAndTrim is the second pass: it re-reads each element's (now
// merged) children and applies the whitespace rules to every text leaf
// among them.
func collapseAndTrim(root Node, host LayoutHost, mut Mutator) {
	stack := []Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children := snapshotChildren(n)
		for i, c := range children {
			if IsElement(c) {
				stack = append(stack, c)
				continue
			}
			if !IsText(c) {
				continue
			}
			text := collapseWhitespace(c.Text())
			if trimsLeading(n, children, i, host) {
				text = strings.TrimLeft(text, " ")
			}
			if trimsTrailing(n, children, i, host) {
				text = strings.TrimRight(text, " ")
			}
			if text != c.Text() {
				mut.SetText(c, text)
			}
		}
	}
}

func trimsLeading(parent Node, siblings []Node, i int, host LayoutHost) bool {
	if i == 0 {
		return IsBlock(parent, host)
	}
	prev := siblings[i-1]
	return IsElement(prev) && IsBlock(prev, host)
}

func trimsTrailing(parent Node, siblings []Node, i int, host LayoutHost) bool {
	if i == len(siblings)-1 {
		return IsBlock(parent, host)
	}
	next := siblings[i+1]
	return IsElement(next) && IsBlock(next, host)
}

func snapshotChildren(n Node) []Node {
	count := n.ChildCount()
	children := make([]Node, count)
	for i := 0; i < count; i++ {
		children[i] = n.ChildAt(i)
	}
	return children
}

// collapseWhitespace replaces every run of whitespace with a single space.
func collapseWhitespace(s string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range s {
		if isWhitespace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		b.WriteRune(r)
		inSpace = false
	}
	return b.String()
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
