package caret

import "github.com/iw2rmb/flouris/dom"

// maxNormalizeStepsFloor is the minimum iteration budget Normalize grants
// itself regardless of document size, so tiny documents never starve it.
const maxNormalizeStepsFloor = 64

// Normalize takes any (leaf, offset) — possibly with an out-of-range offset
// or a container leaf — and returns a valid Position It
// is implemented as a bounded loop, not recursion, so a pathological or cyclic host tree cannot blow the
// stack; the bound is a generous step count derived from root's size and is
// never expected to fire on well-formed input.
func Normalize(root dom.Node, host dom.LayoutHost, cfg dom.ClassifyConfig, p Position) Position {
	n, k := p.Leaf, p.Offset
	budget := normalizeBudget(root)

	for step := 0; step < budget; step++ {
		if n == nil {
			return Position{}
		}

		switch {
		case dom.IsAtomic(n, cfg):
			if k < 0 {
				k = 0
			} else if k > 1 {
				k = 1
			}
			return Position{Leaf: n, Offset: k}

		case dom.IsText(n):
			length := textLength(n)
			switch {
			case k < 0:
				prev, ok := stepLeaf(root, n, dom.Backward, cfg)
				if !ok {
					return Position{Leaf: n, Offset: 0}
				}
				if dom.IsAtomic(prev, cfg) {
					return Position{Leaf: prev, Offset: 1}
				}
				n, k = prev, k+textLength(prev)
				continue

			case k > length:
				next, ok := stepLeaf(root, n, dom.Forward, cfg)
				if !ok {
					return Position{Leaf: n, Offset: length}
				}
				if dom.IsAtomic(next, cfg) {
					return Position{Leaf: next, Offset: 0}
				}
				n, k = next, k-length
				continue

			default:
				return canonicalizeTextEnd(root, host, cfg, n, k, length)
			}

		default:
			// n is a container: resolve to its k-th child, or its last
			// descendant if k exceeds its child count.
			child, nextK, ok := descendContainer(n, k, cfg)
			if !ok {
				// Empty container: fall back to the nearest addressable
				// leaf in document order, preferring the leaf that would
				// follow this (empty) position.
				if leaf, ok := nearestAroundEmpty(root, n, cfg); ok {
					n, k = leaf.Leaf, leaf.Offset
					continue
				}
				return Position{}
			}
			n, k = child, nextK
		}
	}

	// Budget exhausted (should not happen on well-formed input): clamp
	// whatever we landed on rather than loop forever.
	return clampTerminal(n, k, cfg)
}

// normalizeBudget bounds the loop by a crude node count of root, so
// normalization always terminates even on a pathological host tree.
func normalizeBudget(root dom.Node) int {
	count := countNodes(root, 0)
	if count < maxNormalizeStepsFloor {
		return maxNormalizeStepsFloor
	}
	return count*2 + maxNormalizeStepsFloor
}

func countNodes(n dom.Node, depth int) int {
	if n == nil || depth > 10000 {
		return 0
	}
	total := 1
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		total += countNodes(c, depth+1)
	}
	return total
}

// stepLeaf returns the next/previous addressable leaf relative to n via a
// single-use dom.Walker.
func stepLeaf(root, n dom.Node, dir dom.Direction, cfg dom.ClassifyConfig) (dom.Node, bool) {
	w := dom.NewWalker(root, n, dir, cfg)
	return w.Next()
}

// descendContainer resolves container's k-th child If k
// is within range, it returns (child, 0) — entering the child at its start.
// If k exceeds the child count, it returns (lastDescendantLeaf, endOffset)
// by walking down the last-child chain to a concrete leaf. ok is false only
// when container has no children at all.
func descendContainer(container dom.Node, k int, cfg dom.ClassifyConfig) (dom.Node, int, bool) {
	count := container.ChildCount()
	if count == 0 {
		return nil, 0, false
	}
	if k >= 0 && k < count {
		return container.ChildAt(k), 0, true
	}

	// k exceeds child count: descend the last-child chain to its deepest
	// leaf and land at that leaf's own end.
	cur := container.ChildAt(count - 1)
	for {
		switch {
		case dom.IsAtomic(cur, cfg):
			return cur, 1, true
		case dom.IsText(cur):
			return cur, textLength(cur), true
		case cur.ChildCount() == 0:
			// Childless, non-atomic, non-text element (an empty inline
			// wrapper): its "end" has no addressable content of its own;
			// report offset 0 and let the caller's boundary logic sort
			// out the real leaf.
			return cur, 0, true
		default:
			cur = cur.ChildAt(cur.ChildCount() - 1)
		}
	}
}
