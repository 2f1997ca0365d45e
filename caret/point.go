package caret

import (
	"github.com/iw2rmb/flouris/core"
	"github.com/iw2rmb/flouris/dom"
	"github.com/iw2rmb/flouris/internal/grapheme"
)

// PositionFromPoint hit-tests a viewport coordinate into a caret position.
// It never returns an invalid position; it returns ok=false when host's
// caret-from-point service resolves to nothing.
func PositionFromPoint(root dom.Node, host dom.LayoutHost, cfg core.Config, x, y float64) (Position, bool) {
	if host == nil {
		return Position{}, false
	}
	n, offset, ok := host.CaretRangeFromPoint(x, y)
	if !ok || n == nil {
		return Position{}, false
	}

	if atomic := nearestAtomicAncestor(n, cfg.Classify); atomic != nil {
		return Position{Leaf: atomic, Offset: sideOfCenter(atomic, host, x)}, true
	}

	switch {
	case dom.IsText(n):
		idx := codepointToGraphemeIndex(n.Text(), offset)
		return Normalize(root, host, cfg.Classify, Position{Leaf: n, Offset: idx}), true

	case dom.IsElement(n):
		return resolveContainerHit(root, host, cfg, n, offset, x), true

	default:
		return Position{}, false
	}
}

// nearestAtomicAncestor returns n itself, or the nearest ancestor of n,
// that is an atomic leaf — or nil if none of n's ancestor chain (including
// itself) is atomic.
func nearestAtomicAncestor(n dom.Node, cfg dom.ClassifyConfig) dom.Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		if dom.IsAtomic(cur, cfg) {
			return cur
		}
	}
	return nil
}

// sideOfCenter implements the atomic half-split rule: 0 if x is left of the
// atomic's horizontal midpoint, else 1.
func sideOfCenter(atomic dom.Node, host dom.LayoutHost, x float64) int {
	bounds := host.BoundingRect(atomic)
	if x < bounds.MidX() {
		return 0
	}
	return 1
}

// resolveContainerHit handles step 2: the hit-test resolved to
// a container element; descend to the first addressable leaf under
// container.ChildAt(offset).
func resolveContainerHit(root dom.Node, host dom.LayoutHost, cfg core.Config, container dom.Node, offset int, x float64) Position {
	idx := offset
	if idx < 0 {
		idx = 0
	}
	count := container.ChildCount()
	if count == 0 {
		if leaf, ok := nearestAroundEmpty(root, container, cfg.Classify); ok {
			return leaf
		}
		return Position{}
	}
	if idx >= count {
		idx = count - 1
	}
	child := container.ChildAt(idx)

	leaf := firstAddressableUnder(child, cfg.Classify)
	if leaf == nil {
		if next, ok := stepLeaf(root, container, dom.Forward, cfg.Classify); ok {
			return Position{Leaf: next, Offset: 0}
		}
		return Position{}
	}

	if dom.IsAtomic(leaf, cfg.Classify) {
		return Position{Leaf: leaf, Offset: sideOfCenter(leaf, host, x)}
	}

	// Text leaf: re-query caret-from-point for a precise text offset,
	// falling back to offset 0 if that query fails.
	if n, textOffset, ok := host.CaretRangeFromPoint(x, host.BoundingRect(leaf).MidY()); ok && dom.SameNode(n, leaf) {
		snapped := grapheme.NearestBoundary(leaf.Text(), textOffset)
		return Position{Leaf: leaf, Offset: codepointToGraphemeIndex(leaf.Text(), snapped)}
	}
	return Position{Leaf: leaf, Offset: 0}
}

// codepointToGraphemeIndex converts a codepoint offset (what the host's
// hit-test APIs speak) into the grapheme-cluster index Position.Offset
// uses, snapping down to the nearest cluster boundary at or before it.
func codepointToGraphemeIndex(text string, codepointOffset int) int {
	bounds := grapheme.Boundaries(text)
	idx := 0
	for i, b := range bounds {
		if b > codepointOffset {
			break
		}
		idx = i
	}
	return idx
}

// firstAddressableUnder returns n itself if it is already addressable,
// otherwise the first addressable leaf in its subtree, or nil if n's
// subtree has no addressable content.
func firstAddressableUnder(n dom.Node, cfg dom.ClassifyConfig) dom.Node {
	if n == nil {
		return nil
	}
	if dom.IsAddressable(n, cfg) {
		return n
	}
	if dom.IsAtomic(n, cfg) {
		return n
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if leaf := firstAddressableUnder(c, cfg); leaf != nil {
			return leaf
		}
	}
	return nil
}
