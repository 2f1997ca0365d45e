package caret

import "github.com/iw2rmb/flouris/dom"

// canonicalizeTextEnd applies boundary-adjacency
// canonicalization rules 1-4. n is a text leaf already known to be a valid
// text position ([0, length]); if k is not at the very end, the position
// needs no canonicalization and is returned unchanged.
func canonicalizeTextEnd(root dom.Node, host dom.LayoutHost, cfg dom.ClassifyConfig, n dom.Node, k, length int) Position {
	if k != length {
		return Position{Leaf: n, Offset: k}
	}

	next, ok := stepLeaf(root, n, dom.Forward, cfg)
	if !ok {
		return Position{Leaf: n, Offset: k}
	}

	if dom.IsAtomic(next, cfg) {
		// Rule 1: an inline atomic immediately claims the boundary. A
		// block atomic (e.g. a table sitting at block level) falls
		// through to rule 4's "block-separated" case and the position
		// stays put.
		if dom.IsInline(next, host) {
			return Position{Leaf: next, Offset: 0}
		}
		return Position{Leaf: n, Offset: k}
	}

	currentInWrapper := dom.IsInline(n.Parent(), host)
	nextInWrapper := dom.IsInline(next.Parent(), host)

	switch {
	case currentInWrapper && nextInWrapper:
		// Rule 2: mark-to-mark boundary — stay on the left side.
		return Position{Leaf: n, Offset: k}
	case !currentInWrapper && nextInWrapper:
		// Rule 3: entering a styled run feels like entering inside it.
		return Position{Leaf: next, Offset: 0}
	default:
		// Rule 4: plain-to-plain, or block-separated.
		return Position{Leaf: n, Offset: k}
	}
}

// nearestAroundEmpty resolves a position at an empty, childless container
// (e.g. <p></p>) by falling through to the nearest addressable leaf in
// document order — preferring the leaf that follows, then the leaf that
// precedes, the empty container.
func nearestAroundEmpty(root, container dom.Node, cfg dom.ClassifyConfig) (Position, bool) {
	if next, ok := stepLeaf(root, container, dom.Forward, cfg); ok {
		return Position{Leaf: next, Offset: 0}, true
	}
	if prev, ok := stepLeaf(root, container, dom.Backward, cfg); ok {
		if dom.IsAtomic(prev, cfg) {
			return Position{Leaf: prev, Offset: 1}, true
		}
		return Position{Leaf: prev, Offset: textLength(prev)}, true
	}
	return Position{}, false
}

// clampTerminal is Normalize's last resort if its step budget is ever
// exhausted: clamp whatever (n, k) it landed on into a valid shape rather
// than loop forever.
func clampTerminal(n dom.Node, k int, cfg dom.ClassifyConfig) Position {
	if n == nil {
		return Position{}
	}
	if dom.IsAtomic(n, cfg) {
		if k < 0 {
			k = 0
		} else if k > 1 {
			k = 1
		}
		return Position{Leaf: n, Offset: k}
	}
	if dom.IsText(n) {
		length := textLength(n)
		if k < 0 {
			k = 0
		} else if k > length {
			k = length
		}
		return Position{Leaf: n, Offset: k}
	}
	return Position{}
}
