package caret

import (
	"github.com/iw2rmb/flouris/dom"
	"github.com/iw2rmb/flouris/internal/grapheme"
)

// fullLeafRects returns the complete rect set for an addressable leaf,
// used for every leaf after the starting one.
func fullLeafRects(leaf dom.Node, host dom.LayoutHost, minCursorHeight float64) []dom.Rect {
	if dom.IsText(leaf) {
		bounds := grapheme.Boundaries(leaf.Text())
		return host.ClientRects(leaf, 0, bounds[len(bounds)-1])
	}
	return []dom.Rect{fullAtomicRect(leaf, host, minCursorHeight)}
}

// partialLeafRects returns the starting leaf's second sub-range: the tail
// after offset (forward) or the head before offset (backward), ordered
// nearest-to-offset first.
func partialLeafRects(leaf dom.Node, offset int, dir dom.Direction, host dom.LayoutHost, minCursorHeight float64) []dom.Rect {
	if dom.IsText(leaf) {
		bounds := grapheme.Boundaries(leaf.Text())
		idx := offset
		if idx < 0 {
			idx = 0
		}
		if idx >= len(bounds) {
			idx = len(bounds) - 1
		}
		off := bounds[idx]
		last := bounds[len(bounds)-1]

		var rects []dom.Rect
		if dir == dom.Forward {
			rects = host.ClientRects(leaf, off, last)
		} else {
			rects = host.ClientRects(leaf, 0, off)
			reverseRects(rects)
		}
		return rects
	}

	// Atomic leaf: the partial range is either the whole element (if the
	// starting offset still has the element ahead of us in this
	// direction) or nothing (if we already started past it).
	aheadForward := dir == dom.Forward && offset == 0
	aheadBackward := dir == dom.Backward && offset == 1
	if aheadForward || aheadBackward {
		return []dom.Rect{fullAtomicRect(leaf, host, minCursorHeight)}
	}
	return nil
}

// fullAtomicRect returns an atomic leaf's height-compensated bounding
// rect, unlike atomicCaretRect it keeps the element's full width: the rect
// walker needs a rect with real horizontal extent to compare against
// goalX during line movement.
func fullAtomicRect(leaf dom.Node, host dom.LayoutHost, minCursorHeight float64) dom.Rect {
	bounds := host.BoundingRect(leaf)
	if bounds.Height >= minCursorHeight {
		return bounds
	}
	pad := (minCursorHeight - bounds.Height) / 2
	bounds.Y -= pad
	bounds.Height = minCursorHeight
	return bounds
}
