package caret

import (
	"github.com/iw2rmb/flouris/core"
	"github.com/iw2rmb/flouris/dom"
	"github.com/iw2rmb/flouris/internal/grapheme"
)

// RectsOf converts a valid position into one or more layout rectangles in
// viewport coordinates. A text position typically yields one
// rect; two or more indicate the zero-width range sits on a soft-wrap
// boundary. An atomic position yields the element's bounding rect, height-
// compensated to cfg.MinCursorHeight and narrowed to a zero-width rect at
// the element's left (offset 0) or right (offset 1) edge.
func RectsOf(p Position, host dom.LayoutHost, cfg core.Config) []dom.Rect {
	if host == nil || p.Leaf == nil {
		return nil
	}
	if dom.IsText(p.Leaf) {
		return textCaretRects(p, host)
	}
	return []dom.Rect{atomicCaretRect(p, host, cfg.MinCursorHeight)}
}

// textCaretRects maps a text position to the zero-width client rect(s) at
// the grapheme-cluster-safe codepoint offset corresponding to p.Offset.
func textCaretRects(p Position, host dom.LayoutHost) []dom.Rect {
	codepointOffset := grapheme.Boundaries(p.Leaf.Text())
	idx := p.Offset
	if idx < 0 {
		idx = 0
	}
	if idx >= len(codepointOffset) {
		idx = len(codepointOffset) - 1
	}
	off := codepointOffset[idx]

	rects := host.ClientRects(p.Leaf, off, off)
	out := make([]dom.Rect, 0, len(rects))
	for _, r := range rects {
		if r.IsZero() {
			continue
		}
		out = append(out, r)
	}
	return out
}

// atomicCaretRect maps an atomic position to a zero-width rect pinned to
// the element's left or right edge, expanding the height to minCursorHeight
// if the element's own bounding rect is shorter than that.
func atomicCaretRect(p Position, host dom.LayoutHost, minCursorHeight float64) dom.Rect {
	bounds := host.BoundingRect(p.Leaf)

	height := bounds.Height
	y := bounds.Y
	if height < minCursorHeight {
		pad := (minCursorHeight - height) / 2
		y -= pad
		height = minCursorHeight
	}

	x := bounds.Left()
	if p.Offset == 1 {
		x = bounds.Right()
	}
	return dom.Rect{X: x, Y: y, Width: 0, Height: height}
}

// RectsForRange materializes the highlight rects for a selection spanning
// [start, end] (already ordered by the caller via Selection.Bounds): one or
// more rects per visual line fragment, in document order. A collapsed range
// on an atomic endpoint falls back to RectsOf's minimum-height caret rect,
// per the range materialization rule for collapsed atomic endpoints.
func RectsForRange(root dom.Node, host dom.LayoutHost, cfg core.Config, start, end Position) []dom.Rect {
	if host == nil || start.Leaf == nil || end.Leaf == nil {
		return nil
	}
	if dom.SameNode(start.Leaf, end.Leaf) && start.Offset == end.Offset {
		return RectsOf(start, host, cfg)
	}
	if dom.SameNode(start.Leaf, end.Leaf) {
		return rangeRectsWithinLeaf(start.Leaf, start.Offset, end.Offset, host)
	}

	var out []dom.Rect
	out = append(out, partialLeafRects(start.Leaf, start.Offset, dom.Forward, host, cfg.MinCursorHeight)...)

	w := dom.NewWalker(root, start.Leaf, dom.Forward, cfg.Classify)
	for {
		leaf, ok := w.Next()
		if !ok {
			break
		}
		if dom.SameNode(leaf, end.Leaf) {
			out = append(out, partialLeafRects(leaf, end.Offset, dom.Backward, host, cfg.MinCursorHeight)...)
			break
		}
		out = append(out, fullLeafRects(leaf, host, cfg.MinCursorHeight)...)
	}
	return out
}

// rangeRectsWithinLeaf handles a start/end pair that share a single leaf but
// are not collapsed: a text sub-range, or an atomic's full [0,1] span.
func rangeRectsWithinLeaf(leaf dom.Node, startOffset, endOffset int, host dom.LayoutHost) []dom.Rect {
	if dom.IsText(leaf) {
		bounds := grapheme.Boundaries(leaf.Text())
		lo, hi := startOffset, endOffset
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo < 0 {
			lo = 0
		}
		if hi >= len(bounds) {
			hi = len(bounds) - 1
		}
		return host.ClientRects(leaf, bounds[lo], bounds[hi])
	}
	return []dom.Rect{fullAtomicRect(leaf, host, 0)}
}
