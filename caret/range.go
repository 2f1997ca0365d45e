package caret

import (
	"github.com/iw2rmb/flouris/dom"
	"github.com/iw2rmb/flouris/internal/grapheme"
)

// StaticRange is the module's own non-live range snapshot, grounded on the
// DOM's StaticRange shape (container/offset pairs rather than live Range
// objects) since it is constructed once per render and never mutated in
// place.
type StaticRange struct {
	StartContainer dom.Node
	StartOffset    int
	EndContainer   dom.Node
	EndOffset      int
}

// MaterializeRange builds the StaticRange the renderer needs from a
// selection's two endpoints. Atomic endpoints are
// translated to parent-indexed offsets: (atomic, 0) becomes
// (atomic.Parent(), IndexOf(atomic)); (atomic, 1) becomes
// (atomic.Parent(), IndexOf(atomic)+1). Text endpoints pass through
// unchanged. The range is always ordered [start, end] in document order,
// regardless of which endpoint is the selection's anchor or focus.
func MaterializeRange(anchor, focus Position) StaticRange {
	start, end := anchor, focus
	if Compare(anchor, focus) > 0 {
		start, end = focus, anchor
	}
	sc, so := materializeEndpoint(start)
	ec, eo := materializeEndpoint(end)
	return StaticRange{StartContainer: sc, StartOffset: so, EndContainer: ec, EndOffset: eo}
}

func materializeEndpoint(p Position) (dom.Node, int) {
	if dom.IsText(p.Leaf) {
		return p.Leaf, p.Offset
	}
	parent := p.Leaf.Parent()
	if parent == nil {
		// Detached atomic (no parent to index into): fall back to the
		// atomic itself so the caller still gets something addressable.
		return p.Leaf, p.Offset
	}
	idx := parent.IndexOf(p.Leaf)
	if p.Offset == 1 {
		idx++
	}
	return parent, idx
}

// MaterializeText concatenates the visible text between two positions in
// document order, used by editor.Handle.GetText. Atomic leaves contribute
// no text of their own, since their content is never addressed.
func MaterializeText(root dom.Node, cfg dom.ClassifyConfig, anchor, focus Position) string {
	start, end := anchor, focus
	if Compare(anchor, focus) > 0 {
		start, end = focus, anchor
	}
	if dom.SameNode(start.Leaf, end.Leaf) {
		return sliceLeafText(start.Leaf, start.Offset, end.Offset)
	}

	var out []string
	out = append(out, sliceLeafText(start.Leaf, start.Offset, textLength(start.Leaf)))

	w := dom.NewWalker(root, start.Leaf, dom.Forward, cfg)
	for {
		n, ok := w.Next()
		if !ok {
			break
		}
		if dom.SameNode(n, end.Leaf) {
			out = append(out, sliceLeafText(n, 0, end.Offset))
			break
		}
		out = append(out, sliceLeafText(n, 0, textLength(n)))
	}

	total := ""
	for _, s := range out {
		total += s
	}
	return total
}

func sliceLeafText(n dom.Node, start, end int) string {
	if !dom.IsText(n) {
		return ""
	}
	return grapheme.Slice(n.Text(), start, end)
}
