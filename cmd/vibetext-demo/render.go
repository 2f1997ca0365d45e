package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/flouris/caret"
	"github.com/iw2rmb/flouris/dom"
)

// chipGlyph is the literal text an atomic (non-BR) leaf renders as. Its
// length must match the AtomicWidth the layout host was built with, so
// layout rects and rendered columns agree.
const chipGlyph = "[img]"

// demoLayout renders the document into terminal rows, one string per
// visual line, using the same block/BR-forces-new-line flow the layout
// host's own Relayout pass uses — with CellWidth and LineHeight both 1, a
// rect's X/Y land directly on rendered column/row.
func demoLayout(root dom.Node, classify dom.ClassifyConfig, host dom.LayoutHost) []string {
	var rows []string
	var cur strings.Builder
	var prevBlock dom.Node
	first := true

	flush := func() {
		rows = append(rows, cur.String())
		cur.Reset()
	}

	w := dom.NewWalker(root, nil, dom.Forward, classify)
	for {
		leaf, ok := w.Next()
		if !ok {
			break
		}
		block := nearestBlock(leaf, host)
		if !first && !dom.SameNode(block, prevBlock) {
			flush()
		}
		first = false
		prevBlock = block

		switch {
		case dom.IsText(leaf):
			cur.WriteString(leaf.Text())
		case leaf.Tag() == "BR":
			flush()
		default:
			cur.WriteString(chipGlyph)
		}
	}
	flush()
	return rows
}

// nearestBlock returns the nearest ancestor-or-self of n that is a block
// element, or nil if none is — mirroring the layout host's own rule for
// when a leaf starts a new visual line.
func nearestBlock(n dom.Node, host dom.LayoutHost) dom.Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		if dom.IsBlock(cur, host) {
			return cur
		}
	}
	return nil
}

// styleSpan marks one half-open column range [From, To) on row Row with a
// style to apply at render time.
type styleSpan struct {
	Row, From, To int
	Style         func(string) string
}

// applySpans renders rows with each span's style applied to its column
// range, later spans painted on top of earlier ones.
func applySpans(rows []string, spans []styleSpan) string {
	var out strings.Builder
	for i, row := range rows {
		runes := []rune(row)
		painted := make([]string, len(runes))
		used := make([]bool, len(runes))
		for _, sp := range spans {
			if sp.Row != i {
				continue
			}
			from, to := sp.From, sp.To
			if to == from {
				// A zero-width caret paints the cell it sits before.
				to = from + 1
			}
			if from < 0 {
				from = 0
			}
			if to > len(runes) {
				to = len(runes)
			}
			for c := from; c < to; c++ {
				painted[c] = sp.Style(string(runes[c]))
				used[c] = true
			}
		}
		for c, r := range runes {
			if used[c] {
				out.WriteString(painted[c])
			} else {
				out.WriteRune(r)
			}
		}
		// A zero-width caret landing exactly at end-of-line has no cell of
		// its own; paint a trailing reverse-video space for it.
		for _, sp := range spans {
			if sp.Row == i && sp.From == sp.To && sp.From >= len(runes) {
				out.WriteString(sp.Style(" "))
			}
		}
		if i < len(rows)-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// rectSpans converts layout rects (in row/column units, since the demo
// host is built with CellWidth == LineHeight == 1) into styleSpans.
func rectSpans(rects []dom.Rect, style func(string) string) []styleSpan {
	spans := make([]styleSpan, 0, len(rects))
	for _, r := range rects {
		row := int(r.Y)
		from := int(r.X)
		to := int(r.X + r.Width)
		if to <= from {
			to = from
		}
		spans = append(spans, styleSpan{Row: row, From: from, To: to, Style: style})
	}
	return spans
}

// selectionDescription formats a selection's bounds for the inspector
// popup, materializing its text via range materialization when
// non-collapsed.
func selectionDescription(root dom.Node, classify dom.ClassifyConfig, sel caret.Selection) string {
	start, end := sel.Bounds()
	if sel.IsCollapsed() {
		return "caret at offset " + strconv.Itoa(start.Offset)
	}
	text := caret.MaterializeText(root, classify, start, end)
	return fmt.Sprintf("selection [%d, %d]: %q", start.Offset, end.Offset, text)
}
