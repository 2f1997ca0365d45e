package caret

import (
	"github.com/iw2rmb/flouris/core"
	"github.com/iw2rmb/flouris/dom"
)

// Record is one entry of the rect walker's output stream:
// a leaf, one of its layout rects, the rect's visual-line offset relative
// to the starting line (0, 1, 2, ... forward; 0, -1, -2, ... backward), and
// whether this rect is the one currently anchoring that line (either the
// very first rect emitted, or the rect that triggered the most recent line
// transition).
type Record struct {
	Leaf        dom.Node
	Rect        dom.Rect
	LineOffset  int
	AtLineStart bool
}

type pendingRect struct {
	leaf dom.Node
	rect dom.Rect
}

// RectWalker is a pull iterator that
// stitches the logical tree walker (dom.Walker) with per-leaf layout rects
// into a stream of visual-line-grouped Records.
type RectWalker struct {
	root  dom.Node
	host  dom.LayoutHost
	cfg   core.Config
	dir   dom.Direction
	start Position

	walker      *dom.Walker
	startedLeaf bool
	pending     []pendingRect

	haveAnchor bool
	anchor     dom.Rect
	lineOffset int
}

// NewRectWalker constructs a RectWalker emitting records in dir starting
// from the leaf and offset of start.
func NewRectWalker(root dom.Node, host dom.LayoutHost, cfg core.Config, start Position, dir dom.Direction) *RectWalker {
	return &RectWalker{
		root:  root,
		host:  host,
		cfg:   cfg,
		dir:   dir,
		start: start,
	}
}

// Next returns the next Record in the stream, or ok=false once exhausted.
func (w *RectWalker) Next() (Record, bool) {
	for {
		for len(w.pending) == 0 {
			if !w.refill() {
				return Record{}, false
			}
		}
		pr := w.pending[0]
		w.pending = w.pending[1:]

		if pr.rect.Height == 0 {
			// Zero-height rects are dropped, never emitted.
			continue
		}

		atAnchor, emit := w.compare(pr.rect)
		if !emit {
			continue
		}
		return Record{Leaf: pr.leaf, Rect: pr.rect, LineOffset: w.lineOffset, AtLineStart: atAnchor}, true
	}
}

// compare implements step 4 of against the running
// lineAnchorRect.
func (w *RectWalker) compare(rect dom.Rect) (atAnchor bool, emit bool) {
	if !w.haveAnchor {
		w.anchor = rect
		w.haveAnchor = true
		return true, true
	}

	ratio := dom.VerticalOverlapRatio(w.anchor, rect)
	if ratio >= w.cfg.VerticalOverlapThreshold {
		return false, true
	}

	// Candidate new line; filter regressions first.
	if w.dir == dom.Forward {
		if rect.Bottom() <= w.anchor.Bottom() {
			return false, false
		}
		w.lineOffset++
	} else {
		if rect.Top() >= w.anchor.Top() {
			return false, false
		}
		w.lineOffset--
	}
	w.anchor = rect
	return true, true
}

// refill loads w.pending with the next source's rects. It returns false
// once there is nothing left to walk.
func (w *RectWalker) refill() bool {
	if !w.startedLeaf {
		w.startedLeaf = true
		w.pending = w.startLeafRects()
		return len(w.pending) > 0 || w.refill()
	}
	if w.walker == nil {
		w.walker = dom.NewWalker(w.root, w.start.Leaf, w.dir, w.cfg.Classify)
	}
	next, ok := w.walker.Next()
	if !ok {
		return false
	}
	rects := fullLeafRects(next, w.host, w.cfg.MinCursorHeight)
	if w.dir == dom.Backward {
		reverseRects(rects)
	}
	w.pending = wrapRects(next, rects)
	if len(w.pending) == 0 {
		return w.refill()
	}
	return true
}

// startLeafRects builds the starting leaf's two sub-ranges: the
// zero-width cursor rect at the start offset (to anchor the line
// comparison), then the partial tail (forward) or partial head (backward)
// of the leaf.
func (w *RectWalker) startLeafRects() []pendingRect {
	leaf := w.start.Leaf
	if leaf == nil {
		return nil
	}
	cursor := RectsOf(w.start, w.host, w.cfg)
	partial := partialLeafRects(leaf, w.start.Offset, w.dir, w.host, w.cfg.MinCursorHeight)

	out := wrapRects(leaf, cursor)
	out = append(out, wrapRects(leaf, partial)...)
	return out
}

func wrapRects(leaf dom.Node, rects []dom.Rect) []pendingRect {
	out := make([]pendingRect, len(rects))
	for i, r := range rects {
		out[i] = pendingRect{leaf: leaf, rect: r}
	}
	return out
}

func reverseRects(rs []dom.Rect) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}

// CollectLine materializes the full rect set of one visual line adjacent to
// from: skipWhile(lineOffset == 0) then takeWhile(|lineOffset| == 1).
// Movement is the only consumer that needs the whole line materialized at
// once (to pick the horizontally-closest rect); everything else stays lazy.
func CollectLine(rw *RectWalker) []Record {
	var out []Record
	skipping := true
	for {
		rec, ok := rw.Next()
		if !ok {
			break
		}
		if skipping {
			if rec.LineOffset == 0 {
				continue
			}
			skipping = false
		}
		if abs(rec.LineOffset) != 1 {
			break
		}
		out = append(out, rec)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
