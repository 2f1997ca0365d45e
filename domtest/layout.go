package domtest

import (
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/flouris/dom"
	"github.com/iw2rmb/flouris/internal/grapheme"
)

// Config configures Host's flow-layout pass.
type Config struct {
	// CellWidth is the horizontal advance, in layout units, of one
	// terminal cell (go-runewidth's unit).
	CellWidth float64
	// LineHeight is the vertical advance between visual lines.
	LineHeight float64
	// AtomicWidth is the width given to every atomic leaf other than BR.
	// BR always has width 0.
	AtomicWidth float64
	// Block is the tag-level display table: true means block, false
	// means inline. Tags absent from the table default to inline.
	Block map[string]bool
}

// DefaultConfig mirrors a typical browser's default display table for the
// tags this module cares about.
func DefaultConfig() Config {
	return Config{
		CellWidth:   8,
		LineHeight:  20,
		AtomicWidth: 16,
		Block: map[string]bool{
			"DIV":   true,
			"P":     true,
			"TABLE": true,
			"HR":    true,
			"LI":    true,
			"UL":    true,
			"OL":    true,
		},
	}
}

type leafLayout struct {
	rect    dom.Rect
	atomic  bool
	codeX   []float64 // per-codepoint-boundary x position, aligned with grapheme.Boundaries(text)
	boundCP []int     // the codepoint offsets codeX[i] corresponds to
}

// Host is the in-memory dom.LayoutHost reference implementation. Build a
// Host with NewHost, then call Relayout whenever the tree under root
// changes shape.
type Host struct {
	cfg  Config
	root dom.Node
	classify dom.ClassifyConfig

	layout map[dom.Node]leafLayout
	docH   float64
}

// NewHost builds a Host and performs the initial layout pass over root.
func NewHost(root dom.Node, cfg Config, classify dom.ClassifyConfig) *Host {
	h := &Host{cfg: cfg, root: root, classify: classify}
	h.Relayout(root)
	return h
}

// Relayout recomputes the entire layout. Call after any mutation to root's
// shape (text edits, insertions, removals).
func (h *Host) Relayout(root dom.Node) {
	h.root = root
	h.layout = map[dom.Node]leafLayout{}

	var curY, curX float64
	var prevBlock dom.Node
	first := true

	w := dom.NewWalker(root, nil, dom.Forward, h.classify)
	for {
		leaf, ok := w.Next()
		if !ok {
			break
		}
		block := nearestBlock(leaf, h.cfg.Block)
		if !first && !dom.SameNode(block, prevBlock) {
			curY += h.cfg.LineHeight
			curX = 0
		}
		first = false
		prevBlock = block

		switch {
		case dom.IsText(leaf):
			h.layoutText(leaf, curX, curY, &curX)
		case leaf.Tag() == "BR":
			h.layout[leaf] = leafLayout{
				rect:   dom.Rect{X: curX, Y: curY, Width: 0, Height: h.cfg.LineHeight},
				atomic: true,
			}
			curY += h.cfg.LineHeight
			curX = 0
		default:
			width := h.cfg.AtomicWidth
			h.layout[leaf] = leafLayout{
				rect:   dom.Rect{X: curX, Y: curY, Width: width, Height: h.cfg.LineHeight},
				atomic: true,
			}
			curX += width
		}
	}
	h.docH = curY + h.cfg.LineHeight
}

func (h *Host) layoutText(leaf dom.Node, startX, y float64, curX *float64) {
	text := leaf.Text()
	bounds := grapheme.Boundaries(text)
	clusters := grapheme.Split(text)

	codeX := make([]float64, len(bounds))
	codeX[0] = startX
	x := startX
	for i, c := range clusters {
		w := runewidth.StringWidth(c)
		x += float64(w) * h.cfg.CellWidth
		codeX[i+1] = x
	}

	h.layout[leaf] = leafLayout{
		rect:    dom.Rect{X: startX, Y: y, Width: x - startX, Height: h.cfg.LineHeight},
		codeX:   codeX,
		boundCP: bounds,
	}
	*curX = x
}

// nearestBlock returns the nearest ancestor-or-self of n whose tag is
// marked block in blockTags, or nil if none is (the document's implicit
// root line).
func nearestBlock(n dom.Node, blockTags map[string]bool) dom.Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		if dom.IsElement(cur) && blockTags[cur.Tag()] {
			return cur
		}
	}
	return nil
}

// ComputedDisplay implements dom.LayoutHost.
func (h *Host) ComputedDisplay(n dom.Node) dom.Display {
	if !dom.IsElement(n) {
		return dom.Display{Available: true, Inline: true}
	}
	if !h.attached(n) {
		return dom.Display{Available: false}
	}
	return dom.Display{Available: true, Inline: !h.cfg.Block[n.Tag()]}
}

func (h *Host) attached(n dom.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		if dom.SameNode(cur, h.root) {
			return true
		}
	}
	return false
}

// ClientRects implements dom.LayoutHost. start/end are codepoint offsets.
func (h *Host) ClientRects(n dom.Node, start, end int) []dom.Rect {
	ll, ok := h.layout[n]
	if !ok || ll.codeX == nil {
		return nil
	}
	x0 := h.xAtCodepoint(ll, start)
	x1 := h.xAtCodepoint(ll, end)
	return []dom.Rect{{X: x0, Y: ll.rect.Y, Width: x1 - x0, Height: ll.rect.Height}}
}

func (h *Host) xAtCodepoint(ll leafLayout, cp int) float64 {
	for i, b := range ll.boundCP {
		if b == cp {
			return ll.codeX[i]
		}
		if b > cp {
			if i == 0 {
				return ll.codeX[0]
			}
			return ll.codeX[i-1]
		}
	}
	if len(ll.codeX) == 0 {
		return 0
	}
	return ll.codeX[len(ll.codeX)-1]
}

// BoundingRect implements dom.LayoutHost.
func (h *Host) BoundingRect(n dom.Node) dom.Rect {
	if ll, ok := h.layout[n]; ok {
		return ll.rect
	}
	return h.boundingOfSubtree(n)
}

func (h *Host) boundingOfSubtree(n dom.Node) dom.Rect {
	var out dom.Rect
	first := true
	w := dom.NewWalker(n, nil, dom.Forward, h.classify)
	for {
		leaf, ok := w.Next()
		if !ok {
			break
		}
		ll, ok := h.layout[leaf]
		if !ok {
			continue
		}
		if first {
			out = ll.rect
			first = false
			continue
		}
		out = unionRect(out, ll.rect)
	}
	return out
}

func unionRect(a, b dom.Rect) dom.Rect {
	left, right := minF(a.Left(), b.Left()), maxF(a.Right(), b.Right())
	top, bottom := minF(a.Top(), b.Top()), maxF(a.Bottom(), b.Bottom())
	return dom.Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// CaretRangeFromPoint implements dom.LayoutHost by scanning every laid-out
// leaf for the closest vertical line, then the closest horizontal leaf on
// it.
func (h *Host) CaretRangeFromPoint(x, y float64) (dom.Node, int, bool) {
	var bestLeaf dom.Node
	bestVDist := -1.0
	for leaf, ll := range h.layout {
		vDist := verticalDistance(ll.rect, y)
		if bestVDist < 0 || vDist < bestVDist {
			bestVDist = vDist
			bestLeaf = leaf
		}
	}
	if bestLeaf == nil {
		return nil, 0, false
	}
	targetY := h.layout[bestLeaf].rect.Y

	var chosen dom.Node
	bestHDist := -1.0
	for leaf, ll := range h.layout {
		if ll.rect.Y != targetY {
			continue
		}
		hDist := horizontalDistance(ll.rect, x)
		if bestHDist < 0 || hDist < bestHDist {
			bestHDist = hDist
			chosen = leaf
		}
	}
	if chosen == nil {
		return nil, 0, false
	}

	ll := h.layout[chosen]
	if ll.codeX == nil {
		return chosen, 0, true
	}
	return chosen, nearestCodepoint(ll, x), true
}

func verticalDistance(r dom.Rect, y float64) float64 {
	if y < r.Top() {
		return r.Top() - y
	}
	if y > r.Bottom() {
		return y - r.Bottom()
	}
	return 0
}

func horizontalDistance(r dom.Rect, x float64) float64 {
	if x < r.Left() {
		return r.Left() - x
	}
	if x > r.Right() {
		return x - r.Right()
	}
	return 0
}

func nearestCodepoint(ll leafLayout, x float64) int {
	best := ll.boundCP[0]
	bestDist := absF(x - ll.codeX[0])
	for i, cp := range ll.boundCP {
		d := absF(x - ll.codeX[i])
		if d < bestDist {
			bestDist = d
			best = cp
		}
	}
	return best
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
