package dom

// Rect is a rectangle in viewport coordinates, shaped like the DOM's
// DOMRect: sub-pixel floats, not an integer pixel grid (image.Rectangle
// would be the wrong type here — a browser's getClientRects never lines up
// on integer boundaries).
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Top returns the top edge (Y for positive height, Y+Height for negative).
func (r Rect) Top() float64 {
	if r.Height < 0 {
		return r.Y + r.Height
	}
	return r.Y
}

// Bottom returns the bottom edge (Y+Height for positive height, Y for negative).
func (r Rect) Bottom() float64 {
	if r.Height < 0 {
		return r.Y
	}
	return r.Y + r.Height
}

// Left returns the left edge (X for positive width, X+Width for negative).
func (r Rect) Left() float64 {
	if r.Width < 0 {
		return r.X + r.Width
	}
	return r.X
}

// Right returns the right edge (X+Width for positive width, X for negative).
func (r Rect) Right() float64 {
	if r.Width < 0 {
		return r.X
	}
	return r.X + r.Width
}

func (r Rect) MidX() float64 { return (r.Left() + r.Right()) / 2 }
func (r Rect) MidY() float64 { return (r.Top() + r.Bottom()) / 2 }

// IsZero reports whether both the rect's width and height are zero. A
// zero-width rect with a height (a text caret) is not zero. The rect walker
// separately drops every zero-height rect rather than emitting it.
func (r Rect) IsZero() bool {
	return r.Width == 0 && r.Height == 0
}

// VerticalOverlapRatio computes the vertical-overlap ratio between two
// rects: max(0, min(b1,b2) - max(t1,t2)) / min(h1,h2). A ratio of 0 means
// the rects do not overlap vertically at all.
func VerticalOverlapRatio(a, b Rect) float64 {
	top := a.Top()
	if b.Top() > top {
		top = b.Top()
	}
	bottom := a.Bottom()
	if b.Bottom() < bottom {
		bottom = b.Bottom()
	}
	overlap := bottom - top
	if overlap < 0 {
		overlap = 0
	}
	ha, hb := a.Height, b.Height
	if ha < 0 {
		ha = -ha
	}
	if hb < 0 {
		hb = -hb
	}
	minH := ha
	if hb < minH {
		minH = hb
	}
	if minH == 0 {
		return 0
	}
	return overlap / minH
}

// Display is the subset of computed style information node classification
// needs. Available is false when the host cannot compute style for a node
// (e.g. it is detached); an unavailable Display is treated as inline.
type Display struct {
	Available bool
	Inline    bool
}

// LayoutHost is the host layout engine collaborator: the browser's (or
// other host's) getComputedStyle, getClientRects, and caretRangeFromPoint
// equivalents.
//
// The core never mutates anything through LayoutHost; every method is a
// pure query against the host's current layout.
type LayoutHost interface {
	// ComputedDisplay reports the node's computed display, used by
	// dom.IsBlock.
	ComputedDisplay(n Node) Display

	// ClientRects returns the layout rectangles for the zero-width or
	// ranged text position [startOffset, endOffset) inside a text leaf.
	// Offsets are rune (codepoint) offsets into n.Text(). Typically one
	// rect is returned; more than one indicates a soft-wrap boundary.
	ClientRects(n Node, startOffset, endOffset int) []Rect

	// BoundingRect returns an element's bounding rectangle, used for
	// atomic leaves.
	BoundingRect(n Node) Rect

	// CaretRangeFromPoint is the host's hit-test primitive: given a
	// viewport coordinate, it returns the node and offset the host's
	// layout engine would place a caret at, or ok=false if the point
	// does not resolve to anything.
	CaretRangeFromPoint(x, y float64) (n Node, offset int, ok bool)
}
