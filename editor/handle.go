package editor

import (
	"errors"

	"github.com/iw2rmb/flouris/caret"
	"github.com/iw2rmb/flouris/core"
	"github.com/iw2rmb/flouris/dom"
)

// ErrNilRoot is returned by Attach when given a nil document root.
var ErrNilRoot = errors.New("editor: attach requires a non-nil root")

// ErrAlreadyAttached is returned by Attach when called a second time on a
// Handle that has not been Detach'd.
var ErrAlreadyAttached = errors.New("editor: handle is already attached")

// Handle is the opaque attach/detach handle the host holds for the
// lifetime of an editing session over one document root. It wraps the
// document root, the host's layout integration, the active configuration,
// and the current selection state.
type Handle struct {
	root     dom.Node
	host     dom.LayoutHost
	cfg      core.Config
	sel      caret.Selection
	attached bool
}

// Attach normalizes root's text content in place, initializes an empty
// (zero) selection on h, and marks h attached. It fails for a nil root or
// for attaching an already-attached handle; every position-shaped
// operation on h stays total and nullable regardless. mut is the host's
// editing surface onto root, used once here and never again; host is the
// layout collaborator every later position/rect query is routed through.
func Attach(h *Handle, root dom.Node, host dom.LayoutHost, mut dom.Mutator, cfg core.Config) error {
	if h == nil {
		return ErrNilRoot
	}
	if root == nil {
		return ErrNilRoot
	}
	if h.attached {
		return ErrAlreadyAttached
	}
	dom.Normalize(root, host, mut)
	*h = Handle{root: root, host: host, cfg: cfg, attached: true}
	return nil
}

// Detach drops the Handle's references. It makes no further DOM changes
// beyond the normalization Attach already performed. After Detach, every
// other method on h is a no-op or returns a zero value; Detach itself is
// idempotent.
func Detach(h *Handle) {
	if h == nil {
		return
	}
	h.attached = false
	h.root = nil
	h.host = nil
	h.sel = caret.Selection{}
}

// Attached reports whether h is still attached.
func (h *Handle) Attached() bool {
	return h != nil && h.attached
}

// GetSelection returns the handle's current selection state.
func (h *Handle) GetSelection() caret.Selection {
	if h == nil {
		return caret.Selection{}
	}
	return h.sel
}

// SetSelection normalizes anchor and, if focus is the zero Position,
// collapses onto anchor; otherwise it sets both endpoints independently.
func (h *Handle) SetSelection(anchor, focus caret.Position) {
	if h == nil || !h.attached {
		return
	}
	if focus.IsZero() {
		h.sel = caret.Collapse(h.root, h.host, h.cfg, anchor)
		return
	}
	h.sel = caret.SetBaseAndExtent(h.root, h.host, h.cfg, anchor, focus)
}

// Collapse collapses the selection onto p.
func (h *Handle) Collapse(p caret.Position) {
	if h == nil || !h.attached {
		return
	}
	h.sel = caret.Collapse(h.root, h.host, h.cfg, p)
}

// CollapseToStart collapses onto the selection's document-order-earlier
// endpoint.
func (h *Handle) CollapseToStart() {
	if h == nil || !h.attached {
		return
	}
	h.sel = h.sel.CollapseToStart()
}

// CollapseToEnd collapses onto the selection's document-order-later
// endpoint.
func (h *Handle) CollapseToEnd() {
	if h == nil || !h.attached {
		return
	}
	h.sel = h.sel.CollapseToEnd()
}

// Extend keeps the selection's anchor and moves its focus to p.
func (h *Handle) Extend(p caret.Position) {
	if h == nil || !h.attached {
		return
	}
	h.sel = caret.Extend(h.root, h.host, h.cfg, h.sel, p)
}

// Modify asks the movement engine for the selection's next focus position
// under unit/dir and either collapses onto it (ModifyMove) or extends the
// focus to it (ModifyExtend). If no movement is possible, the selection is
// left unchanged.
func (h *Handle) Modify(kind caret.ModifyKind, dir dom.Direction, unit caret.Unit) {
	if h == nil || !h.attached {
		return
	}
	h.sel = h.sel.Modify(h.root, h.host, h.cfg, kind, dir, unit)
}

// Contains reports whether p lies within the current selection's bounds.
func (h *Handle) Contains(p caret.Position) bool {
	if h == nil || !h.attached {
		return false
	}
	return h.sel.Contains(p)
}

// GetText materializes the selection's text content.
func (h *Handle) GetText() string {
	if h == nil || !h.attached {
		return ""
	}
	start, end := h.sel.Bounds()
	return caret.MaterializeText(h.root, h.cfg.Classify, start, end)
}

// PositionFromPoint resolves viewport coordinates to a position, or
// ok=false if nothing in the document is under the point.
func (h *Handle) PositionFromPoint(x, y float64) (caret.Position, bool) {
	if h == nil || !h.attached {
		return caret.Position{}, false
	}
	return caret.PositionFromPoint(h.root, h.host, h.cfg, x, y)
}

// RectsForPosition returns the layout rect(s) for a single position.
func (h *Handle) RectsForPosition(p caret.Position) []dom.Rect {
	if h == nil || !h.attached {
		return nil
	}
	return caret.RectsOf(p, h.host, h.cfg)
}

// RectsForSelection returns the current selection's highlight rects, one
// or more per visual line fragment (one per leaf fragment), in document
// order.
func (h *Handle) RectsForSelection() []dom.Rect {
	if h == nil || !h.attached {
		return nil
	}
	start, end := h.sel.Bounds()
	return caret.RectsForRange(h.root, h.host, h.cfg, start, end)
}
