package caret

import (
	"github.com/iw2rmb/flouris/core"
	"github.com/iw2rmb/flouris/dom"
)

// Selection is the immutable selection state: an anchor (where the
// selection began), a focus (its active endpoint), and the preserved
// goal-x used by consecutive line movements. A selection is replaced
// wholesale, never mutated in place.
type Selection struct {
	Anchor Position
	Focus  Position
	GoalX  *float64
}

// ModifyKind distinguishes a caret-moving modify from a selection-extending
// one.
type ModifyKind int

const (
	ModifyMove ModifyKind = iota
	ModifyExtend
)

// Collapse normalizes p and returns a collapsed selection at it: anchor
// and focus both become the normalized position, goal-x is cleared.
func Collapse(root dom.Node, host dom.LayoutHost, cfg core.Config, p Position) Selection {
	n := Normalize(root, host, cfg.Classify, p)
	return Selection{Anchor: n, Focus: n}
}

// Extend normalizes p and returns a selection that keeps s's anchor and
// moves its focus to p.
func Extend(root dom.Node, host dom.LayoutHost, cfg core.Config, s Selection, p Position) Selection {
	n := Normalize(root, host, cfg.Classify, p)
	return Selection{Anchor: s.Anchor, Focus: n}
}

// SetBaseAndExtent builds a selection from two independently normalized
// endpoints.
func SetBaseAndExtent(root dom.Node, host dom.LayoutHost, cfg core.Config, anchor, focus Position) Selection {
	return Selection{
		Anchor: Normalize(root, host, cfg.Classify, anchor),
		Focus:  Normalize(root, host, cfg.Classify, focus),
	}
}

// Modify implements modify(type, direction, unit): it asks the movement
// engine for the next focus position and either collapses onto it
// (ModifyMove) or extends the focus to it (ModifyExtend). If no movement
// is possible, s is returned unchanged rather than erroring. The BR-retry
// rule is already applied inside NextPosition's character unit, so Modify
// itself never needs to special-case it.
func (s Selection) Modify(root dom.Node, host dom.LayoutHost, cfg core.Config, kind ModifyKind, dir dom.Direction, unit Unit) Selection {
	newFocus, newGoalX, ok := NextPosition(root, host, cfg, s.Focus, unit, dir, s.GoalX)
	if !ok {
		return s
	}
	if kind == ModifyMove {
		return Selection{Anchor: newFocus, Focus: newFocus, GoalX: newGoalX}
	}
	return Selection{Anchor: s.Anchor, Focus: newFocus, GoalX: newGoalX}
}

// CollapseToStart collapses the selection onto whichever endpoint is
// earlier in document order.
func (s Selection) CollapseToStart() Selection {
	start, _ := s.Bounds()
	return Selection{Anchor: start, Focus: start}
}

// CollapseToEnd collapses the selection onto whichever endpoint is later
// in document order.
func (s Selection) CollapseToEnd() Selection {
	_, end := s.Bounds()
	return Selection{Anchor: end, Focus: end}
}

// IsCollapsed reports whether anchor and focus address the same position.
func (s Selection) IsCollapsed() bool {
	return dom.SameNode(s.Anchor.Leaf, s.Focus.Leaf) && s.Anchor.Offset == s.Focus.Offset
}

// Dir is the selection's directionality, analogous to the DOM Selection's
// "direction" concept.
type Dir int

const (
	DirNone Dir = iota
	DirForward
	DirBackward
)

// Direction reports whether focus is ahead of, behind, or equal to anchor
// in document order.
func (s Selection) Direction() Dir {
	if s.IsCollapsed() {
		return DirNone
	}
	if Compare(s.Anchor, s.Focus) < 0 {
		return DirForward
	}
	return DirBackward
}

// Bounds returns the selection's endpoints ordered (start, end) by
// document order, regardless of which is the anchor and which the focus.
func (s Selection) Bounds() (start, end Position) {
	if Compare(s.Anchor, s.Focus) <= 0 {
		return s.Anchor, s.Focus
	}
	return s.Focus, s.Anchor
}

// Contains reports whether p lies within the selection's closed bounds
// [start, end]. A collapsed selection's single point is itself contained;
// every other position is not.
func (s Selection) Contains(p Position) bool {
	start, end := s.Bounds()
	return Compare(start, p) <= 0 && Compare(p, end) <= 0
}
