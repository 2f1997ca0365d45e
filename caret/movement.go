package caret

import (
	"github.com/iw2rmb/flouris/core"
	"github.com/iw2rmb/flouris/dom"
)

// Unit is a movement granularity for NextPosition.
type Unit int

const (
	UnitCharacter Unit = iota
	UnitLine
	UnitLineBoundary
	UnitDocumentBoundary
)

// NextPosition implements single movement operation. It
// returns ok=false when no movement is possible for unit/dir from from —
// callers must leave the selection unchanged in that case.
//
// goalX is the selection's current goal-x (nil if unset); NextPosition
// returns the goal-x the caller should keep: nil for every unit except
// line, which either preserves the passed-in value or lazily establishes
// one from from's current rect.
func NextPosition(root dom.Node, host dom.LayoutHost, cfg core.Config, from Position, unit Unit, dir dom.Direction, goalX *float64) (Position, *float64, bool) {
	switch unit {
	case UnitCharacter:
		pos, ok := nextCharacter(root, host, cfg, from, dir)
		return pos, nil, ok
	case UnitLine:
		return nextLine(root, host, cfg, from, dir, goalX)
	case UnitLineBoundary:
		pos, ok := nextLineBoundary(root, host, cfg, from, dir)
		return pos, nil, ok
	case UnitDocumentBoundary:
		pos, ok := nextDocumentBoundary(root, cfg, dir)
		return pos, nil, ok
	default:
		return Position{}, nil, false
	}
}

// nextCharacter steps one character, retrying once if it lands on a BR
// leaf.
func nextCharacter(root dom.Node, host dom.LayoutHost, cfg core.Config, from Position, dir dom.Direction) (Position, bool) {
	pos, ok := stepCharacterOnce(root, host, cfg, from, dir)
	if !ok {
		return Position{}, false
	}
	if isBR(pos.Leaf) {
		pos2, ok2 := stepCharacterOnce(root, host, cfg, pos, dir)
		if !ok2 {
			return Position{}, false
		}
		pos = pos2
	}
	return pos, true
}

func isBR(n dom.Node) bool {
	return dom.IsElement(n) && n.Tag() == "BR"
}

// stepCharacterOnce is the single-step character move described in
//, before the BR-retry rule is applied.
func stepCharacterOnce(root dom.Node, host dom.LayoutHost, cfg core.Config, from Position, dir dom.Direction) (Position, bool) {
	if dom.IsAtomic(from.Leaf, cfg.Classify) {
		if dir == dom.Forward {
			if from.Offset == 0 {
				return Position{Leaf: from.Leaf, Offset: 1}, true
			}
			next, ok := stepLeaf(root, from.Leaf, dom.Forward, cfg.Classify)
			if !ok {
				return Position{}, false
			}
			result := Normalize(root, host, cfg.Classify, Position{Leaf: next, Offset: 0})
			if Compare(result, from) == 0 {
				return Position{}, false
			}
			return result, true
		}
		if from.Offset == 1 {
			return Position{Leaf: from.Leaf, Offset: 0}, true
		}
		prev, ok := stepLeaf(root, from.Leaf, dom.Backward, cfg.Classify)
		if !ok {
			return Position{}, false
		}
		end := 1
		if dom.IsText(prev) {
			end = textLength(prev)
		}
		result := Normalize(root, host, cfg.Classify, Position{Leaf: prev, Offset: end})
		if Compare(result, from) == 0 {
			// The neighboring text leaf's boundary canonicalizes right back
			// onto this atomic (e.g. an inline atomic claims the adjacent
			// text's end, per the boundary-canonicalization rules); step one
			// character further into that leaf instead of reporting it as
			// the same position.
			if dom.IsText(prev) && end > 0 {
				return Normalize(root, host, cfg.Classify, Position{Leaf: prev, Offset: end - 1}), true
			}
			return Position{}, false
		}
		return result, true
	}

	delta := 1
	if dir == dom.Backward {
		delta = -1
	}
	candidate := Position{Leaf: from.Leaf, Offset: from.Offset + delta}
	result := Normalize(root, host, cfg.Classify, candidate)
	if Compare(result, from) == 0 {
		return Position{}, false
	}
	return result, true
}

// nextLine implements "line" unit: collect the nearest
// adjacent visual line's rects via the rect walker, and pick the one
// closest to goalX horizontally.
func nextLine(root dom.Node, host dom.LayoutHost, cfg core.Config, from Position, dir dom.Direction, goalX *float64) (Position, *float64, bool) {
	gx := resolveGoalX(from, host, cfg, goalX)

	rw := NewRectWalker(root, host, cfg, from, dir)
	line := CollectLine(rw)
	if len(line) == 0 {
		return Position{}, gx, false
	}

	best := line[0]
	bestScore := horizontalScore(best.Rect, *gx)
	for _, rec := range line[1:] {
		if s := horizontalScore(rec.Rect, *gx); s < bestScore {
			best, bestScore = rec, s
		}
	}

	pos, ok := PositionFromPoint(root, host, cfg, *gx, best.Rect.MidY())
	if !ok {
		return Position{}, gx, false
	}
	return pos, gx, true
}

// resolveGoalX returns the passed-in goal-x, or lazily derives one from
// from's current rect when goalX is nil.
func resolveGoalX(from Position, host dom.LayoutHost, cfg core.Config, goalX *float64) *float64 {
	if goalX != nil {
		v := *goalX
		return &v
	}
	rects := RectsOf(from, host, cfg)
	var x float64
	if len(rects) > 0 {
		x = rects[0].MidX()
	}
	return &x
}

// horizontalScore is distance metric: 0 (or negative) when
// rect horizontally contains x, else the distance to the rect's center.
func horizontalScore(r dom.Rect, x float64) float64 {
	if r.Left() <= x && x <= r.Right() {
		return 0
	}
	d := x - r.MidX()
	if d < 0 {
		d = -d
	}
	return d
}

// nextLineBoundary implements "lineboundary" unit,
// including §9's adopted behavior for an atomic-focused position: a
// forward move flips to offset 1, a backward move flips to offset 0,
// without otherwise leaving the atomic.
func nextLineBoundary(root dom.Node, host dom.LayoutHost, cfg core.Config, from Position, dir dom.Direction) (Position, bool) {
	if dom.IsAtomic(from.Leaf, cfg.Classify) {
		target := 0
		if dir == dom.Forward {
			target = 1
		}
		if from.Offset == target {
			return Position{}, false
		}
		return Position{Leaf: from.Leaf, Offset: target}, true
	}

	rw := NewRectWalker(root, host, cfg, from, dir)
	var last Record
	found := false
	for {
		rec, ok := rw.Next()
		if !ok {
			break
		}
		if rec.LineOffset != 0 {
			break
		}
		last, found = rec, true
	}
	if !found {
		return Position{}, false
	}

	x := last.Rect.Right()
	if dir == dom.Backward {
		x = last.Rect.Left()
	}
	pos, ok := PositionFromPoint(root, host, cfg, x, last.Rect.MidY())
	if !ok || Compare(pos, from) == 0 {
		return Position{}, false
	}
	return pos, true
}

// nextDocumentBoundary implements "documentboundary" unit:
// walk (B) from root to its first/last addressable leaf. A forward move
// walks root's children backward to land on the document's last leaf; a
// backward move walks forward to land on its first.
func nextDocumentBoundary(root dom.Node, cfg core.Config, dir dom.Direction) (Position, bool) {
	walkDir := dom.Backward
	if dir == dom.Backward {
		walkDir = dom.Forward
	}
	w := dom.NewWalker(root, nil, walkDir, cfg.Classify)
	leaf, ok := w.Next()
	if !ok {
		return Position{}, false
	}
	if dir == dom.Backward {
		return Position{Leaf: leaf, Offset: 0}, true
	}
	offset := 1
	if dom.IsText(leaf) {
		offset = textLength(leaf)
	}
	return Position{Leaf: leaf, Offset: offset}, true
}
