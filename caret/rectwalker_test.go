package caret

import (
	"testing"

	"github.com/iw2rmb/flouris/dom"
	"github.com/iw2rmb/flouris/domtest"
)

func TestCollectLine_ForwardFromFirstLine(t *testing.T) {
	root, ab, br, _, _, host, cfg := buildFixture()

	rw := NewRectWalker(root, host, cfg, Position{Leaf: ab, Offset: 0}, dom.Forward)
	line := CollectLine(rw)
	if len(line) == 0 {
		t.Fatalf("want at least one record on the next line")
	}
	for _, rec := range line {
		if rec.LineOffset != 1 {
			t.Fatalf("every record collected should have LineOffset 1, got %d for %v", rec.LineOffset, rec.Leaf)
		}
	}
	_ = br
}

func TestNextPosition_LineMovesToNextVisualLine(t *testing.T) {
	root, ab, _, _, ef, host, cfg := buildFixture()

	got, gx, ok := NextPosition(root, host, cfg, Position{Leaf: ab, Offset: 0}, UnitLine, dom.Forward, nil)
	if !ok {
		t.Fatalf("line-forward from the document's first line should move")
	}
	if gx == nil {
		t.Fatalf("line movement should establish a goal-x")
	}
	startY := host.BoundingRect(ab).Y
	gotY := host.BoundingRect(got.Leaf).Y
	if gotY == startY {
		t.Fatalf("line-forward should land on a different visual line, got same Y as start")
	}
	_ = ef
}

// TestNextPosition_LineMovePreservesGoalXAcrossConsecutiveMoves covers
// three stacked lines of differing length: a goal-x established on a wide
// first line must survive being carried across a narrower second line, so
// a third, wide-again line lands at the same column rather than wherever
// the narrow line happened to end.
func TestNextPosition_LineMovePreservesGoalXAcrossConsecutiveMoves(t *testing.T) {
	line1 := domtest.Text("Line 1 is long")
	line2 := domtest.Text("Short")
	line3 := domtest.Text("Line 3 is long too")
	div1 := domtest.Element("DIV", line1)
	div2 := domtest.Element("DIV", line2)
	div3 := domtest.Element("DIV", line3)
	root := domtest.Element("ROOT", div1, div2, div3)
	host, cfg := newHostFor(root)

	onLine2, gx1, ok := NextPosition(root, host, cfg, Position{Leaf: line1, Offset: 10}, UnitLine, dom.Forward, nil)
	if !ok || gx1 == nil {
		t.Fatalf("first line-forward should move and establish a goal-x, got ok=%v gx=%v", ok, gx1)
	}
	if onLine2.Leaf != asNode(line2) {
		t.Fatalf("first line-forward should land on the second line, got %+v", onLine2)
	}

	onLine3, gx2, ok2 := NextPosition(root, host, cfg, onLine2, UnitLine, dom.Forward, gx1)
	if !ok2 || gx2 == nil {
		t.Fatalf("second line-forward should move and carry a goal-x, got ok=%v gx=%v", ok2, gx2)
	}
	if *gx1 != *gx2 {
		t.Fatalf("second line-forward should reuse the first move's goal-x, got %v want %v", *gx2, *gx1)
	}
	if onLine3.Leaf != asNode(line3) || onLine3.Offset != 10 {
		t.Fatalf("reusing the wide goal-x should land at the same column on line 3, got %+v", onLine3)
	}
}
