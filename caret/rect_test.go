package caret

import "testing"

func TestRectsOf_TextPositionIsZeroWidth(t *testing.T) {
	_, ab, _, _, _, host, cfg := buildFixture()
	rects := RectsOf(Position{Leaf: ab, Offset: 1}, host, cfg)
	if len(rects) != 1 {
		t.Fatalf("want 1 rect for a text caret, got %d", len(rects))
	}
	if rects[0].Width != 0 {
		t.Fatalf("a text caret rect should be zero-width, got %v", rects[0].Width)
	}
}

func TestRectsOf_AtomicPositionPinsToEdge(t *testing.T) {
	_, _, br, _, _, host, cfg := buildFixture()
	start := RectsOf(Position{Leaf: br, Offset: 0}, host, cfg)
	end := RectsOf(Position{Leaf: br, Offset: 1}, host, cfg)
	if len(start) != 1 || len(end) != 1 {
		t.Fatalf("want 1 rect per atomic offset, got %d and %d", len(start), len(end))
	}
	bounds := host.BoundingRect(br)
	if start[0].X != bounds.Left() {
		t.Fatalf("offset 0 should pin to the atomic's left edge")
	}
	if end[0].X != bounds.Right() {
		t.Fatalf("offset 1 should pin to the atomic's right edge")
	}
}

func TestRectsOf_AtomicRectRespectsMinCursorHeight(t *testing.T) {
	_, _, br, _, _, host, cfg := buildFixture()
	cfg.MinCursorHeight = 1000
	r := RectsOf(Position{Leaf: br, Offset: 0}, host, cfg)[0]
	if r.Height != 1000 {
		t.Fatalf("caret height should be expanded to MinCursorHeight, got %v", r.Height)
	}
}

func TestRectsOf_NilHostReturnsNothing(t *testing.T) {
	_, ab, _, _, _, _, cfg := buildFixture()
	if got := RectsOf(Position{Leaf: ab, Offset: 0}, nil, cfg); got != nil {
		t.Fatalf("nil host should yield no rects, got %v", got)
	}
}

func TestRectsForRange_CollapsedFallsBackToRectsOf(t *testing.T) {
	_, ab, _, _, _, host, cfg := buildFixture()
	p := Position{Leaf: ab, Offset: 1}
	got := RectsForRange(nil, host, cfg, p, p)
	want := RectsOf(p, host, cfg)
	if len(got) != len(want) || len(got) != 1 || got[0] != want[0] {
		t.Fatalf("a collapsed range should fall back to RectsOf, got %v want %v", got, want)
	}
}

func TestRectsForRange_WithinOneTextLeaf(t *testing.T) {
	_, ab, _, _, _, host, cfg := buildFixture()
	rects := RectsForRange(nil, host, cfg, Position{Leaf: ab, Offset: 0}, Position{Leaf: ab, Offset: 2})
	if len(rects) != 1 {
		t.Fatalf("want 1 rect for a same-leaf text range, got %d", len(rects))
	}
	if rects[0].Width <= 0 {
		t.Fatalf("a two-character range should have positive width, got %v", rects[0].Width)
	}
}

func TestRectsForRange_AtomicFullSpan(t *testing.T) {
	_, _, br, _, _, host, cfg := buildFixture()
	rects := RectsForRange(nil, host, cfg, Position{Leaf: br, Offset: 0}, Position{Leaf: br, Offset: 1})
	if len(rects) != 1 {
		t.Fatalf("want 1 rect for an atomic's full span, got %d", len(rects))
	}
}

func TestRectsForRange_AcrossLeaves(t *testing.T) {
	root, ab, _, cd, _, host, cfg := buildFixture()
	rects := RectsForRange(root, host, cfg, Position{Leaf: ab, Offset: 0}, Position{Leaf: cd, Offset: 2})
	if len(rects) == 0 {
		t.Fatalf("a range spanning multiple leaves should produce at least one rect")
	}
}
