package domtest

import (
	"testing"

	"github.com/iw2rmb/flouris/dom"
)

// <p>ab<br>cd</p> — two visual lines, split by the BR.
func buildTwoLineFixture() (root, p, ab, br, cd *Node) {
	ab = Text("ab")
	br = Element("BR")
	cd = Text("cd")
	p = Element("P", ab, br, cd)
	root = Element("ROOT", p)
	return root, p, ab, br, cd
}

func TestHost_Relayout_SplitsLinesOnBR(t *testing.T) {
	root, _, ab, br, cd := buildTwoLineFixture()
	h := NewHost(root, DefaultConfig(), dom.DefaultClassifyConfig())

	abRect := h.BoundingRect(ab)
	brRect := h.BoundingRect(br)
	cdRect := h.BoundingRect(cd)

	if abRect.Y != brRect.Y {
		t.Fatalf("ab and br should share a line: ab.Y=%v br.Y=%v", abRect.Y, brRect.Y)
	}
	if cdRect.Y == abRect.Y {
		t.Fatalf("cd should be on the line after the BR, got same Y as ab")
	}
	if cdRect.Y <= abRect.Y {
		t.Fatalf("cd's line should be below ab's: ab.Y=%v cd.Y=%v", abRect.Y, cdRect.Y)
	}
}

func TestHost_Relayout_BlockForcesNewLine(t *testing.T) {
	// <div>a<div>b</div>c</div>
	a := Text("a")
	b := Text("b")
	innerDiv := Element("DIV", b)
	c := Text("c")
	outerDiv := Element("DIV", a, innerDiv, c)
	root := Element("ROOT", outerDiv)

	h := NewHost(root, DefaultConfig(), dom.DefaultClassifyConfig())
	aRect := h.BoundingRect(a)
	bRect := h.BoundingRect(b)
	cRect := h.BoundingRect(c)

	if bRect.Y == aRect.Y {
		t.Fatalf("inner DIV's text should be on its own line")
	}
	if cRect.Y == bRect.Y {
		t.Fatalf("text after the inner DIV should be on a new line")
	}
}

func TestHost_ClientRects_NarrowsToOffsetRange(t *testing.T) {
	root, _, ab, _, _ := buildTwoLineFixture()
	h := NewHost(root, DefaultConfig(), dom.DefaultClassifyConfig())

	full := h.ClientRects(ab, 0, 2)
	if len(full) != 1 {
		t.Fatalf("want 1 rect for the whole leaf, got %d", len(full))
	}
	head := h.ClientRects(ab, 0, 1)
	if len(head) != 1 {
		t.Fatalf("want 1 rect for the first codepoint, got %d", len(head))
	}
	if head[0].Width >= full[0].Width {
		t.Fatalf("head rect should be narrower than the full rect: head=%v full=%v", head[0].Width, full[0].Width)
	}
	if head[0].X != full[0].X {
		t.Fatalf("head rect should start at the same X as the full rect")
	}
}

func TestHost_BoundingRect_BRHasHeightButNoWidth(t *testing.T) {
	root, _, _, br, _ := buildTwoLineFixture()
	h := NewHost(root, DefaultConfig(), dom.DefaultClassifyConfig())

	r := h.BoundingRect(br)
	if r.Width != 0 {
		t.Fatalf("BR should have zero width, got %v", r.Width)
	}
	if r.Height <= 0 {
		t.Fatalf("BR should still occupy vertical space, got height %v", r.Height)
	}
}

func TestHost_ComputedDisplay_BlockVsInline(t *testing.T) {
	root, p, _, _, _ := buildTwoLineFixture()
	h := NewHost(root, DefaultConfig(), dom.DefaultClassifyConfig())

	d := h.ComputedDisplay(p)
	if !d.Available {
		t.Fatalf("attached P should report an available display")
	}
	if d.Inline {
		t.Fatalf("P is configured block, should not report inline")
	}

	detached := Element("SPAN")
	dd := h.ComputedDisplay(detached)
	if dd.Available {
		t.Fatalf("detached node should report Available=false")
	}
}

func TestHost_CaretRangeFromPoint_ResolvesNearestLeaf(t *testing.T) {
	root, _, ab, _, cd := buildTwoLineFixture()
	h := NewHost(root, DefaultConfig(), dom.DefaultClassifyConfig())

	abRect := h.BoundingRect(ab)
	n, _, ok := h.CaretRangeFromPoint(abRect.MidX(), abRect.MidY())
	if !ok {
		t.Fatalf("point inside ab's rect should resolve")
	}
	if n.(*Node) != ab {
		t.Fatalf("point inside ab's rect should resolve to ab, got %v", n)
	}

	cdRect := h.BoundingRect(cd)
	n2, _, ok2 := h.CaretRangeFromPoint(cdRect.MidX(), cdRect.MidY())
	if !ok2 || n2.(*Node) != cd {
		t.Fatalf("point inside cd's rect should resolve to cd, got %v", n2)
	}
}

func TestHost_CaretRangeFromPoint_EmptyHostFails(t *testing.T) {
	root := Element("ROOT")
	h := NewHost(root, DefaultConfig(), dom.DefaultClassifyConfig())
	_, _, ok := h.CaretRangeFromPoint(0, 0)
	if ok {
		t.Fatalf("an empty document should never resolve a point")
	}
}
