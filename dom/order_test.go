package dom

import "testing"

func TestCompareOrder_Siblings(t *testing.T) {
	a := newText("a")
	b := newText("b")
	root := newEl("P", a, b)
	_ = root

	if got := CompareOrder(a, b); got != -1 {
		t.Fatalf("CompareOrder(a,b) = %d, want -1", got)
	}
	if got := CompareOrder(b, a); got != 1 {
		t.Fatalf("CompareOrder(b,a) = %d, want 1", got)
	}
	if got := CompareOrder(a, a); got != 0 {
		t.Fatalf("CompareOrder(a,a) = %d, want 0", got)
	}
}

func TestCompareOrder_AncestorPrecedesDescendant(t *testing.T) {
	inner := newText("x")
	b := newEl("B", inner)
	root := newEl("P", b)
	_ = root

	if got := CompareOrder(b, inner); got != -1 {
		t.Fatalf("CompareOrder(ancestor, descendant) = %d, want -1", got)
	}
	if got := CompareOrder(inner, b); got != 1 {
		t.Fatalf("CompareOrder(descendant, ancestor) = %d, want 1", got)
	}
}

func TestCompareOrder_DivergingBranches(t *testing.T) {
	left := newText("left")
	leftWrap := newEl("B", left)
	right := newText("right")
	rightWrap := newEl("I", right)
	root := newEl("P", leftWrap, rightWrap)
	_ = root

	if got := CompareOrder(left, right); got != -1 {
		t.Fatalf("CompareOrder(left,right) = %d, want -1", got)
	}
}
