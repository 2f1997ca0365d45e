package dom

import "testing"

func TestNormalize_MergesAdjacentTextSiblings(t *testing.T) {
	p := newEl("P", newText("ab"), newText("cd"), newText("ef"))
	Normalize(p, blockHost{}, treeMutator{})

	if p.ChildCount() != 1 {
		t.Fatalf("want 1 merged child, got %d", p.ChildCount())
	}
	if got := p.ChildAt(0).Text(); got != "abcdef" {
		t.Fatalf("merged text = %q, want %q", got, "abcdef")
	}
}

func TestNormalize_CollapsesWhitespaceRuns(t *testing.T) {
	p := newEl("P", newText("a   b\t\tc\n\nd"))
	Normalize(p, blockHost{}, treeMutator{})

	if got := p.ChildAt(0).Text(); got != "a b c d" {
		t.Fatalf("collapsed text = %q, want %q", got, "a b c d")
	}
}

func TestNormalize_TrimsAtBlockBoundary(t *testing.T) {
	host := blockHost{blockTags: map[string]bool{"DIV": true}}
	p := newEl("DIV", newText("  hello  "))
	Normalize(p, host, treeMutator{})

	if got := p.ChildAt(0).Text(); got != "hello" {
		t.Fatalf("trimmed text = %q, want %q", got, "hello")
	}
}

func TestNormalize_TrimsOnlyAgainstBlockSibling(t *testing.T) {
	host := blockHost{blockTags: map[string]bool{"DIV": true}}
	// <p>ab  <div>x</div>  cd</p>, P itself inline (not a block).
	left := newText("ab  ")
	div := newEl("DIV", newText("x"))
	right := newText("  cd")
	p := newEl("P", left, div, right)
	Normalize(p, host, treeMutator{})

	if got := left.Text(); got != "ab" {
		t.Fatalf("left text = %q, want trailing-trimmed %q", got, "ab")
	}
	if got := right.Text(); got != "cd" {
		t.Fatalf("right text = %q, want leading-trimmed %q", got, "cd")
	}
}

func TestNormalize_NoTrimInsideInlineRun(t *testing.T) {
	host := blockHost{}
	b := newEl("B", newText("  bold  "))
	p := newEl("P", newText("a"), b, newText("b"))
	Normalize(p, host, treeMutator{})

	if got := b.ChildAt(0).Text(); got != " bold " {
		t.Fatalf("inline text should not be trimmed, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	host := blockHost{blockTags: map[string]bool{"DIV": true}}
	p := newEl("DIV", newText("  a   b  "), newText("  c  "))
	Normalize(p, host, treeMutator{})
	first := p.ChildAt(0).Text()

	Normalize(p, host, treeMutator{})
	if p.ChildCount() != 1 {
		t.Fatalf("second pass should not change child count, got %d", p.ChildCount())
	}
	if got := p.ChildAt(0).Text(); got != first {
		t.Fatalf("normalize is not idempotent: %q != %q", got, first)
	}
}
