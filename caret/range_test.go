package caret

import "testing"

func TestMaterializeRange_TextEndpointsPassThrough(t *testing.T) {
	_, ab, _, cd, _, _, _ := buildFixture()
	r := MaterializeRange(Position{Leaf: ab, Offset: 1}, Position{Leaf: cd, Offset: 1})
	if r.StartContainer != asNode(ab) || r.StartOffset != 1 {
		t.Fatalf("start endpoint should pass through unchanged, got %+v", r)
	}
	if r.EndContainer != asNode(cd) || r.EndOffset != 1 {
		t.Fatalf("end endpoint should pass through unchanged, got %+v", r)
	}
}

func TestMaterializeRange_AtomicEndpointTranslatesToParentIndex(t *testing.T) {
	_, ab, br, _, _, _, _ := buildFixture()
	p := br.Parent()

	before := MaterializeRange(Position{Leaf: ab, Offset: 0}, Position{Leaf: br, Offset: 0})
	if before.EndContainer != p || before.EndOffset != p.IndexOf(br) {
		t.Fatalf("atomic offset 0 should translate to (parent, IndexOf(atomic)), got %+v", before)
	}

	after := MaterializeRange(Position{Leaf: ab, Offset: 0}, Position{Leaf: br, Offset: 1})
	if after.EndContainer != p || after.EndOffset != p.IndexOf(br)+1 {
		t.Fatalf("atomic offset 1 should translate to (parent, IndexOf(atomic)+1), got %+v", after)
	}
}

func TestMaterializeRange_OrdersByDocumentPosition(t *testing.T) {
	_, ab, _, cd, _, _, _ := buildFixture()
	r := MaterializeRange(Position{Leaf: cd, Offset: 1}, Position{Leaf: ab, Offset: 0})
	if r.StartContainer != asNode(ab) {
		t.Fatalf("MaterializeRange should reorder endpoints into document order, got start=%v", r.StartContainer)
	}
}

func TestMaterializeText_SpansMultipleLeaves(t *testing.T) {
	root, ab, _, cd, _, _, cfg := buildFixture()
	got := MaterializeText(root, cfg.Classify, Position{Leaf: ab, Offset: 0}, Position{Leaf: cd, Offset: 2})
	if got != "abcd" {
		t.Fatalf("want %q, got %q", "abcd", got)
	}
}

func TestMaterializeText_SameLeafSlice(t *testing.T) {
	root, ab, _, _, _, _, cfg := buildFixture()
	got := MaterializeText(root, cfg.Classify, Position{Leaf: ab, Offset: 0}, Position{Leaf: ab, Offset: 1})
	if got != "a" {
		t.Fatalf("want %q, got %q", "a", got)
	}
}
