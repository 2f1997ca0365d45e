package caret

import "testing"

func TestValid_TextWithinRange(t *testing.T) {
	_, ab, _, _, _, _, cfg := buildFixture()
	if !Valid(Position{Leaf: ab, Offset: 1}, cfg.Classify) {
		t.Fatalf("offset 1 into a 2-grapheme leaf should be valid")
	}
	if Valid(Position{Leaf: ab, Offset: 3}, cfg.Classify) {
		t.Fatalf("offset past the leaf's length should not be valid")
	}
	if Valid(Position{Leaf: ab, Offset: -1}, cfg.Classify) {
		t.Fatalf("negative offset should not be valid")
	}
}

func TestValid_AtomicOnlyZeroOrOne(t *testing.T) {
	_, _, br, _, _, _, cfg := buildFixture()
	if !Valid(Position{Leaf: br, Offset: 0}, cfg.Classify) {
		t.Fatalf("atomic offset 0 should be valid")
	}
	if !Valid(Position{Leaf: br, Offset: 1}, cfg.Classify) {
		t.Fatalf("atomic offset 1 should be valid")
	}
	if Valid(Position{Leaf: br, Offset: 2}, cfg.Classify) {
		t.Fatalf("atomic offset 2 should not be valid")
	}
}

func TestPosition_IsZero(t *testing.T) {
	var p Position
	if !p.IsZero() {
		t.Fatalf("zero-value Position should report IsZero")
	}
	_, ab, _, _, _, _, _ := buildFixture()
	if (Position{Leaf: ab}).IsZero() {
		t.Fatalf("a Position with a leaf should not report IsZero")
	}
}
