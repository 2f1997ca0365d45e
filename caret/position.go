package caret

import (
	"github.com/iw2rmb/flouris/dom"
	"github.com/iw2rmb/flouris/internal/grapheme"
)

// Position addresses a caret location: (leaf, offset). Offset semantics
// depend on the leaf kind:
//   - text leaf: offset is a grapheme-cluster gap (via internal/grapheme)
//     in [0, number of grapheme clusters in leaf.Text()].
//   - atomic leaf: offset is 0 ("immediately before") or 1
//     ("immediately after").
//
// Position is an immutable value.
type Position struct {
	Leaf   dom.Node
	Offset int
}

// IsZero reports whether p is the zero Position (no leaf). Distinct from
// "invalid" — the zero Position simply addresses nothing.
func (p Position) IsZero() bool {
	return p.Leaf == nil
}

// textLength returns the grapheme-cluster length of a text leaf's content,
// or 0 for a non-text leaf. Position offsets into text leaves are
// grapheme-cluster counts, not codepoint counts.
func textLength(n dom.Node) int {
	if !dom.IsText(n) {
		return 0
	}
	return grapheme.Count(n.Text())
}

// Valid reports whether p is already a valid position: n
// is addressable and offset is in-range for n's kind. A container-addressed
// or out-of-range position is not valid and must go through Normalize.
func Valid(p Position, cfg dom.ClassifyConfig) bool {
	if !dom.IsAddressable(p.Leaf, cfg) {
		return false
	}
	if dom.IsText(p.Leaf) {
		return p.Offset >= 0 && p.Offset <= textLength(p.Leaf)
	}
	return p.Offset == 0 || p.Offset == 1
}
