package caret

import "github.com/iw2rmb/flouris/dom"

// Compare reports the document-order relationship between two valid
// positions: -1 if a precedes b, +1 if a follows b, 0 if they are the same
// position. Ties (same leaf) are broken by offset.
func Compare(a, b Position) int {
	if dom.SameNode(a.Leaf, b.Leaf) {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		default:
			return 0
		}
	}
	return dom.CompareOrder(a.Leaf, b.Leaf)
}
