package main

import "github.com/iw2rmb/flouris/domtest"

// buildDocument returns a small fixed document for the demo to navigate:
// two paragraphs, a line break, an inline atomic "chip" (rendered as a
// bracketed glyph), and a styled run. The core never mutates it; this demo
// only exercises navigation and selection over a static tree.
func buildDocument() *domtest.Node {
	intro := domtest.Text("The quick brown fox jumps over the ")
	chip := domtest.Element("IMG")
	tail := domtest.Text(" lazy dog.")
	styled := domtest.Element("I", domtest.Text("Arrow keys move; shift-arrow selects."))
	p1 := domtest.Element("P", intro, chip, tail, domtest.Element("BR"), styled)

	p2 := domtest.Element("P", domtest.Text("Ctrl+Up/Down jump to the document's boundaries."))

	return domtest.Element("ROOT", p1, p2)
}
