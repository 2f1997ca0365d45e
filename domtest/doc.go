// Package domtest provides an in-memory reference implementation of
// dom.Node and dom.LayoutHost, standing in for a real browser's DOM and
// layout engine. It backs this module's own tests and the terminal demo
// (cmd/vibetext-demo) — the real layout host is an external collaborator
// specified only at the interface surface, and this package is that
// surface's reference implementation, not a feature of the navigation
// core itself.
//
// Layout here is a simple single-pass flow model: block-level elements and
// <br> force a new visual line; everything else lays out left-to-right on
// the current line at a fixed cell width, the way a monospace terminal
// renderer would. It does not model soft-wrap; tests that need a soft-wrap
// fixture construct a small hand-written dom.LayoutHost stub instead (the
// same pattern the dom package's own tests use).
package domtest
