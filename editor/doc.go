// Package editor is the external interface surface over the caret,
// selection, and navigation core in package caret.
//
// It owns nothing about rendering or input decoding: a Handle wraps a
// document root, the host's layout integration, and the current
// selection state, and exposes attach/detach, selection queries and
// mutators, and position/rect queries as small total functions. The host
// (a terminal UI, a Bubble Tea component, anything else) is responsible
// for turning key events into calls on the Handle and for drawing
// whatever rects it gets back.
package editor
