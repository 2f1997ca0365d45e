// Package core carries the configuration knobs the rest of the module
// (dom, caret, editor) consults: the atomic tag set, the minimum cursor
// height, and the vertical-overlap threshold. These are surfaced as
// configuration rather than baked in as constants, so a host can tune
// them to its own rendering.
package core
