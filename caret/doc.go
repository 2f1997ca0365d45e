// Package caret implements the caret-position algebra, the rect mapper and
// rect walker, the movement engine, selection state, the point-to-position
// resolver, and range materialization.
//
// Everything in this package is pure and total: no operation panics on an
// out-of-range or container-addressed position, and no operation mutates
// the dom.Node tree it is given (only dom.Normalize, at attach time, does
// that). Boundary conditions return a zero value and ok=false rather than
// an error.
package caret
