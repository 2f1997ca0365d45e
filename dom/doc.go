// Package dom models the minimal tree shape the caret core needs from a
// host-rendered document: text leaves, atomic leaves (opaque embedded
// widgets), and containers, plus the node-classification predicates and
// pre-order walker built on top of them.
//
// The package does not render anything and does not know how its nodes got
// their text or layout; that is supplied by the host through the LayoutHost
// interface (rect.go) and by whatever concrete Node implementation the host
// plugs in. The domtest package provides an in-memory reference
// implementation used by this module's own tests and its demo command.
package dom
