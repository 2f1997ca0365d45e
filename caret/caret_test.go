package caret

import (
	"github.com/iw2rmb/flouris/core"
	"github.com/iw2rmb/flouris/dom"
	"github.com/iw2rmb/flouris/domtest"
)

// buildFixture builds <p>ab<br><i>cd</i></p><p>ef</p> over a domtest.Host,
// shared by this package's tests.
func buildFixture() (root, ab, br, cd, ef *domtest.Node, host *domtest.Host, cfg core.Config) {
	ab = domtest.Text("ab")
	br = domtest.Element("BR")
	cd = domtest.Text("cd")
	i := domtest.Element("I", cd)
	p1 := domtest.Element("P", ab, br, i)
	ef = domtest.Text("ef")
	p2 := domtest.Element("P", ef)
	root = domtest.Element("ROOT", p1, p2)

	cfg = core.DefaultConfig()
	host = domtest.NewHost(root, domtest.DefaultConfig(), cfg.Classify)
	return root, ab, br, cd, ef, host, cfg
}

func asNode(n *domtest.Node) dom.Node { return n }

// newHostFor builds a default-configured Host over an ad hoc fixture, for
// tests that need a tree shape the shared buildFixture doesn't cover.
func newHostFor(root *domtest.Node) (*domtest.Host, core.Config) {
	cfg := core.DefaultConfig()
	return domtest.NewHost(root, domtest.DefaultConfig(), cfg.Classify), cfg
}

func buildEmptyRoot() *domtest.Node {
	return domtest.Element("ROOT")
}
