package dom

import "strings"

// AtomicClass is the class token that marks an element as an atomic leaf
// regardless of its tag.
const AtomicClass = "atomic-component"

// DefaultAtomicTags is the hard-coded atomic tag set:
// BR, HR, IMG, TABLE.
func DefaultAtomicTags() map[string]bool {
	return map[string]bool{
		"BR":    true,
		"HR":    true,
		"IMG":   true,
		"TABLE": true,
	}
}

// ClassifyConfig lets a host extend the atomic tag set (e.g. VIDEO,
// IFRAME) without forking the module. It only makes the hard-coded tag
// list configurable; it does not change which leaves count as atomic by
// default.
type ClassifyConfig struct {
	AtomicTags  map[string]bool
	AtomicClass string
}

// DefaultClassifyConfig returns the hard-coded defaults.
func DefaultClassifyConfig() ClassifyConfig {
	return ClassifyConfig{
		AtomicTags:  DefaultAtomicTags(),
		AtomicClass: AtomicClass,
	}
}

func (c ClassifyConfig) atomicClass() string {
	if c.AtomicClass == "" {
		return AtomicClass
	}
	return c.AtomicClass
}

// IsText reports whether n is a text node, regardless of its content.
func IsText(n Node) bool {
	return n != nil && n.Kind() == KindText
}

// IsElement reports whether n is an element node.
func IsElement(n Node) bool {
	return n != nil && n.Kind() == KindElement
}

// IsAtomic reports whether n is an atomic leaf: its tag is
// in cfg's atomic tag set, or it carries the atomic class token. Atomicity
// is independent of the node's block/inline classification — both inline
// atomics (mention chips) and block atomics (tables) exist.
func IsAtomic(n Node, cfg ClassifyConfig) bool {
	if !IsElement(n) {
		return false
	}
	if cfg.AtomicTags != nil && cfg.AtomicTags[strings.ToUpper(n.Tag())] {
		return true
	}
	return n.HasClass(cfg.atomicClass())
}

// IsBlock reports whether n is a block-level element: its computed
// display's token set does not contain "inline". If host cannot compute
// style (detached node, Display.Available == false), n is treated as
// inline.
func IsBlock(n Node, host LayoutHost) bool {
	if !IsElement(n) {
		return false
	}
	if host == nil {
		return false
	}
	d := host.ComputedDisplay(n)
	if !d.Available {
		return false
	}
	return !d.Inline
}

// IsInline reports whether n is an inline element: isElement ∧ ¬isBlock.
func IsInline(n Node, host LayoutHost) bool {
	return IsElement(n) && !IsBlock(n, host)
}

// IsAddressable reports whether n is in the addressable leaf set: a text
// leaf with non-empty text, or an atomic leaf.
func IsAddressable(n Node, cfg ClassifyConfig) bool {
	if n == nil {
		return false
	}
	if IsText(n) {
		return n.Text() != ""
	}
	return IsAtomic(n, cfg)
}
