package core

import "github.com/iw2rmb/flouris/dom"

// Config configures the caret/selection/navigation core: a small set of
// documented defaults rather than hard-coded constants scattered through
// the algorithm packages.
type Config struct {
	// Classify is the node-classification config: the atomic tag set
	// (beyond the hard-coded BR/HR/IMG/TABLE) and the atomic class token.
	Classify dom.ClassifyConfig

	// MinCursorHeight is the minimum rect height (dom.Rect.Height units)
	// the position-to-rect mapper expands a zero- or small-height atomic
	// rect to, so a rendered caret stays visible. The default of 18 suits
	// hosts whose lines are about 20 units tall; a host with shorter lines
	// sets it lower.
	MinCursorHeight float64

	// VerticalOverlapThreshold is the ratio at or above which two rects are
	// considered to be on the same visual line.
	VerticalOverlapThreshold float64
}

// DefaultConfig returns the package's literal defaults.
func DefaultConfig() Config {
	return Config{
		Classify:                 dom.DefaultClassifyConfig(),
		MinCursorHeight:          18,
		VerticalOverlapThreshold: 0.5,
	}
}
