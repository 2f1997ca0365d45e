// Package grapheme provides grapheme-cluster-safe helpers over UTF-8 text.
//
// Caret offsets are documented as addressing "a gap between
// codepoints", but a gap that lands inside a multi-codepoint grapheme
// cluster (a combining accent, a ZWJ emoji sequence) is not a position a
// user could have typed into or arrowed past one codepoint at a time. This
// package is the single place that understands cluster boundaries: caret
// positions count grapheme clusters, while the layout host speaks codepoint
// offsets, and the caret package converts between the two with these
// helpers (cluster counts in caret.Normalize, boundary offsets in
// caret.RectsOf and caret.PositionFromPoint).
package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Slice returns the grapheme-safe substring for [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	var sb strings.Builder
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			sb.WriteString(g.Str())
		}
		idx++
	}
	if start >= idx {
		return ""
	}
	return sb.String()
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}

// Boundaries returns, in ascending order, every valid grapheme-cluster
// boundary in text expressed as a rune (codepoint) offset. The first element
// is always 0 and the last is always len([]rune(text)).
func Boundaries(text string) []int {
	runes := []rune(text)
	if len(runes) == 0 {
		return []int{0}
	}

	bounds := make([]int, 0, len(runes)+1)
	bounds = append(bounds, 0)

	g := uniseg.NewGraphemes(text)
	pos := 0
	for g.Next() {
		pos += len([]rune(g.Str()))
		bounds = append(bounds, pos)
	}
	return bounds
}

// NearestBoundary snaps a rune offset to the nearest grapheme-cluster
// boundary in text, preferring the lower boundary on an exact tie. offset is
// clamped into [0, len([]rune(text))] first.
func NearestBoundary(text string, offset int) int {
	runes := []rune(text)
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	bounds := Boundaries(text)
	best := bounds[0]
	bestDist := abs(offset - best)
	for _, b := range bounds[1:] {
		d := abs(offset - b)
		if d < bestDist {
			best, bestDist = b, d
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
