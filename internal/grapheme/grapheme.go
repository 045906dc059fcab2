// Package grapheme provides grapheme-cluster helpers shared by the model
// and the terminal UI. Offsets throughout the module are grapheme counts,
// never bytes or runes.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
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

// Width returns the terminal-cell width of a single cluster. Zero-width
// results fall back to uniseg's measurement for clusters go-runewidth does
// not know.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		if fb := uniseg.StringWidth(cluster); fb > w {
			w = fb
		}
	}
	if w < 0 {
		return 0
	}
	return w
}
