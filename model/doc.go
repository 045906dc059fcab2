// Package model implements the editor's document model.
//
// A Document owns named roots; the classic editor creates exactly one root
// at construction. Content is a flat list of blocks, each holding styled
// text spans. Positions are (block, grapheme offset) pairs; ranges are
// half-open: [Start, End).
package model
