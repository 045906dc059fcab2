package model

import (
	"strings"

	"github.com/virtualwonders/ckeditor5-editor-classic/internal/grapheme"
)

// RootOptions configures a root at creation time.
type RootOptions struct {
	// HistoryLimit caps the undo stack depth. 0 selects the default (1000);
	// negative disables history.
	HistoryLimit int
}

// RootElement holds the content of one editing surface: an ordered list of
// blocks. A root always contains at least one block (an empty paragraph).
type RootElement struct {
	doc  *Document
	name string

	blocks []Block
	opt    RootOptions
	hist   historyState
}

func newRoot(doc *Document, name string, opt RootOptions) *RootElement {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &RootElement{
		doc:    doc,
		name:   name,
		blocks: []Block{{Type: Paragraph}},
		opt:    opt,
	}
}

// Name returns the root's name within its document.
func (r *RootElement) Name() string { return r.name }

// Document returns the owning document.
func (r *RootElement) Document() *Document { return r.doc }

// Blocks returns a copy of the root's blocks.
func (r *RootElement) Blocks() []Block {
	out := make([]Block, len(r.blocks))
	for i, b := range r.blocks {
		out[i] = Block{Type: b.Type, Spans: append([]Span(nil), b.Spans...)}
	}
	return out
}

// BlockCount returns the number of blocks. Always >= 1.
func (r *RootElement) BlockCount() int { return len(r.blocks) }

// BlockAt returns a copy of block i, or a zero Block when out of range.
func (r *RootElement) BlockAt(i int) Block {
	if i < 0 || i >= len(r.blocks) {
		return Block{}
	}
	return Block{Type: r.blocks[i].Type, Spans: append([]Span(nil), r.blocks[i].Spans...)}
}

// BlockLen returns the grapheme length of block i, 0 when out of range.
func (r *RootElement) BlockLen(i int) int {
	if i < 0 || i >= len(r.blocks) {
		return 0
	}
	return grapheme.Count(r.blocks[i].Text())
}

// SetBlocks replaces the entire content. An empty slice resets the root to
// a single empty paragraph. SetBlocks clears history; it is the data
// pipeline's load path, not an undoable edit.
func (r *RootElement) SetBlocks(blocks []Block) {
	next := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		next = append(next, Block{Type: b.Type, Spans: NormalizeSpans(b.Spans)})
	}
	if len(next) == 0 {
		next = []Block{{Type: Paragraph}}
	}
	r.blocks = next
	r.hist = historyState{}
	r.doc.bump()
}

// IsEmpty reports whether the root holds only one empty paragraph.
func (r *RootElement) IsEmpty() bool {
	return len(r.blocks) == 1 && r.blocks[0].Type == Paragraph && r.blocks[0].Text() == ""
}

// PlainText returns block texts joined by newlines.
func (r *RootElement) PlainText() string {
	var sb strings.Builder
	for i, b := range r.blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.Text())
	}
	return sb.String()
}

// Clamp clamps p into the root's bounds.
func (r *RootElement) Clamp(p Pos) Pos {
	return ClampPos(p, len(r.blocks), r.BlockLen)
}

// ClampRange clamps both ends of rng into the root's bounds.
func (r *RootElement) ClampRange(rng Range) Range {
	return ClampRange(rng, len(r.blocks), r.BlockLen)
}

// End returns the position just past the last grapheme of the last block.
func (r *RootElement) End() Pos {
	last := len(r.blocks) - 1
	return Pos{Block: last, Offset: r.BlockLen(last)}
}
