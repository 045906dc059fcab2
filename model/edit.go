package model

import (
	"strings"

	"github.com/virtualwonders/ckeditor5-editor-classic/internal/grapheme"
)

// InsertText inserts text at p with the given marks and returns the
// position just past the inserted content. Newlines in text split blocks;
// new blocks inherit the type of the block being split.
func (r *RootElement) InsertText(p Pos, text string, marks Mark) Pos {
	if text == "" {
		return r.Clamp(p)
	}

	prev := r.snapshot()
	p = r.Clamp(p)

	lines := strings.Split(text, "\n")
	end := p
	for i, line := range lines {
		if i > 0 {
			end = r.splitBlockAt(end)
		}
		if line != "" {
			end = r.insertInBlock(end, line, marks)
		}
	}

	r.recordUndo(prev)
	r.doc.bump()
	return end
}

// DeleteRange removes the content in rng and returns the collapse
// position. A range spanning blocks joins the remainder of the last block
// onto the first. Empty ranges are no-ops.
func (r *RootElement) DeleteRange(rng Range) Pos {
	rng = NormalizeRange(r.ClampRange(rng))
	if rng.IsEmpty() {
		return rng.Start
	}

	prev := r.snapshot()

	first := &r.blocks[rng.Start.Block]
	last := r.blocks[rng.End.Block]

	left, _ := splitSpansAt(first.Spans, rng.Start.Offset)
	_, right := splitSpansAt(last.Spans, rng.End.Offset)

	first.Spans = NormalizeSpans(append(left, right...))
	if rng.End.Block > rng.Start.Block {
		r.blocks = append(r.blocks[:rng.Start.Block+1], r.blocks[rng.End.Block+1:]...)
	}

	r.recordUndo(prev)
	r.doc.bump()
	return rng.Start
}

// SplitBlock splits the block containing p in two and returns the start of
// the second block.
func (r *RootElement) SplitBlock(p Pos) Pos {
	prev := r.snapshot()
	out := r.splitBlockAt(r.Clamp(p))
	r.recordUndo(prev)
	r.doc.bump()
	return out
}

// ToggleMark toggles mark across rng: if every grapheme in the range
// already carries the mark it is removed, otherwise it is added. Empty
// ranges are no-ops.
func (r *RootElement) ToggleMark(rng Range, mark Mark) {
	rng = NormalizeRange(r.ClampRange(rng))
	if rng.IsEmpty() {
		return
	}

	prev := r.snapshot()
	add := !r.rangeHasMark(rng, mark)
	changed := false
	for i := rng.Start.Block; i <= rng.End.Block; i++ {
		from, to := r.blockSlice(rng, i)
		if from >= to {
			continue
		}
		if r.applyMark(i, from, to, mark, add) {
			changed = true
		}
	}
	if !changed {
		return
	}

	r.recordUndo(prev)
	r.doc.bump()
}

// SetBlockType sets the type of every block intersecting rng.
func (r *RootElement) SetBlockType(rng Range, t BlockType) {
	rng = NormalizeRange(r.ClampRange(rng))

	prev := r.snapshot()
	changed := false
	for i := rng.Start.Block; i <= rng.End.Block && i < len(r.blocks); i++ {
		if r.blocks[i].Type != t {
			r.blocks[i].Type = t
			changed = true
		}
	}
	if !changed {
		return
	}

	r.recordUndo(prev)
	r.doc.bump()
}

// TextInRange returns the plain text covered by rng, with newlines at
// block boundaries.
func (r *RootElement) TextInRange(rng Range) string {
	rng = NormalizeRange(r.ClampRange(rng))
	if rng.IsEmpty() {
		return ""
	}

	var sb strings.Builder
	for i := rng.Start.Block; i <= rng.End.Block; i++ {
		if i > rng.Start.Block {
			sb.WriteByte('\n')
		}
		from, to := r.blockSlice(rng, i)
		sb.WriteString(grapheme.Slice(r.blocks[i].Text(), from, to))
	}
	return sb.String()
}

// blockSlice returns the [from, to) grapheme window of block i covered by
// the normalized range rng.
func (r *RootElement) blockSlice(rng Range, i int) (from, to int) {
	from, to = 0, r.BlockLen(i)
	if i == rng.Start.Block {
		from = rng.Start.Offset
	}
	if i == rng.End.Block {
		to = rng.End.Offset
	}
	return from, to
}

func (r *RootElement) insertInBlock(p Pos, line string, marks Mark) Pos {
	b := &r.blocks[p.Block]
	left, right := splitSpansAt(b.Spans, p.Offset)
	left = append(left, Span{Text: line, Marks: marks})
	b.Spans = NormalizeSpans(append(left, right...))
	return Pos{Block: p.Block, Offset: p.Offset + grapheme.Count(line)}
}

func (r *RootElement) splitBlockAt(p Pos) Pos {
	b := r.blocks[p.Block]
	left, right := splitSpansAt(b.Spans, p.Offset)

	r.blocks = append(r.blocks, Block{})
	copy(r.blocks[p.Block+2:], r.blocks[p.Block+1:])
	r.blocks[p.Block] = Block{Type: b.Type, Spans: NormalizeSpans(left)}
	r.blocks[p.Block+1] = Block{Type: b.Type, Spans: NormalizeSpans(right)}

	return Pos{Block: p.Block + 1, Offset: 0}
}

func (r *RootElement) rangeHasMark(rng Range, mark Mark) bool {
	any := false
	for i := rng.Start.Block; i <= rng.End.Block; i++ {
		from, to := r.blockSlice(rng, i)
		if from >= to {
			continue
		}
		any = true
		off := 0
		for _, s := range r.blocks[i].Spans {
			n := grapheme.Count(s.Text)
			if off < to && off+n > from && !s.Marks.Has(mark) {
				return false
			}
			off += n
		}
	}
	return any
}

func (r *RootElement) applyMark(i, from, to int, mark Mark, add bool) bool {
	b := &r.blocks[i]
	left, rest := splitSpansAt(b.Spans, from)
	mid, right := splitSpansAt(rest, to-from)

	changed := false
	for j := range mid {
		next := mid[j].Marks
		if add {
			next |= mark
		} else {
			next &^= mark
		}
		if next != mid[j].Marks {
			mid[j].Marks = next
			changed = true
		}
	}
	if !changed {
		return false
	}

	b.Spans = NormalizeSpans(append(left, append(mid, right...)...))
	return true
}

// splitSpansAt splits spans at the given grapheme offset. Offsets beyond
// the content fall into the left part.
func splitSpansAt(spans []Span, off int) (left, right []Span) {
	if off <= 0 {
		return nil, append([]Span(nil), spans...)
	}
	remaining := off
	for i, s := range spans {
		n := grapheme.Count(s.Text)
		if remaining >= n {
			left = append(left, s)
			remaining -= n
			continue
		}
		if remaining > 0 {
			left = append(left, Span{Text: grapheme.Slice(s.Text, 0, remaining), Marks: s.Marks})
			right = append(right, Span{Text: grapheme.Slice(s.Text, remaining, n), Marks: s.Marks})
		} else {
			right = append(right, s)
		}
		right = append(right, spans[i+1:]...)
		return left, right
	}
	return left, nil
}
