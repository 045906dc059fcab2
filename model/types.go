package model

// Mark is a bitmask of inline text attributes.
type Mark uint8

const (
	// Bold renders the span with a bold face.
	Bold Mark = 1 << iota
	// Italic renders the span with an italic face.
	Italic
	// Code renders the span as inline code.
	Code
)

// Has reports whether m contains all marks in want.
func (m Mark) Has(want Mark) bool { return m&want == want }

// Span is a run of text sharing one set of marks.
type Span struct {
	Text  string
	Marks Mark
}

// BlockType identifies the structural role of a block.
type BlockType uint8

const (
	Paragraph BlockType = iota
	Heading1
	Heading2
	Heading3
	CodeBlock
)

// Block is one structural unit of content: a paragraph, heading, or code
// block. Block text never contains newlines; line structure is block
// structure.
type Block struct {
	Type  BlockType
	Spans []Span
}

// Text returns the concatenated span text of the block.
func (b Block) Text() string {
	switch len(b.Spans) {
	case 0:
		return ""
	case 1:
		return b.Spans[0].Text
	}
	n := 0
	for _, s := range b.Spans {
		n += len(s.Text)
	}
	out := make([]byte, 0, n)
	for _, s := range b.Spans {
		out = append(out, s.Text...)
	}
	return string(out)
}

// Pos points into a root by (block index, grapheme offset).
// Both are 0-based.
type Pos struct {
	Block  int
	Offset int
}

// Range is a half-open region in root coordinates: [Start, End).
// Start <= End in document order for normalized ranges.
type Range struct {
	Start Pos
	End   Pos
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

// ComparePos orders positions in document order.
func ComparePos(a, b Pos) int {
	if a.Block != b.Block {
		if a.Block < b.Block {
			return -1
		}
		return 1
	}
	if a.Offset != b.Offset {
		if a.Offset < b.Offset {
			return -1
		}
		return 1
	}
	return 0
}

// NormalizeRange returns r with Start <= End in document order.
func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into the bounds described by blockCount and blockLen.
//
// blockLen(i) returns the grapheme length of block i. The returned Pos
// satisfies 0 <= Block < blockCount (blockCount treated as at least 1) and
// 0 <= Offset <= blockLen(Block).
func ClampPos(p Pos, blockCount int, blockLen func(i int) int) Pos {
	if blockCount <= 0 {
		blockCount = 1
	}
	block := clampInt(p.Block, 0, blockCount-1)
	maxOff := 0
	if blockLen != nil {
		maxOff = blockLen(block)
	}
	return Pos{Block: block, Offset: clampInt(p.Offset, 0, maxOff)}
}

// ClampRange clamps both ends of r.
func ClampRange(r Range, blockCount int, blockLen func(i int) int) Range {
	return Range{
		Start: ClampPos(r.Start, blockCount, blockLen),
		End:   ClampPos(r.End, blockCount, blockLen),
	}
}

// NormalizeSpans merges adjacent spans with equal marks and drops empty
// spans. The result is nil for content-free input.
func NormalizeSpans(spans []Span) []Span {
	var out []Span
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Marks == s.Marks {
			out[n-1].Text += s.Text
			continue
		}
		out = append(out, s)
	}
	return out
}
