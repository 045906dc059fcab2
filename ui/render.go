package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/virtualwonders/ckeditor5-editor-classic/internal/grapheme"
	"github.com/virtualwonders/ckeditor5-editor-classic/model"
)

// cell is one grapheme cluster with its resolved style inputs.
type cell struct {
	text     string
	marks    model.Mark
	selected bool
	cursor   bool
}

func (v *View) renderContent() string {
	if v.root.IsEmpty() && !v.focused && v.opts.Placeholder != "" {
		return v.style.Placeholder.Render(v.opts.Placeholder)
	}

	blocks := v.root.Blocks()
	sel, selOK := v.selection()

	out := make([]string, 0, len(blocks))
	for i, b := range blocks {
		out = append(out, v.renderBlock(i, b, sel, selOK))
	}
	return strings.Join(out, "\n")
}

func (v *View) renderBlock(idx int, b model.Block, sel model.Range, selOK bool) string {
	cells := v.blockCells(idx, b, sel, selOK)

	var sb strings.Builder
	for _, c := range cells {
		sb.WriteString(v.cellStyle(b.Type, c).Render(c.text))
	}
	return sb.String()
}

// blockCells flattens a block into styled grapheme cells, appending one
// trailing space cell so the cursor is visible at end of block.
func (v *View) blockCells(idx int, b model.Block, sel model.Range, selOK bool) []cell {
	var cells []cell
	off := 0
	for _, s := range b.Spans {
		for _, g := range grapheme.Split(s.Text) {
			cells = append(cells, cell{
				text:     g,
				marks:    s.Marks,
				selected: selOK && posInRange(model.Pos{Block: idx, Offset: off}, sel),
			})
			off++
		}
	}

	if v.focused && v.cursor.Block == idx {
		if v.cursor.Offset < len(cells) {
			cells[v.cursor.Offset].cursor = true
		} else {
			cells = append(cells, cell{text: " ", cursor: true})
		}
	}
	if len(cells) == 0 {
		cells = append(cells, cell{text: " "})
	}
	return cells
}

func (v *View) cellStyle(t model.BlockType, c cell) lipgloss.Style {
	style := v.style.Text
	switch {
	case t == model.CodeBlock:
		style = v.style.CodeBlock
	case t != model.Paragraph:
		style = v.style.Heading
	}

	if c.marks.Has(model.Code) {
		style = style.Inherit(v.style.InlineCode)
	}
	if c.marks.Has(model.Bold) {
		style = style.Bold(true)
	}
	if c.marks.Has(model.Italic) {
		style = style.Italic(true)
	}
	if c.selected {
		style = style.Inherit(v.style.Selection)
	}
	if c.cursor {
		style = style.Inherit(v.style.Cursor)
	}
	return style
}

func posInRange(p model.Pos, r model.Range) bool {
	return model.ComparePos(r.Start, p) <= 0 && model.ComparePos(p, r.End) < 0
}
