package ui

import (
	"strings"

	"github.com/virtualwonders/ckeditor5-editor-classic/model"
)

// DefaultToolbar is the toolbar shown when Options.Toolbar is nil.
func DefaultToolbar() []string {
	return []string{"h1", "h2", "h3", "bold", "italic", "code", "undo", "redo"}
}

// toolbar item names accepted in Options.Toolbar.
var toolbarLabels = map[string]string{
	"h1":     "H1",
	"h2":     "H2",
	"h3":     "H3",
	"bold":   "B",
	"italic": "I",
	"code":   "<>",
	"undo":   "↶",
	"redo":   "↷",
}

func (v *View) renderToolbar() string {
	var sb strings.Builder
	for _, item := range v.toolbarItems() {
		label, ok := toolbarLabels[item]
		if !ok {
			continue
		}
		if v.itemActive(item) {
			sb.WriteString(v.style.ItemActive.Render(label))
		} else {
			sb.WriteString(v.style.Item.Render(label))
		}
	}
	return v.style.Toolbar.Render(sb.String())
}

// itemActive reports whether the item's effect is present at the cursor.
func (v *View) itemActive(item string) bool {
	switch item {
	case "h1":
		return v.root.BlockAt(v.cursor.Block).Type == model.Heading1
	case "h2":
		return v.root.BlockAt(v.cursor.Block).Type == model.Heading2
	case "h3":
		return v.root.BlockAt(v.cursor.Block).Type == model.Heading3
	case "bold":
		return v.marksAtCursor().Has(model.Bold)
	case "italic":
		return v.marksAtCursor().Has(model.Italic)
	case "code":
		return v.marksAtCursor().Has(model.Code)
	case "undo":
		return v.root.CanUndo()
	case "redo":
		return v.root.CanRedo()
	}
	return false
}
