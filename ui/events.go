package ui

import "github.com/virtualwonders/ckeditor5-editor-classic/model"

// ChangeEvent describes one observable content or cursor change in the
// editable surface.
type ChangeEvent struct {
	Version   uint64
	Cursor    model.Pos
	Selection struct {
		Range  model.Range
		Active bool
	}

	// Plain text of the whole root; hosts needing markup go through the
	// editor's data API instead.
	Text string
}

func (v *View) buildChangeEvent() ChangeEvent {
	ev := ChangeEvent{
		Version: v.root.Document().Version(),
		Cursor:  v.cursor,
		Text:    v.root.PlainText(),
	}
	if r, ok := v.selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
