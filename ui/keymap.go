package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editable surface's key bindings.
//
// Bindings must be portable across terminals; ctrl+i is indistinguishable
// from tab, so italic gets ctrl+t.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	Home, End                                 key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Bold, Italic, InlineCode                                   key.Binding
	Heading1, Heading2, Heading3, ParagraphType, CodeBlockType key.Binding

	Undo, Redo key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new block")),

		Bold:       key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
		Italic:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "italic")),
		InlineCode: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "inline code")),

		Heading1:      key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "heading 1")),
		Heading2:      key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "heading 2")),
		Heading3:      key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("alt+3", "heading 3")),
		ParagraphType: key.NewBinding(key.WithKeys("alt+0"), key.WithHelp("alt+0", "paragraph")),
		CodeBlockType: key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "code block")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),
	}
}
