package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/virtualwonders/ckeditor5-editor-classic/model"
)

func newTestView(t *testing.T, opts Options) (View, *model.RootElement) {
	t.Helper()
	d := model.NewDocument()
	root, err := d.CreateRoot("main", model.RootOptions{})
	if err != nil {
		t.Fatalf("create root: %v", err)
	}
	if opts.Toolbar == nil {
		opts.Toolbar = []string{}
	}
	return NewView(root, opts), root
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_TypingInsertsText(t *testing.T) {
	v, root := newTestView(t, Options{})

	for _, r := range "hi" {
		v, _ = v.Update(keyRunes(string(r)))
	}
	if got := root.PlainText(); got != "hi" {
		t.Fatalf("text=%q, want %q", got, "hi")
	}
	if got := v.Cursor(); got != (model.Pos{Block: 0, Offset: 2}) {
		t.Fatalf("cursor=%v, want (0,2)", got)
	}
}

func TestView_EnterSplitsBlock(t *testing.T) {
	v, root := newTestView(t, Options{})
	v, _ = v.Update(keyRunes("ab"))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyLeft})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := root.PlainText(); got != "a\nb" {
		t.Fatalf("text=%q, want %q", got, "a\nb")
	}
	if got := v.Cursor(); got != (model.Pos{Block: 1, Offset: 0}) {
		t.Fatalf("cursor=%v, want start of new block", got)
	}
}

func TestView_BackspaceJoinsBlocks(t *testing.T) {
	v, root := newTestView(t, Options{})
	v, _ = v.Update(keyRunes("a"))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v, _ = v.Update(keyRunes("b"))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyHome})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	if got := root.PlainText(); got != "ab" {
		t.Fatalf("text=%q, want %q", got, "ab")
	}
	if got := v.Cursor(); got != (model.Pos{Block: 0, Offset: 1}) {
		t.Fatalf("cursor=%v, want join point", got)
	}
}

func TestView_SelectionToggleBold(t *testing.T) {
	v, root := newTestView(t, Options{})
	v, _ = v.Update(keyRunes("abc"))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyHome})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyShiftRight})

	r, ok := v.Selection()
	if !ok {
		t.Fatalf("expected active selection")
	}
	want := model.Range{Start: model.Pos{}, End: model.Pos{Block: 0, Offset: 2}}
	if r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	b := root.BlockAt(0)
	if len(b.Spans) != 2 || !b.Spans[0].Marks.Has(model.Bold) || b.Spans[0].Text != "ab" {
		t.Fatalf("spans=%v, want bold ab", b.Spans)
	}
}

func TestView_SelectionReplacedByTyping(t *testing.T) {
	v, root := newTestView(t, Options{})
	v, _ = v.Update(keyRunes("abc"))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyShiftLeft})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyShiftLeft})
	v, _ = v.Update(keyRunes("X"))

	if got := root.PlainText(); got != "aX" {
		t.Fatalf("text=%q, want %q", got, "aX")
	}
	if _, ok := v.Selection(); ok {
		t.Fatalf("selection should collapse after typing")
	}
}

func TestView_TypingInsideBoldContinuesBold(t *testing.T) {
	v, root := newTestView(t, Options{})
	root.SetBlocks([]model.Block{{Type: model.Paragraph, Spans: []model.Span{{Text: "ab", Marks: model.Bold}}}})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnd})
	v, _ = v.Update(keyRunes("c"))

	b := root.BlockAt(0)
	if len(b.Spans) != 1 || b.Spans[0].Text != "abc" || !b.Spans[0].Marks.Has(model.Bold) {
		t.Fatalf("spans=%v, want single bold abc", b.Spans)
	}
}

func TestView_HeadingShortcutSetsBlockType(t *testing.T) {
	v, root := newTestView(t, Options{})
	v, _ = v.Update(keyRunes("title"))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2"), Alt: true})

	if got := root.BlockAt(0).Type; got != model.Heading2 {
		t.Fatalf("type=%v, want Heading2", got)
	}

	// Alt-chorded runes must not insert literally.
	if got := root.PlainText(); got != "title" {
		t.Fatalf("text=%q, want unchanged", got)
	}
}

func TestView_UndoRedoShortcuts(t *testing.T) {
	v, root := newTestView(t, Options{})
	v, _ = v.Update(keyRunes("a"))
	v, _ = v.Update(keyRunes("b"))

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := root.PlainText(); got != "a" {
		t.Fatalf("text after undo=%q, want %q", got, "a")
	}
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := root.PlainText(); got != "ab" {
		t.Fatalf("text after redo=%q, want %q", got, "ab")
	}
}

func TestView_OnChange_FiresOnMutationsSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	v, _ := newTestView(t, Options{OnChange: func(ev ChangeEvent) { events = append(events, ev) }})

	v, _ = v.Update(keyRunes("x"))
	if len(events) != 1 {
		t.Fatalf("events after insert=%d, want 1", len(events))
	}
	if events[0].Text != "x" || events[0].Cursor != (model.Pos{Block: 0, Offset: 1}) {
		t.Fatalf("event=%+v, want text x cursor (0,1)", events[0])
	}

	// Cursor at end of content: right is a no-op and fires nothing.
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 1 {
		t.Fatalf("events after no-op=%d, want 1", len(events))
	}

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if len(events) != 2 {
		t.Fatalf("events after move=%d, want 2", len(events))
	}
}

func TestView_BlurIgnoresKeys(t *testing.T) {
	v, root := newTestView(t, Options{})
	v = v.Blur()
	v, _ = v.Update(keyRunes("x"))
	if got := root.PlainText(); got != "" {
		t.Fatalf("text=%q, want empty while blurred", got)
	}
	if v.Focused() {
		t.Fatalf("view should stay blurred")
	}
	v = v.Focus()
	if !v.Focused() {
		t.Fatalf("view should be focused again")
	}
}

func TestView_SetSize_ReservesToolbarRow(t *testing.T) {
	d := model.NewDocument()
	root, _ := d.CreateRoot("main", model.RootOptions{})

	withToolbar := NewView(root, Options{})
	withToolbar = withToolbar.SetSize(20, 5)
	if withToolbar.viewport.Height != 4 {
		t.Fatalf("viewport height=%d, want 4 with toolbar", withToolbar.viewport.Height)
	}

	bare := NewView(root, Options{Toolbar: []string{}})
	bare = bare.SetSize(20, 5)
	if bare.viewport.Height != 5 {
		t.Fatalf("viewport height=%d, want 5 without toolbar", bare.viewport.Height)
	}
}

func TestView_VerticalMovementClampsOffset(t *testing.T) {
	v, root := newTestView(t, Options{})
	root.SetBlocks([]model.Block{
		{Type: model.Paragraph, Spans: []model.Span{{Text: "long line"}}},
		{Type: model.Paragraph, Spans: []model.Span{{Text: "ab"}}},
	})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnd})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})

	if got := v.Cursor(); got != (model.Pos{Block: 1, Offset: 2}) {
		t.Fatalf("cursor=%v, want clamped (1,2)", got)
	}
}
