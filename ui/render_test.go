package ui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/virtualwonders/ckeditor5-editor-classic/model"
)

func pinnedStyle() (*lipgloss.Renderer, Style) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	return r, Style{
		Toolbar:     r.NewStyle(),
		Item:        r.NewStyle(),
		ItemActive:  r.NewStyle().Reverse(true),
		Text:        r.NewStyle(),
		Heading:     r.NewStyle().Bold(true),
		CodeBlock:   r.NewStyle().Foreground(lipgloss.Color("240")),
		InlineCode:  r.NewStyle().Foreground(lipgloss.Color("203")),
		Selection:   r.NewStyle().Reverse(true),
		Cursor:      r.NewStyle().Underline(true),
		Placeholder: r.NewStyle().Faint(true),
	}
}

func TestRender_MarksAndBlockTypes(t *testing.T) {
	_, st := pinnedStyle()
	v, root := newTestView(t, Options{Style: &st})
	v = v.Blur()
	root.SetBlocks([]model.Block{
		{Type: model.Heading1, Spans: []model.Span{{Text: "hd"}}},
		{Type: model.Paragraph, Spans: []model.Span{
			{Text: "a"},
			{Text: "b", Marks: model.Bold},
			{Text: "c", Marks: model.Code},
		}},
	})

	got := v.renderContent()
	want := st.Heading.Render("h") + st.Heading.Render("d") + "\n" +
		st.Text.Render("a") +
		st.Text.Bold(true).Render("b") +
		st.Text.Inherit(st.InlineCode).Render("c")
	if got != want {
		t.Fatalf("unexpected render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CursorCellAtEndOfBlock(t *testing.T) {
	_, st := pinnedStyle()
	v, root := newTestView(t, Options{Style: &st})
	root.SetBlocks([]model.Block{{Type: model.Paragraph, Spans: []model.Span{{Text: "x"}}}})
	v = v.Focus()
	v.cursor = model.Pos{Block: 0, Offset: 1}

	got := v.renderContent()
	want := st.Text.Render("x") + st.Text.Inherit(st.Cursor).Render(" ")
	if got != want {
		t.Fatalf("unexpected render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_SelectionHighlighted(t *testing.T) {
	_, st := pinnedStyle()
	v, root := newTestView(t, Options{Style: &st})
	root.SetBlocks([]model.Block{{Type: model.Paragraph, Spans: []model.Span{{Text: "abc"}}}})
	v = v.Blur()
	v.anchor = model.Pos{Block: 0, Offset: 0}
	v.cursor = model.Pos{Block: 0, Offset: 2}
	v.selecting = true

	got := v.renderContent()
	sel := st.Text.Inherit(st.Selection)
	want := sel.Render("a") + sel.Render("b") + st.Text.Render("c")
	if got != want {
		t.Fatalf("unexpected render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_PlaceholderWhenEmptyAndBlurred(t *testing.T) {
	_, st := pinnedStyle()
	v, _ := newTestView(t, Options{Style: &st, Placeholder: "Type here"})
	v = v.Blur()

	got := v.renderContent()
	want := st.Placeholder.Render("Type here")
	if got != want {
		t.Fatalf("unexpected render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_EmptyBlockKeepsOneCell(t *testing.T) {
	_, st := pinnedStyle()
	v, _ := newTestView(t, Options{Style: &st})
	v = v.Blur()

	got := v.renderContent()
	want := st.Text.Render(" ")
	if got != want {
		t.Fatalf("unexpected render:\n got: %q\nwant: %q", got, want)
	}
}
