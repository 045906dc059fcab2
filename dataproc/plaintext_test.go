package dataproc

import (
	"testing"

	"github.com/virtualwonders/ckeditor5-editor-classic/model"
)

func TestPlainText_ParseAndRender(t *testing.T) {
	p := NewPlainText()

	blocks, err := p.Parse("one\ntwo\r\n\r\nthree")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []model.Block{
		{Type: model.Paragraph, Spans: []model.Span{{Text: "one two"}}},
		{Type: model.Paragraph, Spans: []model.Span{{Text: "three"}}},
	}
	assertBlocks(t, blocks, want)

	out, err := p.Render(blocks)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "one two\n\nthree" {
		t.Fatalf("render=%q, want %q", out, "one two\n\nthree")
	}
}

func TestPlainText_BlankLinesSeparateParagraphs(t *testing.T) {
	p := NewPlainText()

	blocks, err := p.Parse("first paragraph\n\nsecond paragraph")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []model.Block{
		{Type: model.Paragraph, Spans: []model.Span{{Text: "first paragraph"}}},
		{Type: model.Paragraph, Spans: []model.Span{{Text: "second paragraph"}}},
	}
	assertBlocks(t, blocks, want)
}

func TestPlainText_RunsOfBlankLinesCollapse(t *testing.T) {
	p := NewPlainText()

	blocks, err := p.Parse("\n\na\n\n\n\nb\n\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []model.Block{
		{Type: model.Paragraph, Spans: []model.Span{{Text: "a"}}},
		{Type: model.Paragraph, Spans: []model.Span{{Text: "b"}}},
	}
	assertBlocks(t, blocks, want)
}

func TestPlainText_Empty(t *testing.T) {
	p := NewPlainText()
	blocks, err := p.Parse("")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if blocks != nil {
		t.Fatalf("blocks=%v, want nil", blocks)
	}

	out, err := p.Render(nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "" {
		t.Fatalf("render=%q, want empty", out)
	}
}

func TestPlainText_RenderDropsMarks(t *testing.T) {
	p := NewPlainText()
	out, err := p.Render([]model.Block{{
		Type:  model.Heading1,
		Spans: []model.Span{{Text: "bold", Marks: model.Bold}, {Text: " text"}},
	}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "bold text" {
		t.Fatalf("render=%q, want %q", out, "bold text")
	}
}
