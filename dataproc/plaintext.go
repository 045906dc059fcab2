package dataproc

import (
	"strings"

	"github.com/virtualwonders/ckeditor5-editor-classic/model"
)

// PlainText treats data as unstyled text: blank-line-separated paragraphs,
// no inline marks. Lines inside a paragraph are joined with a space; Render
// puts a blank line between paragraphs.
type PlainText struct{}

func NewPlainText() *PlainText { return &PlainText{} }

func (*PlainText) Parse(markup string) ([]model.Block, error) {
	if markup == "" {
		return nil, nil
	}
	lines := strings.Split(strings.ReplaceAll(markup, "\r\n", "\n"), "\n")

	var blocks []model.Block
	var para []string
	flush := func() {
		if len(para) == 0 {
			return
		}
		blocks = append(blocks, model.Block{
			Type:  model.Paragraph,
			Spans: model.NormalizeSpans([]model.Span{{Text: strings.Join(para, " ")}}),
		})
		para = nil
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		para = append(para, line)
	}
	flush()
	return blocks, nil
}

func (*PlainText) Render(blocks []model.Block) (string, error) {
	var sb strings.Builder
	for i, b := range blocks {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(b.Text())
	}
	return sb.String(), nil
}
