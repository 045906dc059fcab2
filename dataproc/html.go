package dataproc

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/virtualwonders/ckeditor5-editor-classic/model"
)

// HTML converts between an HTML fragment and model blocks.
//
// Supported structure: p, h1-h3, pre (code blocks), br (block split);
// supported inline markup: strong/b, em/i, code. Unknown elements fall
// through to their children. Whitespace collapses in inline context and is
// preserved inside pre.
type HTML struct{}

func NewHTML() *HTML { return &HTML{} }

func (*HTML) Parse(markup string) ([]model.Block, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, nil
	}

	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("dataproc: parsing HTML: %w", err)
	}

	body := findElement(root, "body")
	if body == nil {
		return nil, nil
	}

	p := &htmlParser{}
	for n := body.FirstChild; n != nil; n = n.NextSibling {
		p.walkBlockLevel(n)
	}
	p.flush()
	return p.blocks, nil
}

func (*HTML) Render(blocks []model.Block) (string, error) {
	var sb strings.Builder
	for _, b := range blocks {
		renderBlock(&sb, b)
	}
	return sb.String(), nil
}

var blockTags = map[string]model.BlockType{
	"p":  model.Paragraph,
	"h1": model.Heading1,
	"h2": model.Heading2,
	"h3": model.Heading3,
}

type htmlParser struct {
	blocks []model.Block

	// pending inline content not yet committed to a block.
	spans   []model.Span
	curType model.BlockType
	started bool
}

func (p *htmlParser) walkBlockLevel(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		p.inlineText(n.Data, 0)
	case html.ElementNode:
		if t, ok := blockTags[n.Data]; ok {
			p.flush()
			p.curType = t
			p.started = true
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				p.walkInline(c, 0)
			}
			p.flush()
			return
		}
		switch n.Data {
		case "pre":
			p.flush()
			p.codeBlocks(n)
		case "br":
			p.breakBlock()
		default:
			// Unknown block-level or inline element: descend.
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				p.walkBlockLevel(c)
			}
		}
	}
}

func (p *htmlParser) walkInline(n *html.Node, marks model.Mark) {
	switch n.Type {
	case html.TextNode:
		p.inlineText(n.Data, marks)
	case html.ElementNode:
		switch n.Data {
		case "strong", "b":
			marks |= model.Bold
		case "em", "i":
			marks |= model.Italic
		case "code":
			marks |= model.Code
		case "br":
			p.breakBlock()
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.walkInline(c, marks)
		}
	}
}

// inlineText appends collapsed text to the pending spans.
func (p *htmlParser) inlineText(text string, marks model.Mark) {
	text = collapseSpace(text)
	if text == " " && len(p.spans) == 0 {
		// Leading inter-tag whitespace.
		return
	}
	if text == "" {
		return
	}
	p.started = true
	p.spans = append(p.spans, model.Span{Text: text, Marks: marks})
}

// codeBlocks emits one CodeBlock per line of the pre element's text.
func (p *htmlParser) codeBlocks(n *html.Node) {
	text := strings.TrimSuffix(nodeText(n), "\n")
	text = strings.TrimPrefix(text, "\n")
	for _, line := range strings.Split(text, "\n") {
		p.blocks = append(p.blocks, model.Block{
			Type:  model.CodeBlock,
			Spans: model.NormalizeSpans([]model.Span{{Text: line}}),
		})
	}
}

// breakBlock commits pending content and continues in a block of the same
// type.
func (p *htmlParser) breakBlock() {
	t := p.curType
	p.flush()
	p.curType = t
	p.started = true
}

// flush commits pending inline content as one block.
func (p *htmlParser) flush() {
	spans := model.NormalizeSpans(trimSpans(p.spans))
	if p.started || spans != nil {
		p.blocks = append(p.blocks, model.Block{Type: p.curType, Spans: spans})
	}
	p.reset()
}

func (p *htmlParser) reset() {
	p.spans = nil
	p.curType = model.Paragraph
	p.started = false
}

func renderBlock(sb *strings.Builder, b model.Block) {
	switch b.Type {
	case model.CodeBlock:
		sb.WriteString("<pre><code>")
		sb.WriteString(html.EscapeString(b.Text()))
		sb.WriteString("</code></pre>")
		return
	case model.Heading1:
		renderInline(sb, "h1", b.Spans)
	case model.Heading2:
		renderInline(sb, "h2", b.Spans)
	case model.Heading3:
		renderInline(sb, "h3", b.Spans)
	default:
		renderInline(sb, "p", b.Spans)
	}
}

func renderInline(sb *strings.Builder, tag string, spans []model.Span) {
	sb.WriteString("<")
	sb.WriteString(tag)
	sb.WriteString(">")
	for _, s := range spans {
		opening, closing := markTags(s.Marks)
		sb.WriteString(opening)
		sb.WriteString(html.EscapeString(s.Text))
		sb.WriteString(closing)
	}
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteString(">")
}

// markTags returns nested opening and closing tags for a mark set, in a
// fixed order so rendering is deterministic.
func markTags(m model.Mark) (opening, closing string) {
	if m.Has(model.Bold) {
		opening += "<strong>"
		closing = "</strong>" + closing
	}
	if m.Has(model.Italic) {
		opening += "<em>"
		closing = "</em>" + closing
	}
	if m.Has(model.Code) {
		opening += "<code>"
		closing = "</code>" + closing
	}
	return opening, closing
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}

// collapseSpace folds runs of whitespace into single spaces, keeping one
// leading and one trailing space when present so adjacent inline nodes
// stay separated. Pure whitespace collapses to a single space.
func collapseSpace(s string) string {
	if s == "" {
		return ""
	}
	fields := strings.FieldsFunc(s, isHTMLSpace)
	if len(fields) == 0 {
		return " "
	}
	out := strings.Join(fields, " ")
	if isHTMLSpace(rune(s[0])) {
		out = " " + out
	}
	if isHTMLSpace(rune(s[len(s)-1])) {
		out += " "
	}
	return out
}

func isHTMLSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

// trimSpans strips the leading space of the first span and the trailing
// space of the last, after whitespace collapsing.
func trimSpans(spans []model.Span) []model.Span {
	out := append([]model.Span(nil), spans...)
	for len(out) > 0 {
		out[0].Text = strings.TrimLeft(out[0].Text, " ")
		if out[0].Text != "" {
			break
		}
		out = out[1:]
	}
	for len(out) > 0 {
		last := len(out) - 1
		out[last].Text = strings.TrimRight(out[last].Text, " ")
		if out[last].Text != "" {
			break
		}
		out = out[:last]
	}
	return out
}
