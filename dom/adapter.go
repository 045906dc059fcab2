package dom

import "strings"

// Adapter performs the host-document side effects the editor lifecycle
// needs. Implementations must tolerate nil elements on Hide and Reveal.
type Adapter interface {
	// Read extracts the element's current markup: inner HTML for regular
	// elements, the raw value for textarea elements.
	Read(el *Element) (string, error)
	// Write replaces the element's content with markup, symmetric to Read.
	Write(el *Element, markup string) error
	// Hide makes the element invisible without removing it.
	Hide(el *Element)
	// Reveal undoes a prior Hide, restoring the element's original styling.
	Reveal(el *Element)
}

const hiddenStyle = "display:none"

// NodeAdapter is the Adapter for x/net/html trees. Hide and Reveal toggle
// an inline display:none while preserving any prior style attribute in a
// data attribute.
type NodeAdapter struct{}

func NewNodeAdapter() *NodeAdapter { return &NodeAdapter{} }

func (*NodeAdapter) Read(el *Element) (string, error) {
	if el == nil {
		return "", nil
	}
	if el.Name() == "textarea" {
		return el.TextContent(), nil
	}
	return el.InnerHTML()
}

func (*NodeAdapter) Write(el *Element, markup string) error {
	if el == nil {
		return nil
	}
	if el.Name() == "textarea" {
		el.SetTextContent(markup)
		return nil
	}
	return el.SetInnerHTML(markup)
}

func (*NodeAdapter) Hide(el *Element) {
	if el == nil || strings.Contains(el.Attr("style"), hiddenStyle) {
		return
	}
	if prev := el.Attr("style"); prev != "" {
		el.SetAttr("data-prev-style", prev)
	}
	el.SetAttr("style", hiddenStyle)
}

func (*NodeAdapter) Reveal(el *Element) {
	if el == nil || !strings.Contains(el.Attr("style"), hiddenStyle) {
		return
	}
	if prev := el.Attr("data-prev-style"); prev != "" {
		el.SetAttr("style", prev)
		el.SetAttr("data-prev-style", "")
		return
	}
	el.SetAttr("style", "")
}
