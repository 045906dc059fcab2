package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Element is a handle on one element node in a host document tree.
type Element struct {
	node *html.Node
}

// NewElement wraps an element node. It returns nil for nil or non-element
// nodes.
func NewElement(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &Element{node: n}
}

// Name returns the lower-case tag name.
func (e *Element) Name() string { return e.node.Data }

// ID returns the value of the id attribute, or "".
func (e *Element) ID() string { return e.Attr("id") }

// Attr returns the value of the named attribute, or "".
func (e *Element) Attr(name string) string {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets or replaces the named attribute. An empty value removes it.
func (e *Element) SetAttr(name, val string) {
	for i, a := range e.node.Attr {
		if a.Key == name {
			if val == "" {
				e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			} else {
				e.node.Attr[i].Val = val
			}
			return
		}
	}
	if val != "" {
		e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: val})
	}
}

// Node exposes the underlying node for hosts that need it.
func (e *Element) Node() *html.Node { return e.node }

// InnerHTML serializes the element's children.
func (e *Element) InnerHTML() (string, error) {
	var sb strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return "", fmt.Errorf("dom: rendering %s: %w", e.Name(), err)
		}
	}
	return sb.String(), nil
}

// SetInnerHTML replaces the element's children with the parsed markup.
func (e *Element) SetInnerHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		return fmt.Errorf("dom: parsing fragment for %s: %w", e.Name(), err)
	}
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// TextContent returns the concatenated text of the element's subtree.
func (e *Element) TextContent() string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return sb.String()
}

// SetTextContent replaces the element's children with a single text node.
func (e *Element) SetTextContent(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// ParseDocument parses a full HTML page.
func ParseDocument(page string) (*html.Node, error) {
	n, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("dom: parsing document: %w", err)
	}
	return n, nil
}

// FindByID returns the element with the given id, or nil.
func FindByID(root *html.Node, id string) *Element {
	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "id" && a.Val == id {
					found = n
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return NewElement(found)
}

// RenderDocument serializes a node tree back to HTML.
func RenderDocument(root *html.Node) (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, root); err != nil {
		return "", fmt.Errorf("dom: rendering document: %w", err)
	}
	return sb.String(), nil
}
