package model

import "fmt"

// Document is the top-level model object. It owns named roots and a
// version counter bumped on every content mutation in any root.
type Document struct {
	roots   map[string]*RootElement
	order   []string
	version uint64
}

func NewDocument() *Document {
	return &Document{roots: make(map[string]*RootElement)}
}

// CreateRoot adds a root with the given name and returns it. The classic
// editor creates exactly one root ("main") at construction; a second root
// with the same name is an error.
func (d *Document) CreateRoot(name string, opt RootOptions) (*RootElement, error) {
	if _, ok := d.roots[name]; ok {
		return nil, fmt.Errorf("model: root %q already exists", name)
	}
	r := newRoot(d, name, opt)
	d.roots[name] = r
	d.order = append(d.order, name)
	return r, nil
}

// Root returns the named root, or nil if it does not exist.
func (d *Document) Root(name string) *RootElement {
	return d.roots[name]
}

// RootNames returns root names in creation order.
func (d *Document) RootNames() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Version returns the document-wide content version.
func (d *Document) Version() uint64 { return d.version }

func (d *Document) bump() { d.version++ }
