package ui

import (
	"errors"

	"github.com/virtualwonders/ckeditor5-editor-classic/dom"
	"github.com/virtualwonders/ckeditor5-editor-classic/model"
)

// ClassicUI is the classic editor's UI object. The editor drives its
// lifecycle: Init hides the source element the editor replaces, Destroy
// reveals it again. Hosts embed the editable View in their Bubble Tea
// program via Editable.
type ClassicUI struct {
	view    View
	adapter dom.Adapter

	source      *dom.Element
	initialized bool
	destroyed   bool
}

// NewClassic builds the classic UI over the editor's root.
func NewClassic(root *model.RootElement, adapter dom.Adapter, opts Options) *ClassicUI {
	return &ClassicUI{
		view:    NewView(root, opts),
		adapter: adapter,
	}
}

// Init attaches the UI. el is the source element being replaced, or nil
// for a detached editor.
func (u *ClassicUI) Init(el *dom.Element) error {
	if u.destroyed {
		return errors.New("ui: init after destroy")
	}
	if u.initialized {
		return errors.New("ui: already initialized")
	}
	u.initialized = true
	u.source = el
	u.adapter.Hide(el)
	return nil
}

// Destroy detaches the UI and reveals the source element.
func (u *ClassicUI) Destroy() error {
	if u.destroyed {
		return errors.New("ui: already destroyed")
	}
	u.destroyed = true
	u.adapter.Reveal(u.source)
	u.source = nil
	return nil
}

// Editable returns the Bubble Tea component for the editing surface. The
// returned value is independently updatable by the host; it shares the
// underlying model root with the editor.
func (u *ClassicUI) Editable() View { return u.view }
