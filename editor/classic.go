package editor

import (
	"context"

	"go.uber.org/zap"

	"github.com/virtualwonders/ckeditor5-editor-classic/dom"
	"github.com/virtualwonders/ckeditor5-editor-classic/ui"
)

// UI is the view/controller pair bound to one editor instance. Init
// receives the source element, or nil for detached editors.
type UI interface {
	Init(el *dom.Element) error
	Destroy() error
}

// Source is the first argument to Create: either a host element to
// replace or a raw markup string.
type Source struct {
	element *dom.Element
	data    string
	isData  bool
}

// FromElement binds the editor to a host element. The element's content
// seeds the editor and is written back on destroy.
func FromElement(el *dom.Element) Source {
	return Source{element: el}
}

// FromData creates a detached editor seeded with the given markup.
func FromData(markup string) Source {
	return Source{data: markup, isData: true}
}

// DataAPI is the content capability set: reading and replacing the
// editor's serialized content.
type DataAPI interface {
	Data() (string, error)
	SetData(markup string) error
}

// ElementAPI is the source-binding capability set: access to the bound
// element and resynchronizing it from editor content.
type ElementAPI interface {
	SourceElement() *dom.Element
	UpdateSourceElement() error
}

// ClassicEditor is the classic editor build: the generic base plus a
// source-element binding and the classic UI.
type ClassicEditor struct {
	Editor

	sourceElement *dom.Element
	adapter       dom.Adapter
	ui            UI
}

var (
	_ DataAPI    = (*ClassicEditor)(nil)
	_ ElementAPI = (*ClassicEditor)(nil)
)

// Create constructs, initializes, and returns a ready classic editor. The
// steps run strictly in order: plugin loading, UI initialization, the
// initial-data conflict check, data loading, and the ready event. The
// first failure aborts creation and is returned; a failed editor must be
// discarded, not reused.
func Create(ctx context.Context, src Source, cfg Config) (*ClassicEditor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	base, err := newEditor(cfg)
	if err != nil {
		return nil, err
	}

	e := &ClassicEditor{Editor: *base, adapter: cfg.Adapter}
	if e.adapter == nil {
		e.adapter = dom.NewNodeAdapter()
	}
	if !src.isData {
		e.sourceElement = src.element
	}

	e.ui = cfg.UI
	if e.ui == nil {
		toolbar := cfg.Toolbar
		if toolbar == nil {
			toolbar = DefaultToolbar()
		}
		e.ui = ui.NewClassic(e.Root(), e.adapter, ui.Options{
			Toolbar:  toolbar,
			Style:    cfg.Style,
			OnChange: cfg.OnChange,
		})
	}
	if cfg.OnReady != nil {
		e.On(EventReady, cfg.OnReady)
	}

	e.state = StatePluginsLoading
	e.log.Debug("loading plugins", zap.Int("count", len(cfg.Plugins)))
	if err := e.loadPlugins(ctx, cfg.Plugins); err != nil {
		return nil, err
	}

	e.state = StateUIInitializing
	if err := e.ui.Init(e.sourceElement); err != nil {
		return nil, err
	}

	e.state = StateDataLoading
	initialData, err := e.initialData(src, cfg)
	if err != nil {
		return nil, err
	}
	if err := e.data.Set(initialData); err != nil {
		return nil, err
	}

	e.state = StateReady
	e.log.Info("editor ready", zap.Strings("plugins", e.Plugins()))
	e.Fire(EventReady)
	return e, nil
}

// initialData resolves the initial content. Config.InitialData wins over
// element content; combining it with a data-string source is a
// configuration conflict.
func (e *ClassicEditor) initialData(src Source, cfg Config) (string, error) {
	if src.isData {
		if cfg.InitialData != "" {
			return "", newError(CodeCreateInitialData,
				"the config initial data option cannot be used together with initial data passed to Create")
		}
		return src.data, nil
	}
	if cfg.InitialData != "" {
		return cfg.InitialData, nil
	}
	return e.adapter.Read(e.sourceElement)
}

// Destroy tears the editor down: source element resynchronization, UI
// teardown, then the base teardown. A second call is an error.
func (e *ClassicEditor) Destroy(ctx context.Context) error {
	if e.state == StateDestroyed || e.state == StateDestroying {
		return newError(CodeDestroyed, "the editor has already been destroyed")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	e.state = StateDestroying
	e.log.Info("destroying editor")

	if e.sourceElement != nil {
		if err := e.UpdateSourceElement(); err != nil {
			return err
		}
	}
	if err := e.ui.Destroy(); err != nil {
		return err
	}
	return e.destroyBase()
}

// SourceElement returns the bound host element, or nil for detached
// editors. Part of the element API.
func (e *ClassicEditor) SourceElement() *dom.Element { return e.sourceElement }

// UpdateSourceElement writes the editor's current content back into the
// source element. A no-op for detached editors. Part of the element API.
func (e *ClassicEditor) UpdateSourceElement() error {
	if e.sourceElement == nil {
		return nil
	}
	data, err := e.data.Get()
	if err != nil {
		return err
	}
	return e.adapter.Write(e.sourceElement, data)
}

// UI returns the editor's UI object.
func (e *ClassicEditor) UI() UI { return e.ui }
