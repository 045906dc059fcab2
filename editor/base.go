package editor

import (
	"go.uber.org/zap"

	"github.com/virtualwonders/ckeditor5-editor-classic/dataproc"
	"github.com/virtualwonders/ckeditor5-editor-classic/model"
)

// State is the editor's lifecycle phase. Transitions are strictly
// sequential; no phase overlaps another.
type State uint8

const (
	StateConstructed State = iota
	StatePluginsLoading
	StateUIInitializing
	StateDataLoading
	StateReady
	StateDestroying
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StatePluginsLoading:
		return "plugins-loading"
	case StateUIInitializing:
		return "ui-initializing"
	case StateDataLoading:
		return "data-loading"
	case StateReady:
		return "ready"
	case StateDestroying:
		return "destroying"
	case StateDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// mainRootName is the name of the single root every editor creates at
// construction.
const mainRootName = "main"

// Editor is the generic base: model document with one root, data
// pipeline, plugin set, event emitter, and lifecycle state. ClassicEditor
// embeds it.
type Editor struct {
	emitter

	doc     *model.Document
	root    *model.RootElement
	data    *DataController
	plugins []Plugin

	state State
	log   *zap.Logger
}

func newEditor(cfg Config) (*Editor, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	doc := model.NewDocument()
	root, err := doc.CreateRoot(mainRootName, model.RootOptions{HistoryLimit: cfg.HistoryLimit})
	if err != nil {
		return nil, err
	}

	proc := cfg.DataProcessor
	if proc == nil {
		proc = dataproc.NewHTML()
	}

	return &Editor{
		doc:   doc,
		root:  root,
		data:  newDataController(proc, root),
		state: StateConstructed,
		log:   log,
	}, nil
}

// Model returns the model document.
func (e *Editor) Model() *model.Document { return e.doc }

// Root returns the editor's single editing root.
func (e *Editor) Root() *model.RootElement { return e.root }

// DataController returns the editor's data pipeline.
func (e *Editor) DataController() *DataController { return e.data }

// State returns the current lifecycle phase.
func (e *Editor) State() State { return e.state }

// Logger returns the lifecycle logger.
func (e *Editor) Logger() *zap.Logger { return e.log }

// Data serializes the editor's current content. Part of the data API.
func (e *Editor) Data() (string, error) { return e.data.Get() }

// SetData replaces the editor's content. Part of the data API.
func (e *Editor) SetData(markup string) error {
	if e.state == StateDestroyed || e.state == StateDestroying {
		return newError(CodeDestroyed, "cannot set data on a destroyed editor")
	}
	return e.data.Set(markup)
}

// destroyBase runs the generic teardown: destroy event, plugin teardown in
// reverse order, listener cleanup.
func (e *Editor) destroyBase() error {
	e.Fire(EventDestroy)
	err := e.destroyPlugins()
	e.stopListening()
	e.state = StateDestroyed
	return err
}
