package editor

import (
	"go.uber.org/zap"

	"github.com/virtualwonders/ckeditor5-editor-classic/dataproc"
	"github.com/virtualwonders/ckeditor5-editor-classic/dom"
	"github.com/virtualwonders/ckeditor5-editor-classic/ui"
)

// Config configures editor creation.
type Config struct {
	// InitialData is the initial markup. It may not be combined with a
	// data string passed to Create; it takes precedence over source
	// element content.
	InitialData string

	// Plugins are loaded in order during Create.
	Plugins []Plugin

	// DataProcessor converts between markup and model blocks.
	// Defaults to the HTML processor.
	DataProcessor dataproc.Processor

	// Adapter performs host-document side effects. Defaults to
	// dom.NewNodeAdapter().
	Adapter dom.Adapter

	// UI overrides the editor's UI object. Defaults to the classic
	// terminal UI bound to the editor's root.
	UI UI

	// Toolbar lists the toolbar items for the default UI. Defaults to
	// DefaultToolbar.
	Toolbar []string

	// Style overrides the default UI style.
	Style *ui.Style

	// HistoryLimit caps the undo stack. 0 selects the model default;
	// negative disables history.
	HistoryLimit int

	// OnReady is called when the ready event fires.
	OnReady func()

	// OnChange is called by the default UI after every observable
	// content or cursor change.
	OnChange func(ui.ChangeEvent)

	// Logger receives lifecycle logging. Defaults to zap.NewNop().
	Logger *zap.Logger
}

// DefaultToolbar is the toolbar of the default classic UI.
func DefaultToolbar() []string { return ui.DefaultToolbar() }
