package editor

import (
	"github.com/virtualwonders/ckeditor5-editor-classic/dataproc"
	"github.com/virtualwonders/ckeditor5-editor-classic/model"
)

// DataController is the pipeline between serialized markup and the model
// root.
type DataController struct {
	proc dataproc.Processor
	root *model.RootElement
}

func newDataController(proc dataproc.Processor, root *model.RootElement) *DataController {
	return &DataController{proc: proc, root: root}
}

// Processor returns the installed data processor.
func (d *DataController) Processor() dataproc.Processor { return d.proc }

// Get serializes the root's current content.
func (d *DataController) Get() (string, error) {
	return d.proc.Render(d.root.Blocks())
}

// Set replaces the root's content with the parsed markup. Loading content
// is not an undoable edit; history is cleared.
func (d *DataController) Set(markup string) error {
	blocks, err := d.proc.Parse(markup)
	if err != nil {
		return err
	}
	d.root.SetBlocks(blocks)
	return nil
}
