package dataproc

import "github.com/virtualwonders/ckeditor5-editor-classic/model"

// Processor converts between a markup string and model blocks. Parse and
// Render are inverses for the markup subset a processor supports;
// unsupported input degrades to its textual content rather than erroring.
type Processor interface {
	// Parse converts markup into blocks. Empty markup yields nil blocks.
	Parse(markup string) ([]model.Block, error)
	// Render serializes blocks back into markup.
	Render(blocks []model.Block) (string, error)
}
