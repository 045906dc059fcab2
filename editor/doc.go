// Package editor implements the classic editor: a bootstrap layer that
// wires a model document, a data pipeline, a plugin set, and a UI shell to
// a host document element.
//
// Create drives a strictly sequential lifecycle: plugin loading, UI
// initialization, initial data loading, and a final ready event. Any
// failure aborts creation and is returned to the caller; no partially
// initialized editor is ever exposed.
package editor
