// Package ui implements the classic editor UI: a toolbar plus an editable
// terminal surface rendered with Bubble Tea and lipgloss, bound to one
// model root.
//
// ClassicUI owns the lifecycle contract the editor package drives (Init
// hides the source element, Destroy reveals it); View is the Bubble Tea
// component hosts embed in their own programs.
package ui
