package editor

import "errors"

// Stable machine-readable error codes for lifecycle failures.
const (
	// CodeCreateInitialData: initial content was supplied both as a data
	// string to Create and through Config.InitialData.
	CodeCreateInitialData = "editor-create-initial-data"
	// CodeDestroyed: a lifecycle operation was invoked on a destroyed
	// editor.
	CodeDestroyed = "editor-destroyed"
	// CodeDuplicatePlugin: two configured plugins share a name.
	CodeDuplicatePlugin = "editor-plugin-duplicate"
)

// Error is a lifecycle error carrying a stable code next to its
// human-readable message.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Code + ": " + e.Message }

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// IsCode reports whether err is an editor Error with the given code.
func IsCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
