package render

import "errors"

// ErrNoActivityProvider reports that no constraint declares the activity
// capability and no explicit provider was supplied.
var ErrNoActivityProvider = errors.New("render: no activity provider among constraints")

// ExportError describes a failed image export, carrying the target path.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return "render: export " + e.Path + ": " + e.Err.Error()
}

func (e *ExportError) Unwrap() error { return e.Err }
