package fieldpath

import "errors"

var (
	// ErrUnresolvedHint indicates that no resolution stage produced a path
	// for the given hint. In strict mode callers must treat this as a fatal
	// configuration error.
	ErrUnresolvedHint = errors.New("fieldpath: hint could not be resolved to a field path")

	// ErrEmptyHint indicates the hint carried no usable identifier at all.
	ErrEmptyHint = errors.New("fieldpath: hint has no path, id, or name")
)
