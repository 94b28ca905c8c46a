package formdata

import "errors"

var (
	// ErrInvalidDocument indicates the snapshot source is not a usable JSON
	// document or a path operation produced one.
	ErrInvalidDocument = errors.New("formdata: invalid document")

	// ErrUnwritablePath indicates a write was attempted against the Root
	// sentinel or the zero path.
	ErrUnwritablePath = errors.New("formdata: path is not writable")
)
