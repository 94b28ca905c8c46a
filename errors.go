package formstate

import "errors"

var (
	// ErrFormInvalid is returned by Submit when validation leaves the form
	// with field errors. It wraps no user-facing detail; read the aggregate
	// state for the per-field messages.
	ErrFormInvalid = errors.New("formstate: form is not valid")

	// ErrFormClosed indicates an operation on a form after Close.
	ErrFormClosed = errors.New("formstate: form is closed")

	// ErrSubmitInFlight indicates a Submit while a previous one has not
	// settled yet.
	ErrSubmitInFlight = errors.New("formstate: submit already in flight")

	// ErrInvalidConfig indicates a construction option could not be applied.
	ErrInvalidConfig = errors.New("formstate: invalid configuration")
)
