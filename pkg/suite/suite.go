package suite

import (
	"context"

	"github.com/dmitrymomot/formstate/pkg/fieldpath"
	"github.com/dmitrymomot/formstate/pkg/formdata"
)

// Suite evaluates field rules against a form data snapshot. A non-zero only
// path restricts which rules execute; the zero path runs everything.
// Implementations must return promptly: asynchronous rules report through
// the Result's pending state and Done hooks, not by blocking Evaluate.
type Suite interface {
	Evaluate(ctx context.Context, model formdata.Snapshot, only fieldpath.Path) Result
}

// SuiteFunc adapts a plain function to the Suite interface.
type SuiteFunc func(ctx context.Context, model formdata.Snapshot, only fieldpath.Path) Result

// Evaluate implements Suite.
func (f SuiteFunc) Evaluate(ctx context.Context, model formdata.Snapshot, only fieldpath.Path) Result {
	return f(ctx, model, only)
}

// Result is the outcome of one suite invocation. Readers may hold a Result
// across the pending window; all methods are safe for concurrent use.
type Result interface {
	// HasErrors reports whether the given field has errors, or, with no
	// argument, whether any field does.
	HasErrors(field ...fieldpath.Path) bool

	// Errors returns the error messages recorded for the field.
	Errors(field fieldpath.Path) []string

	// HasWarnings mirrors HasErrors for warning-class rules.
	HasWarnings(field ...fieldpath.Path) bool

	// Warnings returns the warning messages recorded for the field.
	Warnings(field fieldpath.Path) []string

	// IsTested reports whether at least one rule ran for the field.
	IsTested(field fieldpath.Path) bool

	// IsPending reports whether an asynchronous rule for the field (or, with
	// no argument, any field) has not yet resolved.
	IsPending(field ...fieldpath.Path) bool

	// IsValid reports the absence of errors for the field or the whole run.
	// Pending fields are not valid yet.
	IsValid(field ...fieldpath.Path) bool

	// Fields lists every field the run produced state for, in declaration
	// order.
	Fields() []fieldpath.Path

	// ErrorsByField returns a snapshot of all recorded errors keyed by field.
	ErrorsByField() map[fieldpath.Path][]string

	// Done registers a completion hook. It fires once all asynchronous rules
	// of the run have resolved; on an already settled result it fires
	// immediately, on the caller's goroutine.
	Done(fn func(Result))
}
