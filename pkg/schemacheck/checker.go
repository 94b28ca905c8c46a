package schemacheck

import (
	"context"

	"github.com/dmitrymomot/formstate/pkg/fieldpath"
	"github.com/dmitrymomot/formstate/pkg/formdata"
)

// Issue is one structural finding, located by a dot-delimited field path.
// Document-level findings use fieldpath.Root.
type Issue struct {
	Path    fieldpath.Path `json:"path"`
	Message string         `json:"message"`
}

// Result is the outcome of one schema check. The zero value means the
// checker has not run yet.
type Result struct {
	HasRun  bool    `json:"hasRun"`
	Success bool    `json:"success"`
	Issues  []Issue `json:"issues,omitempty"`
}

// Checker validates the structural shape of a form data snapshot.
type Checker interface {
	Check(ctx context.Context, model formdata.Snapshot) Result
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func(ctx context.Context, model formdata.Snapshot) Result

// Check implements Checker.
func (f CheckerFunc) Check(ctx context.Context, model formdata.Snapshot) Result {
	return f(ctx, model)
}

// FromSafeParser adapts a safeParse-style collaborator: a function that
// reports success and an issue list without ever failing hard.
func FromSafeParser(fn func(data map[string]any) (bool, []Issue)) Checker {
	return CheckerFunc(func(_ context.Context, model formdata.Snapshot) Result {
		ok, issues := fn(model.Map())
		return Result{HasRun: true, Success: ok, Issues: issues}
	})
}

// FromValidateFunc adapts a validate-style collaborator: a function whose
// non-nil error carries the structural mismatch. The error message becomes a
// single Root-scoped issue.
func FromValidateFunc(fn func(data map[string]any) error) Checker {
	return CheckerFunc(func(_ context.Context, model formdata.Snapshot) Result {
		if err := fn(model.Map()); err != nil {
			return Result{
				HasRun: true,
				Issues: []Issue{{Path: fieldpath.Root, Message: err.Error()}},
			}
		}
		return Result{HasRun: true, Success: true}
	})
}
