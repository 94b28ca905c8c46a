package suite

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/formstate/pkg/fieldpath"
	"github.com/dmitrymomot/formstate/pkg/formdata"
)

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithLogger sets the logger used when a rule body panics.
func WithLogger(log *slog.Logger) AdapterOption {
	return func(a *Adapter) {
		if log != nil {
			a.log = log
		}
	}
}

// Adapter hardens a Suite for pipeline use: the scope argument is forwarded
// unconditionally, and a synchronous panic inside a rule body is converted
// into a field-scoped error result instead of unwinding the caller.
type Adapter struct {
	suite Suite
	log   *slog.Logger
}

// NewAdapter wraps a suite. It panics on a nil suite; a form without rules
// is a programming error caught at construction.
func NewAdapter(s Suite, opts ...AdapterOption) *Adapter {
	if s == nil {
		panic(ErrSuiteNil)
	}
	a := &Adapter{suite: s, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Evaluate runs the wrapped suite. The only argument is passed through on
// every call, zero or not; engines key their internal run tracking on it and
// omitting it conditionally corrupts cross-run state.
func (a *Adapter) Evaluate(ctx context.Context, model formdata.Snapshot, only fieldpath.Path) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			target := only
			if target.IsZero() {
				target = fieldpath.Root
			}
			a.log.Error("rule body panicked, converted to field error",
				slog.String("field", target.String()),
				slog.Any("panic", rec),
			)
			res = NewStaticResult(map[fieldpath.Path][]string{
				target: {fmt.Sprintf("%s: %v", ErrRulePanicked.Error(), rec)},
			}, nil)
		}
	}()

	return a.suite.Evaluate(ctx, model, only)
}
