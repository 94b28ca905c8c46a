package suite

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrymomot/formstate/pkg/fieldpath"
	"github.com/dmitrymomot/formstate/pkg/formdata"
)

// Callback declares a suite's rules against a Runner. It runs once per
// evaluation and must not retain the Runner beyond the call.
type Callback func(r *Runner)

// RuleSet is the built-in Suite implementation. It keeps the previous run's
// result so scoped evaluations can carry untouched fields forward.
type RuleSet struct {
	name string
	cb   Callback

	mu   sync.Mutex
	prev Result
}

// New builds a rule set from a declaration callback.
func New(name string, cb Callback) *RuleSet {
	return &RuleSet{name: name, cb: cb}
}

// Name returns the suite name given at construction.
func (s *RuleSet) Name() string { return s.name }

// Evaluate implements Suite. A non-zero only path executes just that field's
// rules and carries every other field's previous state forward; the zero
// path runs the full set from scratch.
func (s *RuleSet) Evaluate(ctx context.Context, model formdata.Snapshot, only fieldpath.Path) Result {
	res := newRunResult()

	s.mu.Lock()
	if !only.IsZero() {
		res.carryOver(s.prev, only)
	}
	s.prev = res
	s.mu.Unlock()

	runner := &Runner{
		ctx:     ctx,
		model:   model,
		only:    only,
		res:     res,
		omitted: make(map[fieldpath.Path]bool),
	}
	s.cb(runner)
	res.finishSync()
	return res
}

// Runner is the declaration surface handed to a suite callback.
type Runner struct {
	ctx     context.Context
	model   formdata.Snapshot
	only    fieldpath.Path
	res     *runResult
	omitted map[fieldpath.Path]bool
}

// Model returns the snapshot under validation.
func (r *Runner) Model() formdata.Snapshot { return r.model }

// Value reads a model value by path, nil when absent.
func (r *Runner) Value(field fieldpath.Path) any {
	v, _ := r.model.Get(field)
	return v
}

// String reads a model value by path as a string, empty when absent.
func (r *Runner) String(field fieldpath.Path) string {
	return r.model.String(field)
}

// Omit skips the listed fields' remaining rules when cond is true, used for
// conditional fields that are currently hidden or irrelevant.
func (r *Runner) Omit(cond bool, fields ...fieldpath.Path) {
	if !cond {
		return
	}
	for _, f := range fields {
		r.omitted[f] = true
	}
}

func (r *Runner) skip(field fieldpath.Path) bool {
	if r.omitted[field] {
		return true
	}
	return !r.only.IsZero() && field != r.only
}

// Test declares a synchronous rule: fn returning false records message as an
// error for the field.
func (r *Runner) Test(field fieldpath.Path, message string, fn func() bool) {
	if r.skip(field) {
		return
	}
	r.res.markTested(field)
	if !fn() {
		r.res.addError(field, message)
	}
}

// Warn declares a warning-class rule. Warnings never affect validity.
func (r *Runner) Warn(field fieldpath.Path, message string, fn func() bool) {
	if r.skip(field) {
		return
	}
	r.res.markTested(field)
	if !fn() {
		r.res.addWarning(field, message)
	}
}

// TestAsync declares an asynchronous rule. The field stays pending until fn
// returns; a non-nil error records message as an error. The evaluation
// context is passed into fn so a superseded run's work is abandoned, and a
// cancellation outcome is swallowed rather than recorded.
func (r *Runner) TestAsync(field fieldpath.Path, message string, fn func(ctx context.Context) error) {
	if r.skip(field) {
		return
	}
	r.res.beginAsync(field)

	ctx := r.ctx
	res := r.res
	go func() {
		err := fn(ctx)
		canceled := ctx.Err() != nil || errors.Is(err, context.Canceled)
		res.endAsync(field, message, err != nil, canceled)
	}()
}
