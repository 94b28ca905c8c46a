package formstate

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formstate/pkg/fieldpath"
	"github.com/dmitrymomot/formstate/pkg/suite"
)

// fieldRun tracks the current validation run for one field: its identity
// token, the debounce timer that may still precede it, and the cancellation
// hook for its in-flight async work.
type fieldRun struct {
	token  uuid.UUID
	timer  *time.Timer
	cancel context.CancelFunc
}

// SetField writes a value into the model and schedules scoped re-validation
// of the edited field. A previous in-flight run for the same field is
// cancelled first: only the most recently issued run's result is ever
// applied (last-write-wins).
func (f *Form) SetField(path fieldpath.Path, value any) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFormClosed
	}
	next, err := f.model.With(path, value)
	if err != nil {
		f.mu.Unlock()
		return err
	}
	f.model = next

	fs := f.fieldLocked(path)
	// Read both sides back through the snapshot so the host-supplied value
	// and the initial value compare in the same JSON representation.
	current, _ := next.Get(path)
	initialValue, _ := f.initial.Get(path)
	fs.setDirty(!reflect.DeepEqual(current, initialValue))

	token := f.beginRunLocked(path)
	debounce := f.cfg.debounce
	if debounce > 0 {
		f.runs[path].timer = time.AfterFunc(debounce, func() {
			f.validateField(path, token)
		})
	}
	f.mu.Unlock()
	f.bump()

	if debounce <= 0 {
		f.validateField(path, token)
	}
	return nil
}

// beginRunLocked supersedes any current run for the field and registers a
// fresh one, returning its token. The per-field sequence advances so a
// full run issued earlier can tell the field now belongs to a newer run.
func (f *Form) beginRunLocked(path fieldpath.Path) uuid.UUID {
	f.cancelRunLocked(path)
	f.seq[path]++
	token := uuid.New()
	f.runs[path] = &fieldRun{token: token}
	return token
}

func (f *Form) cancelRunLocked(path fieldpath.Path) {
	run, ok := f.runs[path]
	if !ok {
		return
	}
	if run.timer != nil {
		run.timer.Stop()
	}
	if run.cancel != nil {
		run.cancel()
	}
	delete(f.runs, path)
}

func (f *Form) cancelAllRunsLocked() {
	for path := range f.runs {
		f.cancelRunLocked(path)
	}
}

// validateField executes the scoped suite run identified by token. Stale
// tokens (superseded by a newer edit) return without effect.
func (f *Form) validateField(path fieldpath.Path, token uuid.UUID) {
	f.mu.Lock()
	run, ok := f.runs[path]
	if !ok || run.token != token || f.closed {
		f.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(f.ctx)
	run.cancel = cancel
	model := f.model
	f.mu.Unlock()

	res := f.adapter.Evaluate(ctx, model, path)

	// Apply immediately so the pending flag is observable right away; the
	// tracker keeps serving the previous settled messages meanwhile.
	f.applyField(path, token, res)

	res.Done(func(settled suite.Result) {
		if !f.applyField(path, token, settled) {
			return
		}
		f.retireRun(path, token)
		f.runDependents(path)
	})
}

// applyField folds a result into the field tracker if the token still
// identifies the current run. Reports whether the result was applied.
func (f *Form) applyField(path fieldpath.Path, token uuid.UUID, res suite.Result) bool {
	f.mu.Lock()
	run, ok := f.runs[path]
	if !ok || run.token != token {
		f.mu.Unlock()
		return false
	}
	fs := f.fieldLocked(path)
	f.mu.Unlock()

	fs.applyResult(res)
	f.bump()
	return true
}

// retireRun retires a completed run so a later identical token cannot
// be reused.
func (f *Form) retireRun(path fieldpath.Path, token uuid.UUID) {
	f.mu.Lock()
	if run, ok := f.runs[path]; ok && run.token == token {
		if run.cancel != nil {
			run.cancel()
		}
		delete(f.runs, path)
	}
	f.mu.Unlock()
}

// runDependents re-validates the configured dependents of a settled trigger,
// sequentially and one hop deep.
func (f *Form) runDependents(trigger fieldpath.Path) {
	for _, dep := range f.cfg.deps.DependentsOf(trigger) {
		f.logger().Debug("re-validating dependent field",
			slog.String("trigger", trigger.String()),
			slog.String("dependent", dep.String()),
		)
		f.revalidate(dep)
	}
}

// revalidate runs a scoped validation for a field outside the edit flow
// (dependents, cleared fields). It supersedes any in-flight run for the
// field but never cascades further.
func (f *Form) revalidate(path fieldpath.Path) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	token := f.beginRunLocked(path)
	run := f.runs[path]
	ctx, cancel := context.WithCancel(f.ctx)
	run.cancel = cancel
	model := f.model
	f.mu.Unlock()

	res := f.adapter.Evaluate(ctx, model, path)
	f.applyField(path, token, res)
	res.Done(func(settled suite.Result) {
		if f.applyField(path, token, settled) {
			f.retireRun(path, token)
		}
	})
}
