package formstate

import (
	"context"
	"fmt"
	"maps"

	"github.com/dmitrymomot/formstate/pkg/suite"
)

// Submit runs the full rule set (no field scope), folds every returned field
// into its tracker, flips the monotonic submitted flag, and runs the schema
// cross-check exactly once if one is configured. It returns nil when the
// form is valid; ErrFormInvalid when field errors remain; the host submit
// handler's error when that fails. Validation problems are state, not
// exceptions — Submit never panics on rule failures.
func (f *Form) Submit(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFormClosed
	}
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	f.submitting = true
	// A full run supersedes every scoped run still in flight.
	f.cancelAllRunsLocked()
	model := f.model
	seq := maps.Clone(f.seq)
	f.mu.Unlock()
	f.bump()

	runCtx, cancelRun := context.WithCancel(f.ctx)
	defer cancelRun()
	stop := context.AfterFunc(ctx, cancelRun)
	defer stop()

	res := f.adapter.Evaluate(runCtx, model, "")

	settledCh := make(chan suite.Result, 1)
	res.Done(func(r suite.Result) { settledCh <- r })

	var settled suite.Result
	select {
	case settled = <-settledCh:
	case <-ctx.Done():
		f.setSubmitting(false)
		return ctx.Err()
	}

	f.mu.Lock()
	for _, path := range settled.Fields() {
		// Fields edited since the full run began belong to their newer
		// scoped run; this older result must not overwrite them.
		if f.seq[path] != seq[path] {
			continue
		}
		f.fieldLocked(path).applyResult(settled)
	}
	f.submitted = true
	checker := f.cfg.checker
	f.mu.Unlock()
	f.bump()

	if checker != nil {
		schemaRes := checker.Check(ctx, model)
		f.mu.Lock()
		f.schema = schemaRes
		f.mu.Unlock()
		f.bump()
	}

	agg := f.Aggregate()
	if !agg.Valid {
		f.setSubmitting(false)
		return fmt.Errorf("%w: %d error(s), first at %q",
			ErrFormInvalid, agg.ErrorCount, agg.FirstInvalidField)
	}

	if f.cfg.submitHandler != nil {
		if err := f.cfg.submitHandler(ctx, model); err != nil {
			f.setSubmitting(false)
			return err
		}
	}

	f.setSubmitting(false)
	return nil
}

func (f *Form) setSubmitting(v bool) {
	f.mu.Lock()
	f.submitting = v
	f.mu.Unlock()
	f.bump()
}
