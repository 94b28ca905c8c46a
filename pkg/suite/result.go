package suite

import (
	"slices"
	"sync"

	"github.com/dmitrymomot/formstate/pkg/fieldpath"
)

// runResult accumulates the outcome of one evaluation. It is mutable while
// asynchronous rules are in flight and settles once the last one resolves.
type runResult struct {
	mu        sync.Mutex
	order     []fieldpath.Path
	errors    map[fieldpath.Path][]string
	warnings  map[fieldpath.Path][]string
	tested    map[fieldpath.Path]bool
	pending   map[fieldpath.Path]int
	inFlight  int
	syncDone  bool
	settled   bool
	doneHooks []func(Result)
}

func newRunResult() *runResult {
	return &runResult{
		errors:   make(map[fieldpath.Path][]string),
		warnings: make(map[fieldpath.Path][]string),
		tested:   make(map[fieldpath.Path]bool),
		pending:  make(map[fieldpath.Path]int),
	}
}

func (r *runResult) track(field fieldpath.Path) {
	if !slices.Contains(r.order, field) {
		r.order = append(r.order, field)
	}
}

func (r *runResult) markTested(field fieldpath.Path) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track(field)
	r.tested[field] = true
}

func (r *runResult) addError(field fieldpath.Path, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track(field)
	r.errors[field] = append(r.errors[field], msg)
}

func (r *runResult) addWarning(field fieldpath.Path, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track(field)
	r.warnings[field] = append(r.warnings[field], msg)
}

func (r *runResult) beginAsync(field fieldpath.Path) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track(field)
	r.tested[field] = true
	r.pending[field]++
	r.inFlight++
}

// endAsync records an async rule's outcome. Cancellation is expected control
// flow: the slot is released without recording anything.
func (r *runResult) endAsync(field fieldpath.Path, msg string, failed, canceled bool) {
	r.mu.Lock()
	if failed && !canceled {
		r.errors[field] = append(r.errors[field], msg)
	}
	r.pending[field]--
	if r.pending[field] <= 0 {
		delete(r.pending, field)
	}
	r.inFlight--
	hooks := r.settleLocked()
	r.mu.Unlock()

	for _, fn := range hooks {
		fn(r)
	}
}

// finishSync marks the synchronous declaration phase complete. The result
// settles here when no async rules were registered.
func (r *runResult) finishSync() {
	r.mu.Lock()
	r.syncDone = true
	hooks := r.settleLocked()
	r.mu.Unlock()

	for _, fn := range hooks {
		fn(r)
	}
}

func (r *runResult) settleLocked() []func(Result) {
	if r.settled || !r.syncDone || r.inFlight > 0 {
		return nil
	}
	r.settled = true
	hooks := r.doneHooks
	r.doneHooks = nil
	return hooks
}

// carryOver copies another result's settled state for every field except the
// scoped one, so incremental runs keep untouched fields stable.
func (r *runResult) carryOver(prev Result, except fieldpath.Path) {
	if prev == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, field := range prev.Fields() {
		if field == except {
			continue
		}
		r.track(field)
		if prev.IsTested(field) {
			r.tested[field] = true
		}
		if errs := prev.Errors(field); len(errs) > 0 {
			r.errors[field] = slices.Clone(errs)
		}
		if warns := prev.Warnings(field); len(warns) > 0 {
			r.warnings[field] = slices.Clone(warns)
		}
	}
}

func (r *runResult) HasErrors(field ...fieldpath.Path) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(field) == 0 {
		return len(r.errors) > 0
	}
	return len(r.errors[field[0]]) > 0
}

func (r *runResult) Errors(field fieldpath.Path) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.errors[field])
}

func (r *runResult) HasWarnings(field ...fieldpath.Path) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(field) == 0 {
		return len(r.warnings) > 0
	}
	return len(r.warnings[field[0]]) > 0
}

func (r *runResult) Warnings(field fieldpath.Path) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.warnings[field])
}

func (r *runResult) IsTested(field fieldpath.Path) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tested[field]
}

func (r *runResult) IsPending(field ...fieldpath.Path) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(field) == 0 {
		return r.inFlight > 0 || !r.syncDone
	}
	return r.pending[field[0]] > 0
}

func (r *runResult) IsValid(field ...fieldpath.Path) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(field) == 0 {
		return len(r.errors) == 0 && r.inFlight == 0 && r.syncDone
	}
	f := field[0]
	return len(r.errors[f]) == 0 && r.pending[f] == 0
}

func (r *runResult) ErrorsByField() map[fieldpath.Path][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[fieldpath.Path][]string, len(r.errors))
	for field, msgs := range r.errors {
		out[field] = slices.Clone(msgs)
	}
	return out
}

func (r *runResult) Fields() []fieldpath.Path {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.order)
}

func (r *runResult) Done(fn func(Result)) {
	r.mu.Lock()
	if !r.settled {
		r.doneHooks = append(r.doneHooks, fn)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	fn(r)
}
