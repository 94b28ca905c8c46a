package formstate

import (
	"slices"
	"sync"

	"github.com/dmitrymomot/formstate/pkg/display"
	"github.com/dmitrymomot/formstate/pkg/fieldpath"
	"github.com/dmitrymomot/formstate/pkg/suite"
)

// FieldState tracks one field's interaction and validation state. Instances
// are created lazily on first access and live for the lifetime of the owning
// form. All methods are safe for concurrent use.
type FieldState struct {
	form *Form
	path fieldpath.Path

	mu       sync.RWMutex
	touched  bool
	dirty    bool
	tested   bool
	pending  bool
	errors   []string
	warnings []string
}

func newFieldState(form *Form, path fieldpath.Path) *FieldState {
	return &FieldState{form: form, path: path}
}

// Path returns the field's canonical path.
func (s *FieldState) Path() fieldpath.Path { return s.path }

// Touched reports whether the field was blurred or explicitly touched.
func (s *FieldState) Touched() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.touched
}

// Dirty reports whether the value differs from the field's initial value.
func (s *FieldState) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// Tested reports whether the suite has run at least one rule for the field.
func (s *FieldState) Tested() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tested
}

// Pending reports whether an asynchronous rule for the field is in flight.
func (s *FieldState) Pending() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending
}

// Errors returns the current error messages. While a re-validation is
// pending this is the previous settled result, not a transient empty list,
// so messages do not flicker during re-validation.
func (s *FieldState) Errors() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.errors)
}

// Warnings mirrors Errors for warning-class messages.
func (s *FieldState) Warnings() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.warnings)
}

// HasErrors reports whether the current (stable) result carries errors.
func (s *FieldState) HasErrors() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.errors) > 0
}

// HasWarnings reports whether the current result carries warnings.
func (s *FieldState) HasWarnings() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.warnings) > 0
}

// ShowErrors reports whether the field's errors should currently be visible
// under the form's display strategy and submission state.
func (s *FieldState) ShowErrors() bool {
	return display.ShowErrors(s.form.strategy(), s.displayInput())
}

// ShowWarnings reports whether the field's warnings should currently be
// visible.
func (s *FieldState) ShowWarnings() bool {
	return display.ShowWarnings(s.form.strategy(), s.displayInput())
}

func (s *FieldState) displayInput() display.Input {
	s.mu.RLock()
	touched := s.touched
	in := display.Input{
		HasErrors:   len(s.errors) > 0,
		HasWarnings: len(s.warnings) > 0,
		Tested:      s.tested,
		Dirty:       s.dirty,
		Touched:     &touched,
	}
	s.mu.RUnlock()
	in.Submitted = s.form.Submitted()
	return in
}

// touch marks the field as touched. Idempotent: the first call reports a
// transition, repeats are no-ops and trigger nothing downstream.
func (s *FieldState) touch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.touched {
		return false
	}
	s.touched = true
	return true
}

func (s *FieldState) setDirty(dirty bool) {
	s.mu.Lock()
	s.dirty = dirty
	s.mu.Unlock()
}

// applyResult folds a suite result into the tracker. A pending result keeps
// the previous settled message lists; a settled one replaces them.
func (s *FieldState) applyResult(res suite.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if res.IsTested(s.path) {
		s.tested = true
	}
	if res.IsPending(s.path) {
		s.pending = true
		return
	}
	s.pending = false
	s.errors = res.Errors(s.path)
	s.warnings = res.Warnings(s.path)
}

// reset clears interaction and validation state, used on form reset.
func (s *FieldState) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched = false
	s.dirty = false
	s.tested = false
	s.pending = false
	s.errors = nil
	s.warnings = nil
}
