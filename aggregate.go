package formstate

import (
	"github.com/dmitrymomot/formstate/pkg/fieldpath"
	"github.com/dmitrymomot/formstate/pkg/schemacheck"
)

// AggregateState is the read model composed from every tracked field and the
// submission lifecycle. It is recomputed when a constituent changes and
// memoized between changes.
type AggregateState struct {
	// Valid reports that no tracked field, the root form included, currently
	// has errors. Schema issues stay out of validity unless the form was
	// built with WithSchemaIssuesCounted.
	Valid bool

	// Pending reports that at least one field has an unresolved async rule.
	Pending bool

	// Submitted is the monotonic submission flag.
	Submitted bool

	// Submitting is true only while an in-flight submit (validation plus
	// host handler) has not settled.
	Submitting bool

	// ErrorCount sums error-list lengths across fields.
	ErrorCount int

	// FirstInvalidField is the first field in declared order carrying
	// errors; when only the schema check failed it falls back to the first
	// schema issue's path. Zero when the form is clean.
	FirstInvalidField fieldpath.Path

	// Errors and Warnings map field paths to their current message lists.
	Errors   map[fieldpath.Path][]string
	Warnings map[fieldpath.Path][]string

	// Schema is the structural cross-check outcome of the last submit.
	Schema schemacheck.Result
}

// Aggregate returns the current aggregate state. The value is memoized: it
// recomputes exactly when some constituent changed since the last read.
func (f *Form) Aggregate() AggregateState {
	return f.aggregate.Get()
}

// Valid is a convenience shortcut for Aggregate().Valid.
func (f *Form) Valid() bool { return f.Aggregate().Valid }

// Pending is a convenience shortcut for Aggregate().Pending.
func (f *Form) Pending() bool { return f.Aggregate().Pending }

func (f *Form) computeAggregate() AggregateState {
	f.mu.Lock()
	defer f.mu.Unlock()

	agg := AggregateState{
		Valid:      true,
		Submitted:  f.submitted,
		Submitting: f.submitting,
		Schema:     f.schema,
		Errors:     make(map[fieldpath.Path][]string),
		Warnings:   make(map[fieldpath.Path][]string),
	}

	for _, path := range f.orderedFieldsLocked() {
		fs := f.fields[path]
		if fs.Pending() {
			agg.Pending = true
		}
		if errs := fs.Errors(); len(errs) > 0 {
			agg.Valid = false
			agg.ErrorCount += len(errs)
			agg.Errors[path] = errs
			if agg.FirstInvalidField.IsZero() {
				agg.FirstInvalidField = path
			}
		}
		if warns := fs.Warnings(); len(warns) > 0 {
			agg.Warnings[path] = warns
		}
	}

	if f.schema.HasRun && !f.schema.Success {
		if f.cfg.countSchemaIssues {
			agg.Valid = false
			agg.ErrorCount += len(f.schema.Issues)
		}
		if agg.FirstInvalidField.IsZero() && len(f.schema.Issues) > 0 {
			agg.FirstInvalidField = f.schema.Issues[0].Path
		}
	}

	return agg
}
