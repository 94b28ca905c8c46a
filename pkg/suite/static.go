package suite

import (
	"slices"

	"github.com/dmitrymomot/formstate/pkg/fieldpath"
)

// StaticResult is an immutable, already settled Result. It backs the
// adapter's panic conversion and is convenient as a test double.
type StaticResult struct {
	errors   map[fieldpath.Path][]string
	warnings map[fieldpath.Path][]string
	order    []fieldpath.Path
}

// NewStaticResult builds a settled result from fixed error and warning maps.
// Every listed field counts as tested; nothing is pending.
func NewStaticResult(errors, warnings map[fieldpath.Path][]string) *StaticResult {
	res := &StaticResult{
		errors:   make(map[fieldpath.Path][]string, len(errors)),
		warnings: make(map[fieldpath.Path][]string, len(warnings)),
	}
	for field, msgs := range errors {
		res.errors[field] = slices.Clone(msgs)
		res.track(field)
	}
	for field, msgs := range warnings {
		res.warnings[field] = slices.Clone(msgs)
		res.track(field)
	}
	slices.Sort(res.order)
	return res
}

func (r *StaticResult) track(field fieldpath.Path) {
	if !slices.Contains(r.order, field) {
		r.order = append(r.order, field)
	}
}

func (r *StaticResult) HasErrors(field ...fieldpath.Path) bool {
	if len(field) == 0 {
		return len(r.errors) > 0
	}
	return len(r.errors[field[0]]) > 0
}

func (r *StaticResult) Errors(field fieldpath.Path) []string {
	return slices.Clone(r.errors[field])
}

func (r *StaticResult) HasWarnings(field ...fieldpath.Path) bool {
	if len(field) == 0 {
		return len(r.warnings) > 0
	}
	return len(r.warnings[field[0]]) > 0
}

func (r *StaticResult) Warnings(field fieldpath.Path) []string {
	return slices.Clone(r.warnings[field])
}

func (r *StaticResult) IsTested(field fieldpath.Path) bool {
	return slices.Contains(r.order, field)
}

func (r *StaticResult) IsPending(...fieldpath.Path) bool { return false }

func (r *StaticResult) IsValid(field ...fieldpath.Path) bool {
	if len(field) == 0 {
		return len(r.errors) == 0
	}
	return len(r.errors[field[0]]) == 0
}

func (r *StaticResult) ErrorsByField() map[fieldpath.Path][]string {
	out := make(map[fieldpath.Path][]string, len(r.errors))
	for field, msgs := range r.errors {
		out[field] = slices.Clone(msgs)
	}
	return out
}

func (r *StaticResult) Fields() []fieldpath.Path { return slices.Clone(r.order) }

// Done fires immediately; a static result is settled by construction.
func (r *StaticResult) Done(fn func(Result)) { fn(r) }
