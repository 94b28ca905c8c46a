// Package formstate binds a declarative rule suite to a two-way-bound form
// model and decides which validation messages are visible when.
//
// The package is an in-process state machine, deliberately free of any DOM,
// component-tree, or transport dependency. Presentation layers consume its
// read-only state (per-field error visibility, form-wide validity, busy and
// pending flags) through plain getters and change subscriptions; how those
// values become ARIA attributes or inline messages is their concern.
//
// # Architecture
//
// Four cooperating pieces sit behind the Form facade:
//
//   - The validation pipeline reacts to model edits: it debounces, runs the
//     rule suite scoped to the changed field, cancels superseded in-flight
//     runs (last-write-wins), and re-validates configured dependent fields
//     one hop deep.
//   - Per-field trackers (FieldState) hold touched/dirty/pending/tested
//     state and the latest stable error and warning lists. While a
//     re-validation is pending they keep serving the previous settled
//     messages, so error text never flickers.
//   - The display engine (pkg/display) is a pure function from strategy and
//     field state to a show/hide decision. Submission is monotonic: once a
//     form was submitted, errors stay visible for the session.
//   - The aggregator composes every tracker into one AggregateState: overall
//     validity, pending flag, error count, first invalid field, and the
//     optional structural schema cross-check slice.
//
// Rule execution itself is pluggable behind the pkg/suite contract; the
// built-in engine covers suites authored in Go, and any engine with
// compatible per-field semantics can be adapted.
//
// # Usage
//
//	signup := suite.New("signup", func(r *suite.Runner) {
//		r.Test("userId", "userId is required", func() bool {
//			return r.String("userId") != ""
//		})
//		r.Test("passwords.confirmPassword", "passwords do not match", func() bool {
//			return r.String("passwords.password") == r.String("passwords.confirmPassword")
//		})
//	})
//
//	form := formstate.MustNew(formdata.Empty(), signup,
//		formstate.WithErrorStrategy(display.StrategyOnTouch),
//		formstate.WithDependencies(formstate.NewDependencyConfig().
//			Bidirectional("passwords.password", "passwords.confirmPassword")),
//	)
//	defer form.Close()
//
//	_ = form.SetField("userId", "alice")
//	form.Touch("userId")
//	if form.Field("userId").ShowErrors() {
//		// render form.Field("userId").Errors()
//	}
//	err := form.Submit(ctx)
//
// # Error Handling
//
// Pipeline failures are contained and converted into state: a panicking rule
// body becomes a field-scoped error, an async rule's rejection becomes that
// field's message, and cancellations of superseded runs are swallowed as
// expected control flow. The only deliberately fatal paths are construction
// errors and, in strict mode, field path resolution failures — programmer
// mistakes meant to surface during development.
package formstate
