// Package suite defines the rule-suite contract the form core validates
// against, an adapter that hardens any implementation for pipeline use, and
// a built-in rule engine for suites authored in Go.
//
// A Suite evaluates named field rules against a form data snapshot and
// returns a Result: per-field error and warning message lists plus the
// tested/pending flags the display layer needs. Evaluation may be scoped to
// a single field ("only run rules for this field") by passing a non-zero
// path; the zero path runs the full rule set, which is what submission uses.
//
// # Adapter
//
// Adapter wraps a Suite for consumption by the validation pipeline:
//
//   - The scope argument is forwarded on every call, scoped or not. Engines
//     track their run state against it, and conditionally omitting it
//     corrupts cross-run bookkeeping.
//   - A panic inside a rule body becomes a field-scoped error result instead
//     of unwinding the pipeline; one broken rule cannot take the form down.
//   - The caller's context reaches every asynchronous rule body, so a
//     superseded run's in-flight work is abandoned rather than ignored.
//
// # Built-in engine
//
// New builds a suite from a callback that declares its rules through a
// Runner, in the style of declarative validation suites:
//
//	s := suite.New("signup", func(r *suite.Runner) {
//		username := r.String("userId")
//		r.Test("userId", "userId is required", func() bool {
//			return username != ""
//		})
//		r.TestAsync("userId", "userId is already taken", func(ctx context.Context) error {
//			return backend.CheckAvailable(ctx, username)
//		})
//	})
//
// Scoped runs execute only the matching field's rules and carry the previous
// run's results forward for every other field, mirroring how incremental
// rule engines keep untouched fields stable across runs. Results settle once
// all asynchronous rules resolve; Done registers completion hooks that fire
// immediately on already-settled results.
package suite
