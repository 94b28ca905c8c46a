// Package display decides when accumulated validation errors and warnings
// become visible to the user.
//
// Validation state and display state are deliberately separate: a field may
// carry errors long before the user should be confronted with them. The
// package evaluates an enumerated Strategy against a point-in-time Input and
// returns a plain boolean; it holds no state, performs no side effects, and
// always yields the same output for the same input, which keeps it trivially
// property-testable.
//
// # Strategies
//
//   - StrategyImmediate: show as soon as a rule has run for the field.
//   - StrategyOnTouch: show after the field was touched; an explicit touch
//     signal, when supplied, fully overrides the tested fallback.
//   - StrategyOnSubmit: show only once the form was submitted.
//   - StrategyOnDirty: show once the value differs from its initial state.
//   - StrategyAlways: show whenever errors exist, even on pristine fields.
//   - StrategyManual: never auto-show; the host reveals errors explicitly.
//
// A submitted form is treated as such for the rest of the session, so every
// strategy except StrategyManual keeps showing errors after submission
// regardless of later touch or dirty transitions.
//
// # Usage
//
//	show := display.ShowErrors(display.StrategyOnTouch, display.Input{
//		HasErrors: true,
//		Tested:    true,
//		Touched:   &touched,
//	})
//
// Ref wraps a strategy in an atomically swappable holder for hosts that
// change the display policy at runtime.
package display
