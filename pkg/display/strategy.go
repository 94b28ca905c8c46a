package display

import (
	"fmt"
	"sync/atomic"
)

// Strategy is the policy deciding when errors and warnings are revealed.
type Strategy string

const (
	StrategyImmediate Strategy = "immediate"
	StrategyOnTouch   Strategy = "on-touch"
	StrategyOnSubmit  Strategy = "on-submit"
	StrategyOnDirty   Strategy = "on-dirty"
	StrategyAlways    Strategy = "always"
	StrategyManual    Strategy = "manual"
)

// DefaultStrategy is used when a form is constructed without an explicit
// display policy.
const DefaultStrategy = StrategyOnTouch

// ParseStrategy converts a configuration string into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyImmediate, StrategyOnTouch, StrategyOnSubmit,
		StrategyOnDirty, StrategyAlways, StrategyManual:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Valid reports whether the strategy is one of the known policies.
func (s Strategy) Valid() bool {
	_, err := ParseStrategy(string(s))
	return err == nil
}

func (s Strategy) String() string { return string(s) }

// Input is the point-in-time field and form state a strategy is evaluated
// against.
type Input struct {
	HasErrors   bool
	HasWarnings bool

	// Tested reports whether the suite has run at least one rule for the
	// field in the current session.
	Tested bool

	// Dirty reports whether the value differs from the field's initial value.
	Dirty bool

	// Submitted is the form-wide monotonic submission flag.
	Submitted bool

	// Touched is the explicit touch signal. When nil, no signal was supplied
	// and on-touch falls back to Tested. When non-nil it overrides Tested
	// entirely, in either direction.
	Touched *bool
}

// ShowErrors reports whether the field's errors should currently be visible.
func ShowErrors(s Strategy, in Input) bool {
	return show(s, in, in.HasErrors)
}

// ShowWarnings reports whether the field's warnings should currently be
// visible. Warnings follow the same table as errors but are independent of
// validity; a valid field may still show warnings.
func ShowWarnings(s Strategy, in Input) bool {
	return show(s, in, in.HasWarnings)
}

func show(s Strategy, in Input, has bool) bool {
	if s == StrategyManual {
		return false
	}
	if !has {
		return false
	}
	// Submission is monotonic; once submitted, every automatic strategy
	// keeps the messages visible.
	if in.Submitted {
		return true
	}

	switch s {
	case StrategyImmediate:
		return in.Tested
	case StrategyOnTouch:
		if in.Touched != nil {
			return *in.Touched
		}
		return in.Tested
	case StrategyOnSubmit:
		return false
	case StrategyOnDirty:
		return in.Dirty
	case StrategyAlways:
		return true
	default:
		return false
	}
}

// Ref is a live-updatable strategy holder. The zero value yields
// DefaultStrategy. Safe for concurrent use.
type Ref struct {
	v atomic.Value
}

// NewRef creates a holder with the given initial strategy.
func NewRef(s Strategy) *Ref {
	r := &Ref{}
	r.Store(s)
	return r
}

// Load returns the current strategy.
func (r *Ref) Load() Strategy {
	if v, ok := r.v.Load().(Strategy); ok {
		return v
	}
	return DefaultStrategy
}

// Store swaps the strategy. Unknown values are ignored so a bad runtime
// update cannot disable display entirely.
func (r *Ref) Store(s Strategy) {
	if s.Valid() {
		r.v.Store(s)
	}
}
