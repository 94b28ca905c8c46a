package suite

import "errors"

var (
	// ErrRulePanicked indicates a rule body panicked during evaluation. The
	// adapter converts the panic into a field-scoped error result carrying
	// this sentinel's message prefix.
	ErrRulePanicked = errors.New("suite: rule execution panicked")

	// ErrSuiteNil indicates an adapter was constructed without a suite.
	ErrSuiteNil = errors.New("suite: adapter requires a suite")
)
