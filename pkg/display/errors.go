package display

import "errors"

// ErrUnknownStrategy indicates a configuration string that does not name a
// known display strategy.
var ErrUnknownStrategy = errors.New("display: unknown strategy")
