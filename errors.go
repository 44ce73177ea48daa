package schedmode

import "errors"

// Sentinel errors for the schedmode package.
// Use errors.Is to check: errors.Is(err, schedmode.ErrNegativeStep)
var (
	ErrNegativeStep   = errors.New("schedmode: negative learning step")
	ErrInvalidMode    = errors.New("schedmode: invalid mode")
	ErrMissingStep    = errors.New("schedmode: learning mode without step")
	ErrUnexpectedStep = errors.New("schedmode: review mode with step")
)
