package serviceerrs

import (
	"errors"
	"fmt"
)

// ErrValidation is the common ancestor of every caller error. Anything that
// unwraps to it maps to a client-error response and is never retried.
var ErrValidation = errors.New("validation failed")

var (
	ErrInvalidAmount          = fmt.Errorf("%w: invalid point amount", ErrValidation)
	ErrInvalidDenomination    = fmt.Errorf("%w: amount must be a positive multiple of 100", ErrValidation)
	ErrNonPositiveAmount      = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrNegativeBalance        = fmt.Errorf("%w: balance must not be negative", ErrValidation)
	ErrBalanceCeilingExceeded = fmt.Errorf("%w: balance ceiling exceeded", ErrValidation)
	ErrInsufficientBalance    = fmt.Errorf("%w: insufficient balance", ErrValidation)
)

var (
	ErrLockTimeout = errors.New("timed out waiting for user lock")
	ErrUnexpected  = errors.New("unexpected error")
)

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
