package fairness

import "errors"

// Errors returned by the commitment protocol.
var (
	ErrInvalidRange           = errors.New("range must be at least 1")
	ErrContributionOutOfRange = errors.New("contribution out of range")
	ErrAlreadyCombined        = errors.New("commitment already combined")
	ErrNotCombined            = errors.New("commitment not combined yet")
	ErrInvalidKey             = errors.New("invalid secret key")
	ErrVerificationFailed     = errors.New("commitment verification failed")
)
