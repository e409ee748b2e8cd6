package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrEmptyToken    = errors.New("empty token")
	ErrChainBusy     = errors.New("token chain already in use")
)
