package pattern

import "errors"

// Sentinel kinds for configuration errors.
var (
	ErrInvalidConfig = errors.New("invalid rotation config")
)
