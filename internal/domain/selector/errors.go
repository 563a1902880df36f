package selector

import "errors"

// Sentinel kinds for selection errors.
var (
	ErrEmptyPool = errors.New("empty candidate pool")
)
