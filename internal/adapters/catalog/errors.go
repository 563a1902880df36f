package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrLoad   = errors.New("catalog load failed")
	ErrDecode = errors.New("catalog decode failed")
)
