package engine

import "errors"

// Errors returned by document operations.
var (
	// ErrRangeInvalid indicates a style range outside the document bounds or
	// with end before start.
	ErrRangeInvalid = errors.New("invalid range")

	// ErrUnknownStyle indicates a style axis name the document does not track.
	ErrUnknownStyle = errors.New("unknown style axis")

	// ErrStyleExists indicates a style axis name is already registered.
	ErrStyleExists = errors.New("style axis already exists")

	// ErrStyleKindMismatch indicates an on/off operation on a valued axis or
	// the reverse.
	ErrStyleKindMismatch = errors.New("style axis kind mismatch")
)
