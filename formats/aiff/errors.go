package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrMalformedAiff indicates required chunks are missing or truncated
	ErrMalformedAiff = errors.New("malformed AIFF container")
)
