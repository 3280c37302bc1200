package vorbis

import "errors"

var (
	// ErrMalformedOgg indicates the stream could not be parsed as Ogg Vorbis.
	ErrMalformedOgg = errors.New("malformed Ogg Vorbis stream")
)
