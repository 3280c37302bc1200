package mp3

import "errors"

var (
	// ErrMalformedMP3 indicates the stream could not be parsed as MP3.
	ErrMalformedMP3 = errors.New("malformed MP3 stream")
)
