package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a RIFF/WAVE container.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrMalformedWav indicates required chunks are missing, truncated or
	// inconsistent with the stream length.
	ErrMalformedWav = errors.New("malformed WAV container")

	// ErrUnsupportedWavLayout indicates an audio format tag this package
	// does not understand.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
)
