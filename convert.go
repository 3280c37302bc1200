package pcm2c

import (
	"fmt"
	"io"

	"github.com/ik5/pcm2c/audio"
	"github.com/ik5/pcm2c/carray"
	"github.com/ik5/pcm2c/formats/aiff"
	"github.com/ik5/pcm2c/formats/mp3"
	"github.com/ik5/pcm2c/formats/vorbis"
	"github.com/ik5/pcm2c/formats/wav"
)

// DefaultRegistry returns a registry holding every built-in decoder, keyed
// by the file extensions the command-line tool recognizes.
func DefaultRegistry() *audio.Registry {
	registry := audio.NewRegistry()
	registry.Register("wav", wav.Decoder{})
	registry.Register("aif", aiff.Decoder{})
	registry.Register("aiff", aiff.Decoder{})
	registry.Register("mp3", mp3.Decoder{})
	registry.Register("ogg", vorbis.Decoder{})

	return registry
}

// Convert is a high-level convenience function running the whole pipeline:
// decode the named format from r, downmix to mono and render the C array.
//
// The three stages are also usable separately when the caller wants to
// inspect the decoded format or log before rendering:
//
//	buf, _ := wav.Decoder{}.Decode(r)
//	mono, _ := audio.DownmixMono(buf)
//	out, _ := carray.Render(mono, opts)
//
// The first failing stage aborts the pipeline; no partial output is ever
// returned.
func Convert(r io.Reader, format string, opts carray.Options) (*carray.Output, error) {
	decoder, ok := DefaultRegistry().Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	buf, err := decoder.Decode(r)
	if err != nil {
		return nil, err
	}

	mono, err := audio.DownmixMono(buf)
	if err != nil {
		return nil, err
	}

	return carray.Render(mono, opts)
}
