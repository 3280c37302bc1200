package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/pcm2c/audio"
	"github.com/ik5/pcm2c/utils"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type Decoder struct{}

// Decode decompresses an Ogg Vorbis stream into a 16-bit integer buffer.
// Vorbis samples are normalized floats, they are scaled to the int16 range
// before entering the pipeline.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedOgg, err)
	}

	return decodeAll(dec)
}

func decodeAll(dec oggReader) (*audio.Buffer, error) {
	format := audio.Format{
		SampleRate: dec.SampleRate(),
		Channels:   dec.Channels(),
		BitDepth:   16,
		Encoding:   audio.EncodingInteger,
	}

	if err := format.Validate(); err != nil {
		return nil, err
	}

	var samples []int
	buf := make([]float32, 4096)

	for {
		n, err := dec.Read(buf)
		for i := 0; i < n; i++ {
			samples = append(samples, int(utils.Float32ToInt16(buf[i])))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedOgg, err)
		}
		if n == 0 {
			break
		}
	}

	return &audio.Buffer{Format: format, Data: samples}, nil
}
