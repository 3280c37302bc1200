// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/pcm2c/audio"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type Decoder struct{}

// Decode decompresses an MP3 stream into a 16-bit integer buffer. go-mp3
// always emits interleaved stereo, so the resulting format is stereo as
// well; the downstream downmix reduces it to mono.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMP3, err)
	}

	return decodeAll(dec)
}

func decodeAll(dec mp3Reader) (*audio.Buffer, error) {
	// go-mp3 exposes the decoded stream as 16-bit little-endian PCM bytes.
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMP3, err)
	}

	samples := make([]int, len(data)/2)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(data[2*i : 2*i+2])))
	}

	return &audio.Buffer{
		Format: audio.Format{
			SampleRate: dec.SampleRate(),
			Channels:   2,
			BitDepth:   16,
			Encoding:   audio.EncodingInteger,
		},
		Data: samples,
	}, nil
}
