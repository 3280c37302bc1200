// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/pcm2c/audio"
)

// WAVE fmt-chunk audio format tags.
const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

type Decoder struct{}

// Decode parses a RIFF/WAVE container and returns the complete sample
// sequence as signed integers. The format is validated before any sample is
// read: float-encoded streams, bit depths outside (0,32] and channel counts
// other than 1 or 2 are rejected up front.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio requires an io.ReadSeeker, buffer the stream when the
		// caller hands us a plain reader.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = &readSeeker{data: data}
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	format := audio.Format{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
		Encoding:   audio.EncodingInteger,
	}

	switch dec.WavAudioFormat {
	case formatPCM:
	case formatIEEEFloat:
		format.Encoding = audio.EncodingFloat
	default:
		return nil, ErrUnsupportedWavLayout
	}

	if err := format.Validate(); err != nil {
		return nil, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedWav, err)
	}

	samples := buf.Data

	// 8-bit WAV stores samples as offset binary (0..255); recenter them to
	// the signed range the rest of the pipeline expects.
	if format.BitDepth <= 8 {
		for i, s := range samples {
			samples[i] = s - 128
		}
	}

	return &audio.Buffer{Format: format, Data: samples}, nil
}

// readSeeker implements io.ReadSeeker for in-memory data
type readSeeker struct {
	data   []byte
	offset int64
}

func (rs *readSeeker) Read(p []byte) (n int, err error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n = copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *readSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = rs.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(rs.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	rs.offset = newOffset
	return newOffset, nil
}
