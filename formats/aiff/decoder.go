package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/pcm2c/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

// Decode parses an AIFF container and returns the complete sample sequence.
// AIFF stores big-endian signed integers, go-audio already presents them as
// plain ints so no recentering is needed at any depth.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio requires an io.ReadSeeker.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = &readSeeker{data: data}
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.Format() == nil {
		return nil, ErrMalformedAiff
	}

	format := audio.Format{
		SampleRate: dec.Format().SampleRate,
		Channels:   dec.Format().NumChannels,
		BitDepth:   int(dec.BitDepth),
		Encoding:   audio.EncodingInteger,
	}

	if err := format.Validate(); err != nil {
		return nil, err
	}

	buf, err := decodeAll(dec, format)
	if err != nil {
		return nil, err
	}

	return buf, nil
}

func decodeAll(dec aiffReader, format audio.Format) (*audio.Buffer, error) {
	var samples []int

	intBuf := &goaudio.IntBuffer{
		Data:   make([]int, 4096),
		Format: dec.Format(),
	}

	for {
		n, err := dec.PCMBuffer(intBuf)
		if n > 0 {
			samples = append(samples, intBuf.Data[:n]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedAiff, err)
		}
		if n == 0 {
			break
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
