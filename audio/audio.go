// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Encoding identifies how sample amplitudes are stored in the container.
type Encoding int

const (
	// EncodingInteger is signed integer PCM.
	EncodingInteger Encoding = iota
	// EncodingFloat is IEEE 754 floating-point PCM.
	EncodingFloat
)

func (e Encoding) String() string {
	switch e {
	case EncodingInteger:
		return "integer"
	case EncodingFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Format describes a decoded PCM stream. It is read once from the container
// header and never mutated afterwards.
type Format struct {
	// SampleRate of the PCM stream in Hz.
	SampleRate int
	// Channels count (1=mono, 2=stereo).
	Channels int
	// BitDepth is the number of bits per sample as declared by the container.
	BitDepth int
	// Encoding of the sample amplitudes.
	Encoding Encoding
}

// Validate reports whether the format can enter the conversion pipeline.
// Only integer PCM with a bit depth in (0,32] and one or two channels is
// accepted.
func (f Format) Validate() error {
	if f.Encoding != EncodingInteger {
		return ErrUnsupportedEncoding
	}
	if f.BitDepth <= 0 || f.BitDepth > 32 {
		return ErrUnsupportedBitDepth
	}
	if f.Channels != 1 && f.Channels != 2 {
		return ErrUnsupportedChannelLayout
	}
	return nil
}

// Width returns the native signed integer width (8, 16 or 32 bits) that
// holds a sample of this format. Bit depths are bucketed: (0,8] use 8 bits,
// (8,16] use 16 bits and (16,32] use 32 bits. The same bucket selects the
// serialized C type, keeping decode and output widths consistent.
func (f Format) Width() (int, error) {
	if f.BitDepth <= 0 || f.BitDepth > 32 {
		return 0, ErrUnsupportedBitDepth
	}

	switch {
	case f.BitDepth <= 8:
		return 8, nil
	case f.BitDepth <= 16:
		return 16, nil
	default:
		return 32, nil
	}
}

// Buffer holds a fully decoded sample sequence. Samples are interleaved when
// Format.Channels > 1; after DownmixMono the length equals the frame count.
// A Buffer is produced once by a decoder and consumed once by the serializer.
type Buffer struct {
	Format Format
	Data   []int
}

// Frames returns the number of time-steps held by the buffer.
func (b *Buffer) Frames() int {
	if b.Format.Channels <= 0 {
		return 0
	}
	return len(b.Data) / b.Format.Channels
}

// Decoder reads a complete audio stream into a Buffer. Decoding is not
// incremental: the whole file is held in memory for the duration of one
// conversion.
type Decoder interface {
	Decode(r io.Reader) (*Buffer, error)
}

// Registry maps format keys (e.g. "wav", "mp3", "ogg") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
