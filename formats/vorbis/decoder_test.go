package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/pcm2c/audio"
)

// mockOggReader simulates the oggvorbis.Reader for testing
type mockOggReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	readErr    error
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(buf []float32) (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func TestDecodeAll(t *testing.T) {
	t.Parallel()

	mock := &mockOggReader{
		sampleRate: 48000,
		channels:   2,
		samples:    []float32{0, 0.5, -0.5, 1.0, -1.0, 2.0},
	}

	buf, err := decodeAll(mock)
	if err != nil {
		t.Fatalf("decodeAll() error = %v", err)
	}

	if buf.Format.SampleRate != 48000 || buf.Format.Channels != 2 || buf.Format.BitDepth != 16 {
		t.Errorf("format = %+v, want 48000/2/16", buf.Format)
	}

	// 0.5 scales to 16383, full scale clamps at +/-32767.
	want := []int{0, 16383, -16383, 32767, -32767, 32767}
	if len(buf.Data) != len(want) {
		t.Fatalf("len(Data) = %d, want %d", len(buf.Data), len(want))
	}

	for i, v := range want {
		if buf.Data[i] != v {
			t.Errorf("buf.Data[%d] = %d, want %d", i, buf.Data[i], v)
		}
	}
}

func TestDecodeAll_TooManyChannels(t *testing.T) {
	t.Parallel()

	mock := &mockOggReader{sampleRate: 48000, channels: 6, samples: make([]float32, 12)}

	if _, err := decodeAll(mock); !errors.Is(err, audio.ErrUnsupportedChannelLayout) {
		t.Errorf("decodeAll() error = %v, want audio.ErrUnsupportedChannelLayout", err)
	}
}

func TestDecodeAll_ReadError(t *testing.T) {
	t.Parallel()

	mock := &mockOggReader{
		sampleRate: 44100,
		channels:   1,
		readErr:    io.ErrUnexpectedEOF,
	}

	if _, err := decodeAll(mock); !errors.Is(err, ErrMalformedOgg) {
		t.Errorf("decodeAll() error = %v, want ErrMalformedOgg", err)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte("definitely not an ogg stream")))

	if !errors.Is(err, ErrMalformedOgg) {
		t.Errorf("Decode() error = %v, want ErrMalformedOgg", err)
	}
}
