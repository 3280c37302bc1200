// SPDX-License-Identifier: EPL-2.0

// Package synth generates deterministic test signals for fixtures and
// tests.
package synth

import (
	"math"

	"github.com/ik5/pcm2c/audio"
)

// amplitude returns the full-scale amplitude for a bucketed sample width.
func amplitude(width int) float64 {
	switch width {
	case 8:
		return 127.0
	case 16:
		return 32767.0
	default:
		return 2147483647.0
	}
}

// Sine generates an interleaved sine wave at the given pitch, scaled to the
// full range of the format's bit-depth bucket. Every channel carries the
// same signal.
func Sine(format audio.Format, pitch float64, frames int) ([]int, error) {
	width, err := format.Width()
	if err != nil {
		return nil, err
	}

	amp := amplitude(width)
	data := make([]int, 0, frames*format.Channels)

	for t := 0; t < frames; t++ {
		v := int(amp * math.Sin(2*math.Pi*pitch*float64(t)/float64(format.SampleRate)))
		for c := 0; c < format.Channels; c++ {
			data = append(data, v)
		}
	}

	return data, nil
}

// SineFloatBits generates the same sine wave as normalized float32 values
// and returns their raw IEEE 754 bit patterns, ready to be written into a
// float WAV data chunk.
func SineFloatBits(sampleRate, channels int, pitch float64, frames int) []int {
	data := make([]int, 0, frames*channels)

	for t := 0; t < frames; t++ {
		v := float32(math.Sin(2 * math.Pi * pitch * float64(t) / float64(sampleRate)))
		bits := int(int32(math.Float32bits(v)))
		for c := 0; c < channels; c++ {
			data = append(data, bits)
		}
	}

	return data
}
