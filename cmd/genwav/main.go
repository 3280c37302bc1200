// SPDX-License-Identifier: EPL-2.0

// Command genwav generates sine-wave WAV files for testing pcm2c.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ik5/pcm2c/audio"
	"github.com/ik5/pcm2c/formats/wav"
	"github.com/ik5/pcm2c/internal/synth"
)

var (
	sampleRate   int
	channels     int
	bits         int
	pitch        float64
	duration     float64
	sampleFormat string
)

func init() {
	flag.IntVar(&sampleRate, "s", 44100, "Sample rate in Hz")
	flag.IntVar(&channels, "c", 1, "Number of channels")
	flag.IntVar(&bits, "b", 16, "Bits per sample")
	flag.Float64Var(&pitch, "p", 440, "Pitch in Hz")
	flag.Float64Var(&duration, "d", 1.0, "Duration in seconds")
	flag.StringVar(&sampleFormat, "F", "int", "Sample format: int or float")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	output := flag.Arg(0)
	if output == "" {
		return errors.New("output file is required")
	}

	frames := int(float64(sampleRate) * duration)

	var (
		format audio.Format
		data   []int
		err    error
	)

	switch sampleFormat {
	case "int":
		format = audio.Format{
			SampleRate: sampleRate,
			Channels:   channels,
			BitDepth:   bits,
			Encoding:   audio.EncodingInteger,
		}
		data, err = synth.Sine(format, pitch, frames)
		if err != nil {
			return err
		}
	case "float":
		// Float WAV is always written as 32-bit IEEE samples; the data
		// carries the raw bit patterns.
		format = audio.Format{
			SampleRate: sampleRate,
			Channels:   channels,
			BitDepth:   32,
			Encoding:   audio.EncodingFloat,
		}
		data = synth.SineFloatBits(sampleRate, channels, pitch, frames)
	default:
		return fmt.Errorf("unknown sample format %q", sampleFormat)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()

	if err := wav.Write(f, format, data); err != nil {
		return err
	}

	fmt.Printf("Generated %s (%d frames)\n", output, frames)

	return nil
}
