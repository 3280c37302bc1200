// SPDX-License-Identifier: EPL-2.0

// Package pcm2c converts audio files into C source-code arrays for
// embedding in firmware.
//
// The pipeline has two halves: decoders turn a container (WAV, AIFF, MP3,
// Ogg Vorbis) into a flat buffer of signed integer samples, and the
// serializer renders that buffer as a deterministic C array with a
// size-defining #define. Stereo input is downmixed to mono by averaging;
// anything beyond two channels is rejected.
//
// # Quick Start
//
// The simplest way to convert a file is Convert:
//
//	f, _ := os.Open("beep.wav")
//	out, err := pcm2c.Convert(f, "wav", carray.Options{
//	    ArrayName:  "beep",
//	    SourceName: "beep.wav",
//	    MaxSamples: 220000,
//	})
//	if err != nil {
//	    // handle error
//	}
//	err = pcm2c.WriteOutput("beep.c", out)
//
// Producing something like:
//
//	#define BEEP_SAMPLE_NO 3
//
//	const int16_t beep[] = {
//		 100, -100, 200,
//	};
//
// # Pipeline Stages
//
// For more control, run the stages separately:
//
//	buf, err := wav.Decoder{}.Decode(f)   // decode + validate
//	mono, err := audio.DownmixMono(buf)   // stereo -> mono
//	out, err := carray.Render(mono, opts) // serialize
//
// Each stage returns a definite result or error; the first failure aborts
// the conversion and no partial output is produced.
//
// # Supported Inputs
//
// The package decodes the following formats through DefaultRegistry:
//   - WAV (integer PCM, 1-32 bit) via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Compressed formats decode to 16-bit samples; WAV and AIFF keep the
// source bit depth, and the emitted C element type follows it (int8_t,
// int16_t or int32_t).
//
// # Output Size
//
// Embedded targets have little flash to spare. Options.MaxSamples bounds
// the decoded frame count; conversions over the bound fail with a
// carray.SampleCountError carrying both the actual count and the limit.
// The command-line tool defaults to 220000 samples, roughly five seconds
// of 16-bit 44.1 kHz audio.
package pcm2c
