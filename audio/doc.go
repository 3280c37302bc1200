// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level primitives of the conversion
// pipeline.
//
// This package contains the building blocks shared by every decoder and by
// the serializer:
//   - Format describing a PCM stream (rate, channels, bit depth, encoding)
//   - Buffer holding a fully decoded signed sample sequence
//   - DownmixMono for stereo to mono channel reduction
//   - Decoder interface and format Registry
//
// # Format Validation
//
// A Format read from a container header must pass Validate before any
// samples are decoded:
//
//	format := audio.Format{SampleRate: 44100, Channels: 2, BitDepth: 16, Encoding: audio.EncodingInteger}
//	if err := format.Validate(); err != nil {
//	    // ErrUnsupportedEncoding, ErrUnsupportedBitDepth or
//	    // ErrUnsupportedChannelLayout
//	}
//
// Only integer PCM is accepted. Bit depths up to 32 decode fine even though
// most embedded targets use 8 or 16 bit samples.
//
// # Bit-Depth Bucketing
//
// Width maps a declared bit depth to the narrowest native signed integer
// that holds it:
//
//	bits 1-8   -> 8-bit  (int8_t)
//	bits 9-16  -> 16-bit (int16_t)
//	bits 17-32 -> 32-bit (int32_t)
//
// The bucket is used twice, once when decoding and once when the serializer
// picks the C element type, so a value always round-trips at the same width.
//
// # Channel Reduction
//
// DownmixMono averages stereo frames into single samples:
//
//	mono, err := audio.DownmixMono(buf)
//
// The average truncates toward zero: frame (100, 200) becomes 150 and frame
// (-3, 0) becomes -1. Mono buffers pass through untouched.
//
// # Sample Format
//
// Samples are plain signed integers at the source bit depth. Unlike
// normalized float pipelines there is no scaling step; what the decoder
// read is what the serializer prints.
//
// # Format Registry
//
// The registry allows decoder registration by format key:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get("wav")
//
// This is how the command-line tool maps file extensions to decoders.
package audio
