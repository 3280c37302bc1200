// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into integer PCM buffers.
//
// Decoding uses github.com/hajimehoshi/go-mp3, which outputs 16-bit
// little-endian stereo regardless of the source file. The resulting buffer
// therefore always reports two channels and a 16-bit depth; the pipeline's
// mono downmix applies afterwards like it does for stereo WAV input.
//
//	decoder := mp3.Decoder{}
//	buf, err := decoder.Decode(file)
//
// Streams that cannot be parsed fail with ErrMalformedMP3.
package mp3
