// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into integer PCM buffers.
//
// Decoding uses github.com/jfreymuth/oggvorbis. Vorbis is a float codec, so
// decoded samples are scaled to the signed 16-bit range and the buffer
// reports a 16-bit depth. Mono and stereo streams are accepted; anything
// wider fails validation before any sample is converted.
//
//	decoder := vorbis.Decoder{}
//	buf, err := decoder.Decode(file)
//
// Streams that cannot be parsed fail with ErrMalformedOgg.
package vorbis
