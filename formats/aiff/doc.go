// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF containers into integer PCM buffers.
//
// This package uses github.com/go-audio/aiff. AIFF samples are signed
// integers already, so unlike WAV there is no 8-bit offset handling; the
// decoded values go straight into the pipeline.
//
//	decoder := aiff.Decoder{}
//	buf, err := decoder.Decode(file)
//
// Files that are not AIFF fail with ErrNotAiffFile, structural problems
// with ErrMalformedAiff, and format restrictions (encoding, bit depth,
// channel layout) surface as the audio package sentinels.
package aiff
