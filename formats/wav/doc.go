// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes PCM RIFF/WAVE containers.
//
// This package uses github.com/go-audio/wav for container handling and maps
// its output onto the pipeline's signed integer buffers.
//
// # Supported Formats
//
//   - Integer PCM, 1 to 32 bits per sample
//   - Mono and stereo
//   - Any sample rate
//
// Float-encoded WAV files are recognized but rejected with
// audio.ErrUnsupportedEncoding before any sample is read.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	buf, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	// buf.Data holds signed samples, buf.Format describes them
//
// The whole file is decoded into memory; there is no incremental mode.
// When the reader is not an io.ReadSeeker the stream is buffered first,
// because go-audio needs to seek between chunks.
//
// # 8-Bit Samples
//
// WAV stores 8-bit PCM as offset binary (0..255). The decoder recenters
// those values to signed [-128,127] and the writer applies the inverse
// offset, so the rest of the pipeline only ever sees signed samples.
//
// # Writing WAV Files
//
// Write produces complete WAV files and is what the fixture generator uses:
//
//	f, _ := os.Create("tone.wav")
//	err := wav.Write(f, audio.Format{
//	    SampleRate: 8000,
//	    Channels:   1,
//	    BitDepth:   16,
//	    Encoding:   audio.EncodingInteger,
//	}, samples)
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE container
//   - ErrMalformedWav: required chunks are missing or truncated
//   - ErrUnsupportedWavLayout: unknown audio format tag
//
// Validation failures (encoding, bit depth, channel layout) surface as the
// audio package sentinels.
package wav
