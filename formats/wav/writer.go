// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/pcm2c/audio"
)

// Write encodes interleaved signed samples as a WAV file. The destination
// must be seekable because the RIFF chunk sizes are patched after the data
// is written.
//
// Integer formats of any bucketed depth are supported; 8-bit output is
// converted to the offset-binary representation WAV requires. A format with
// EncodingFloat writes an IEEE float data chunk, in which case samples must
// already carry the raw bit patterns.
func Write(ws io.WriteSeeker, format audio.Format, samples []int) error {
	if format.Encoding == audio.EncodingInteger {
		if err := format.Validate(); err != nil {
			return err
		}
	}

	audioFormat := formatPCM
	if format.Encoding == audio.EncodingFloat {
		audioFormat = formatIEEEFloat
	}

	data := samples
	if format.Encoding == audio.EncodingInteger && format.BitDepth <= 8 {
		data = make([]int, len(samples))
		for i, s := range samples {
			data[i] = s + 128
		}
	}

	enc := gowav.NewEncoder(ws, format.SampleRate, format.BitDepth, format.Channels, audioFormat)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: format.Channels,
			SampleRate:  format.SampleRate,
		},
		SourceBitDepth: format.BitDepth,
		Data:           data,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
