// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrUnsupportedEncoding indicates the sample encoding is not integer PCM.
	ErrUnsupportedEncoding = errors.New("unsupported encoding: only integer PCM is supported")

	// ErrUnsupportedBitDepth indicates a bit depth outside (0,32].
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth: must be between 1 and 32")

	// ErrUnsupportedChannelLayout indicates a channel count other than 1 or 2.
	ErrUnsupportedChannelLayout = errors.New("unsupported channel layout: only mono or stereo is supported")
)
