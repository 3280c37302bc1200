// SPDX-License-Identifier: EPL-2.0

package pcm2c

import "errors"

var (
	// ErrUnknownFormat indicates no decoder is registered for the requested
	// format key.
	ErrUnknownFormat = errors.New("unknown audio format")

	// ErrOutputExists indicates the destination file is already populated.
	// Existing files are never overwritten.
	ErrOutputExists = errors.New("output file already exists")
)
