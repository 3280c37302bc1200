// SPDX-License-Identifier: EPL-2.0

package pcm2c

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/pcm2c/carray"
)

// HeaderPath derives the companion header location from the body path by
// swapping the extension for ".h".
func HeaderPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".h"
}

// WriteOutput delivers a rendered Output to path. When the Output carries a
// companion header it lands next to the body with a ".h" extension.
// Destinations that already exist are refused with ErrOutputExists before
// anything is written, so a conflict never leaves partial files behind.
func WriteOutput(path string, out *carray.Output) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	}

	headerPath := HeaderPath(path)
	if out.Header != "" {
		if _, err := os.Stat(headerPath); err == nil {
			return fmt.Errorf("%w: %s", ErrOutputExists, headerPath)
		}
	}

	if err := os.WriteFile(path, []byte(out.Body), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if out.Header != "" {
		if err := os.WriteFile(headerPath, []byte(out.Header), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", headerPath, err)
		}
	}

	return nil
}
