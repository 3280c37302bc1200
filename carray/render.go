// SPDX-License-Identifier: EPL-2.0

package carray

import (
	"fmt"
	"strings"

	"github.com/ik5/pcm2c/audio"
)

// CheckBounds verifies the frame count against the configured bound. A max
// of zero or less means unbounded. The check runs before any text is
// generated so a failed conversion never leaves partial output behind.
func CheckBounds(frames, max int) error {
	if max > 0 && frames > max {
		return &SampleCountError{Actual: frames, Max: max}
	}
	return nil
}

// elementType maps a native sample width to the C element type of the
// emitted array.
func elementType(width int) string {
	switch width {
	case 8:
		return "int8_t"
	case 16:
		return "int16_t"
	default:
		return "int32_t"
	}
}

// hexLiteral formats v as the two's-complement hexadecimal form of the
// bucketed width, matching what the value looks like in memory on the
// target. The sign is not rendered separately: -1 at 16 bits is 0xffff.
func hexLiteral(v, width int) string {
	switch width {
	case 8:
		return fmt.Sprintf("%#x", uint8(int8(v)))
	case 16:
		return fmt.Sprintf("%#x", uint16(int16(v)))
	default:
		return fmt.Sprintf("%#x", uint32(int32(v)))
	}
}

// Render serializes a mono sample buffer into C source text.
//
// The body consists of an optional descriptive comment, an optional verbatim
// prefix, a #define binding <NAME>_SAMPLE_NO to the sample count and the
// array itself, emitted in rows of eight comma-terminated literals. All
// validation happens before the first byte of text is produced.
func Render(buf *audio.Buffer, opts Options) (*Output, error) {
	if err := CheckBounds(len(buf.Data), opts.MaxSamples); err != nil {
		return nil, err
	}

	width, err := buf.Format.Width()
	if err != nil {
		return nil, err
	}

	name := SanitizeIdentifier(opts.ArrayName)
	if name == "" {
		return nil, ErrInvalidArrayName
	}

	ctype := elementType(width)

	var b strings.Builder
	writePreamble(&b, buf.Format, opts)

	fmt.Fprintf(&b, "#define %s_SAMPLE_NO %d\n\n", strings.ToUpper(name), len(buf.Data))
	fmt.Fprintf(&b, "const %s %s[] = {", ctype, name)

	for i, sample := range buf.Data {
		if i%samplesPerLine == 0 {
			b.WriteString("\n\t")
		}
		if opts.Base == Hex {
			fmt.Fprintf(&b, " %s,", hexLiteral(sample, width))
		} else {
			fmt.Fprintf(&b, " %d,", sample)
		}
	}

	b.WriteString("\n};")

	out := &Output{Body: b.String()}
	if opts.Header {
		out.Header = renderHeader(name, ctype, len(buf.Data), buf.Format, opts)
	}

	return out, nil
}

// renderHeader produces the companion declaration: the size constant plus an
// extern declaration of the array, without sample values.
func renderHeader(name, ctype string, count int, format audio.Format, opts Options) string {
	var b strings.Builder
	writePreamble(&b, format, opts)

	fmt.Fprintf(&b, "#define %s_SAMPLE_NO %d\n\n", strings.ToUpper(name), count)
	fmt.Fprintf(&b, "extern const %s %s[];", ctype, name)

	return b.String()
}

// writePreamble emits the comment block and prefix that precede both the
// array body and the companion header.
func writePreamble(b *strings.Builder, format audio.Format, opts Options) {
	if !opts.NoComment {
		fmt.Fprintf(b, "/*\n/* Generated by %s v%s from %s\n/* %s\n/*\n/* %s\n*/\n\n",
			GeneratorName, GeneratorVersion, opts.SourceName, FormatSummary(format), generatorURL)
	}

	if opts.Prefix != "" {
		b.WriteString(opts.Prefix)
		b.WriteString("\n\n")
	}
}

// FormatSummary returns the human-readable one-line description of a format
// used in comment blocks and log output.
func FormatSummary(f audio.Format) string {
	return fmt.Sprintf("Sample rate: %d Hz, Channels: %d, Bits per sample: %d",
		f.SampleRate, f.Channels, f.BitDepth)
}
