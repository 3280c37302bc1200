// SPDX-License-Identifier: EPL-2.0

package carray

// Tool identity stamped into generated comment blocks.
const (
	GeneratorName    = "pcm2c"
	GeneratorVersion = "1.0.0"

	generatorURL = "https://github.com/ik5/pcm2c"
)

// samplesPerLine is the number of array literals emitted per output row.
const samplesPerLine = 8

// Base selects the numeric notation of the emitted sample literals.
type Base int

const (
	// Decimal prints each sample as a signed base-10 literal.
	Decimal Base = iota
	// Hex prints each sample as a 0x-prefixed hexadecimal literal. Negative
	// values print as the two's-complement bit pattern of the bucketed
	// element width, e.g. -1 at 16-bit depth prints as 0xffff.
	Hex
)

func (b Base) String() string {
	switch b {
	case Decimal:
		return "base10"
	case Hex:
		return "base16"
	default:
		return "unknown"
	}
}

// Options controls how a sample buffer is rendered. It is constructed by
// the caller, passed by value and never mutated here.
type Options struct {
	// ArrayName is the raw array identifier; it is sanitized before use.
	ArrayName string
	// SourceName is the logical name of the input file, used only in the
	// descriptive comment.
	SourceName string
	// MaxSamples bounds the decoded frame count. Zero or negative means
	// unbounded.
	MaxSamples int
	// NoComment suppresses the descriptive comment block.
	NoComment bool
	// Base selects decimal or hexadecimal sample literals.
	Base Base
	// Prefix is emitted verbatim before the array, followed by a blank line.
	Prefix string
	// Header requests a companion declaration for inclusion from other
	// translation units.
	Header bool
}

// Output is the rendered text. Header is empty unless Options.Header was
// set. The core never writes files; delivery is the caller's concern.
type Output struct {
	Body   string
	Header string
}
