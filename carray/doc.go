// SPDX-License-Identifier: EPL-2.0

// Package carray serializes decoded PCM buffers into C source-code arrays.
//
// The serializer takes a mono audio.Buffer and renders it as a deterministic
// text block suitable for embedding in firmware:
//
//	#define BEEP_SAMPLE_NO 4
//
//	const int16_t beep[] = {
//		 100, -100, 200, -200,
//	};
//
// # Rendering
//
//	out, err := carray.Render(buf, carray.Options{
//	    ArrayName:  "beep",
//	    SourceName: "beep.wav",
//	    MaxSamples: 220000,
//	})
//	if err != nil {
//	    // no partial output exists on failure
//	}
//	fmt.Println(out.Body)
//
// The element type follows the source bit depth: up to 8 bits emits int8_t,
// up to 16 bits int16_t and up to 32 bits int32_t. Eight literals are
// printed per row.
//
// # Hexadecimal Mode
//
// With Options.Base set to Hex, literals are written with a 0x prefix.
// Negative samples print as the two's-complement bit pattern of the element
// width, so -1 at 16-bit depth renders as 0xffff. This matches the bytes
// the array occupies on the target.
//
// # Companion Headers
//
// Options.Header additionally produces a declaration-only text for other
// translation units:
//
//	#define BEEP_SAMPLE_NO 4
//
//	extern const int16_t beep[];
//
// # Failure Semantics
//
// Bounds checking, identifier sanitation and type selection all run before
// any text is built. Render either returns the complete Output or an error;
// callers never need to clean up a partially written array.
package carray
