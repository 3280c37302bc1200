package carray

import "strings"

// SanitizeIdentifier turns a raw name into a symbol-safe C identifier.
// Leading and trailing whitespace is trimmed, internal spaces become
// underscores and any remaining character that is not an ASCII letter or
// underscore is dropped.
//
// Note that digits are stripped entirely, not only in the leading position.
// "track01" therefore becomes "track". This keeps the name legal in C no
// matter where the digits sit; callers that want digits in the symbol must
// spell them out.
func SanitizeIdentifier(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, " ", "_")

	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		}
	}

	return b.String()
}
