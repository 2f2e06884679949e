package idna

import (
	"github.com/go-idna/idna/internal/bootstring"
	"github.com/go-idna/idna/internal/mapping"
	"github.com/go-idna/idna/internal/normalize"
	"github.com/go-idna/idna/internal/utf32"
	"github.com/go-idna/idna/internal/validate"
)

// EncodePunycode encodes a sequence of code points as a Punycode (RFC 3492)
// body, without the "xn--" prefix. It reports false on any rejected input:
// code points above U+10FFFF, surrogates, an "xn--" literal re-prefix, or
// arithmetic overflow.
func EncodePunycode(codes []rune) (string, bool) {
	return bootstring.Encode(codes)
}

// DecodePunycode decodes a Punycode (RFC 3492) body, without the "xn--"
// prefix, back into its code points.
func DecodePunycode(body string) ([]rune, bool) {
	return bootstring.Decode(body)
}

// MapLabel applies the general IDNA code-point mapping (deletions, special
// casings, and full Unicode lowercasing) to a single label.
func MapLabel(label string) string {
	return mapping.Map(label)
}

// ASCIIMapLabel lowercases ASCII A-Z and passes every other byte through
// unchanged; the cheap mapping for labels already known to be ASCII.
func ASCIIMapLabel(label string) string {
	return mapping.ASCIIMap(label)
}

// NormalizeNFC returns the Unicode Normalization Form C of codes.
func NormalizeNFC(codes []rune) []rune {
	return normalize.NFC(codes)
}

// ValidateLabel reports whether label satisfies the full label-validity
// gate: length, hyphen placement, and either a verified Punycode body or an
// all-valid-name-code-point body.
func ValidateLabel(label string) bool {
	return validate.IsLabelValid(label)
}

// DecodeUTF32 decodes UTF-8 bytes into code points under the same strict
// validation the orchestrator applies internally.
func DecodeUTF32(b []byte) []rune {
	return utf32.Decode(b)
}

// EncodeUTF32 encodes code points to UTF-8 bytes, assuming pre-validated
// input.
func EncodeUTF32(codes []rune) []byte {
	return utf32.Encode(codes)
}
