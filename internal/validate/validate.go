// Package validate implements the label-validity predicates: ASCII
// recognition, the forbidden-domain-code-point check, the closed
// valid-name-code-point range set, and the full is-label-valid gate that
// combines them with the Punycode decoder.
//
// The predicate shape here is grounded on this codebase's UTS #46
// validateAndMap step (the forbidden/valid-range checks it runs per
// code point, before and after mapping), narrowed to the non-transitional,
// non-Bidi scope this module targets.
package validate

import (
	"sort"

	"github.com/go-idna/idna/internal/bootstring"
	"github.com/go-idna/idna/internal/mapping"
	"github.com/go-idna/idna/internal/normalize"
	"github.com/go-idna/idna/internal/utf32"
)

const acePrefix = "xn--"

// IsASCII reports whether every byte of s is < 0x80.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// forbiddenSet holds the non-range-shaped forbidden code points; the
// control ranges (0x00-0x1F, 0x7F-0x9F) are checked separately since they
// compress better as a range test than as individual entries.
var forbiddenSet = map[rune]bool{
	0x0020: true, // space
	0x0022: true, // "
	0x0023: true, // #
	0x0025: true, // %
	0x002F: true, // /
	0x003A: true, // :
	0x003C: true, // <
	0x003E: true, // >
	0x003F: true, // ?
	0x0040: true, // @
	0x005B: true, // [
	0x005C: true, // backslash
	0x005D: true, // ]
	0x005E: true, // ^
	0x007C: true, // |
}

// ContainsForbiddenDomainCodePoint reports whether s contains any code
// point from the WHATWG URL forbidden-domain-code-point list: the C0 and
// C1 control ranges, or one of the explicit punctuation code points above.
func ContainsForbiddenDomainCodePoint(s string) bool {
	for _, r := range s {
		if isForbidden(r) {
			return true
		}
	}
	return false
}

func isForbidden(r rune) bool {
	if r <= 0x1F || (r >= 0x7F && r <= 0x9F) {
		return true
	}
	return forbiddenSet[r]
}

// FirstForbiddenDomainCodePoint returns the first forbidden code point in s
// and true, or (0, false) if s contains none. Callers that already know
// ContainsForbiddenDomainCodePoint(s) is true use this to report which rune
// triggered the rejection.
func FirstForbiddenDomainCodePoint(s string) (rune, bool) {
	for _, r := range s {
		if isForbidden(r) {
			return r, true
		}
	}
	return 0, false
}

// ValidNameCodePoint reports whether cp may appear in a label after
// mapping and normalization: ASCII '-' and [0-9a-zA-Z], plus the broad
// Unicode letter/mark/number ranges in validNameRanges.
func ValidNameCodePoint(cp rune) bool {
	ranges := validNameRanges[:]
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].hi >= cp })
	return i < len(ranges) && ranges[i].lo <= cp
}

// IsLabelValid reports whether label satisfies the full validity gate:
// length 1..=63, no leading or trailing hyphen, and either a verified
// Punycode body (for an xn-- label) or an all-valid-name-code-point body
// (for everything else).
func IsLabelValid(label string) bool {
	if len(label) < 1 || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	if len(label) >= len(acePrefix) && label[:len(acePrefix)] == acePrefix {
		codes, ok := bootstring.Decode(label[len(acePrefix):])
		if !ok {
			return false
		}
		for _, r := range codes {
			if !ValidNameCodePoint(r) {
				return false
			}
		}
		return isIdempotentUnderMapNormalize(codes)
	}
	for _, r := range label {
		if !ValidNameCodePoint(r) {
			return false
		}
	}
	return true
}

// isIdempotentUnderMapNormalize reports whether decoded is already its own
// map+normalize fixed point: a decoded A-label must not need any further
// mapping or NFC normalization, or it is not a valid canonical label.
func isIdempotentUnderMapNormalize(decoded []rune) bool {
	s := string(utf32.Encode(decoded))
	mapped := mapping.Map(s)
	normalized := string(normalize.NFC([]rune(mapped)))
	return normalized == s
}
