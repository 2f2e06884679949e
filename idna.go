// Package idna converts domain names between their Unicode representation
// (U-label form) and their ASCII-compatible encoding (A-label form, the
// "xn--" Punycode encoding used by IDNA). Its two public entry points,
// ToASCII and ToUnicode, process a full dotted domain name label by label.
//
// This implements the non-transitional variant of UTS #46 processing, for
// the WHATWG URL forbidden-domain-code-point list rather than the full
// IDNA2008 disallowed set. It does not enforce IDNA2008 §4.2's Bidi or
// ContextJ rules beyond that forbidden list; callers that need IDNA2008
// conformance for right-to-left labels must layer that check on top.
//
// There is no streaming variant: every call processes a complete domain
// name string and returns a complete result or an error.
package idna

import (
	"strings"

	"github.com/go-idna/idna/internal/bootstring"
	"github.com/go-idna/idna/internal/mapping"
	"github.com/go-idna/idna/internal/normalize"
	"github.com/go-idna/idna/internal/utf32"
	"github.com/go-idna/idna/internal/validate"
)

const acePrefix = "xn--"
const maxLabelLength = 63

// ToASCII converts domain from Unicode (or already-ASCII) form to its
// ASCII-compatible encoding, processing each dot-separated label
// independently and rejoining with ".". A domain that is already
// all-lowercase ASCII and valid is returned unchanged, without allocation.
func ToASCII(domain string) (string, error) {
	if domain == "" {
		return "", newError(EmptyLabel, domain)
	}
	// Fast path: every label is already 1..63 bytes of [a-z0-9-] with no
	// edge hyphen, so domain is returned as-is without splitting it.
	start := 0
	for i := 0; i <= len(domain); i++ {
		if i < len(domain) && domain[i] != '.' {
			continue
		}
		l := domain[start:i]
		if len(l) == 0 || len(l) > maxLabelLength || l[0] == '-' || l[len(l)-1] == '-' || !isCleanASCII(l) {
			break
		}
		if i == len(domain) {
			return domain, nil
		}
		start = i + 1
	}
	labels := strings.Split(domain, ".")
	out := make([]string, len(labels))
	changed := false
	for i, label := range labels {
		a, err := labelToASCII(label)
		if err != nil {
			return "", err
		}
		out[i] = a
		if a != label {
			changed = true
		}
	}
	if !changed {
		return domain, nil
	}
	return strings.Join(out, "."), nil
}

// ToUnicode converts domain from ASCII-compatible (or already-Unicode) form
// to its Unicode representation, processing each dot-separated label
// independently and rejoining with ".".
func ToUnicode(domain string) (string, error) {
	if domain == "" {
		return "", newError(EmptyLabel, domain)
	}
	labels := strings.Split(domain, ".")
	out := make([]string, len(labels))
	for i, label := range labels {
		u, err := labelToUnicode(label)
		if err != nil {
			return "", err
		}
		out[i] = u
	}
	return strings.Join(out, "."), nil
}

// IsASCII reports whether every byte of s is < 0x80.
func IsASCII(s string) bool { return validate.IsASCII(s) }

// ContainsForbiddenDomainCodePoint reports whether s contains any code
// point forbidden in a domain name by the WHATWG URL host-parsing rules.
func ContainsForbiddenDomainCodePoint(s string) bool {
	return validate.ContainsForbiddenDomainCodePoint(s)
}

// labelToASCII implements process_label_to_ascii, the per-label state
// machine: length/hyphen checks, the all-ASCII fast paths, then
// map/normalize/encode for everything else.
func labelToASCII(label string) (string, error) {
	if len(label) == 0 {
		return "", newError(EmptyLabel, label)
	}
	if len(label) > maxLabelLength {
		return "", newError(LabelTooLong, label)
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return "", newError(ValidationError, label)
	}
	if isCleanASCII(label) {
		return label, nil
	}
	if validate.IsASCII(label) {
		if lower := mapping.ASCIIMap(label); isCleanASCII(lower) {
			if !validate.IsLabelValid(lower) {
				return "", newError(ValidationError, label)
			}
			return lower, nil
		}
		// Pure ASCII but containing something beyond case: forbidden
		// punctuation and control bytes fall through to the forbidden check
		// below (InvalidCharacter); any other byte outside [a-z0-9-] is a
		// ValidationError.
		if _, ok := validate.FirstForbiddenDomainCodePoint(label); !ok {
			return "", newError(ValidationError, label)
		}
	}
	if r, ok := validate.FirstForbiddenDomainCodePoint(label); ok {
		return "", newCharError(InvalidCharacter, label, r)
	}

	mapped := mapping.Map(label)
	normalized := string(normalize.NFC([]rune(mapped)))
	if r, ok := validate.FirstForbiddenDomainCodePoint(normalized); ok {
		return "", newCharError(InvalidCharacter, label, r)
	}

	// Mapping and normalization can themselves delete every non-ASCII code
	// point (e.g. a soft hyphen). If what's left is already ASCII, emit it
	// directly rather than Punycode-encoding a label with nothing to encode.
	if validate.IsASCII(normalized) {
		if len(normalized) == 0 {
			return "", newError(EmptyLabel, label)
		}
		if len(normalized) > maxLabelLength {
			return "", newError(LabelTooLong, label)
		}
		if normalized[0] == '-' || normalized[len(normalized)-1] == '-' {
			return "", newError(ValidationError, label)
		}
		return normalized, nil
	}

	codes := utf32.Decode([]byte(normalized))
	if codes == nil && normalized != "" {
		return "", newError(InvalidInput, label)
	}

	encoded, ok := bootstring.Encode(codes)
	if !ok {
		return "", newError(PunycodeError, label)
	}

	result := acePrefix + encoded
	if len(result) > maxLabelLength {
		return "", newError(LabelTooLong, label)
	}
	return result, nil
}

// isCleanASCII reports whether label is already byte-for-byte in
// [a-z0-9-], the zero-allocation fast path.
func isCleanASCII(label string) bool {
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

// labelToUnicode implements the to-Unicode per-label algorithm: labels
// without the xn-- prefix pass through the validator unchanged; prefixed
// labels are decoded, re-processed through map/normalize, and must
// re-encode to exactly the original Punycode body (the round-trip gate
// that catches malformed or non-canonical encodings).
func labelToUnicode(label string) (string, error) {
	if !strings.HasPrefix(label, acePrefix) {
		if !validate.IsLabelValid(label) {
			return "", newError(ValidationError, label)
		}
		return label, nil
	}

	body := label[len(acePrefix):]
	codes, ok := bootstring.Decode(body)
	if !ok {
		return "", newError(PunycodeError, label)
	}

	utf8Bytes := utf32.Encode(codes)
	mapped := mapping.Map(string(utf8Bytes))
	normalized := string(normalize.NFC([]rune(mapped)))
	if r, ok := validate.FirstForbiddenDomainCodePoint(normalized); ok {
		return "", newCharError(InvalidCharacter, label, r)
	}

	reencodeCodes := utf32.Decode([]byte(normalized))
	reencoded, ok := bootstring.Encode(reencodeCodes)
	if !ok {
		return "", newError(PunycodeError, label)
	}
	if reencoded != body {
		return "", newError(ValidationError, label)
	}
	return normalized, nil
}
