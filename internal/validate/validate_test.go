package validate

import "testing"

func TestIsASCII(t *testing.T) {
	cases := map[string]bool{
		"":            true,
		"example.com": true,
		"café":        false,
		"xn--caf-dma": true,
	}
	for in, want := range cases {
		if got := IsASCII(in); got != want {
			t.Errorf("IsASCII(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestContainsForbiddenDomainCodePoint(t *testing.T) {
	cases := map[string]bool{
		"example.com": false,
		"a b":         true, // space
		"a\"b":        true,
		"a#b":         true,
		"a/b":         true,
		"a:b":         true,
		"a<b>c":       true,
		"a@b":         true,
		"a[b]c":       true,
		"a\\b":        true,
		"a^b":         true,
		"a|b":         true,
		"a\x00b":      true, // NUL, part of the 0x00-0x1F control range
		"a\x7Fb":      true, // DEL, part of the 0x7F-0x9F control range
		"straße.de":   false,
	}
	for in, want := range cases {
		if got := ContainsForbiddenDomainCodePoint(in); got != want {
			t.Errorf("ContainsForbiddenDomainCodePoint(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestValidNameCodePoint(t *testing.T) {
	valid := []rune{'a', 'z', '0', '9', '-', 'é', '字', 0xAC00}
	for _, r := range valid {
		if !ValidNameCodePoint(r) {
			t.Errorf("ValidNameCodePoint(%q) = false, want true", r)
		}
	}
	invalid := []rune{' ', '.', '/', '@', 0, 0x7F}
	for _, r := range invalid {
		if ValidNameCodePoint(r) {
			t.Errorf("ValidNameCodePoint(%q) = true, want false", r)
		}
	}
}

func TestIsLabelValid(t *testing.T) {
	cases := map[string]bool{
		"example":     true,
		"":            false,
		"-example":    false,
		"example-":    false,
		"xn--caf-dma": true,
		"xn--z":       false, // digit 'z' (25) demands a continuation digit that never comes
		"xn--":        false,
		"a b":         false,
	}
	for in, want := range cases {
		if got := IsLabelValid(in); got != want {
			t.Errorf("IsLabelValid(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsLabelValidLengthBounds(t *testing.T) {
	label63 := make([]byte, 63)
	for i := range label63 {
		label63[i] = 'a'
	}
	if !IsLabelValid(string(label63)) {
		t.Error("63-byte all-ASCII label should be valid")
	}
	label64 := append(label63, 'a')
	if IsLabelValid(string(label64)) {
		t.Error("64-byte label should be invalid (LabelTooLong)")
	}
}
