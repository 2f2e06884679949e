package utf32

import (
	"bytes"
	"testing"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"ascii", "example.com"},
		{"latin1", "café"},
		{"eszett", "straße"},
		{"cjk", "ドメイン名例"},
		{"mixed ascii window", "0123456789abcdefgh日本語0123456789"},
		{"four byte", "\U0001F600\U0001F601"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			codes := Decode([]byte(tc.in))
			if tc.in == "" {
				if codes != nil {
					t.Fatalf("Decode(%q) = %v, want nil", tc.in, codes)
				}
				return
			}
			got := Encode(codes)
			if !bytes.Equal(got, []byte(tc.in)) {
				t.Fatalf("round trip = %q, want %q", got, tc.in)
			}
			if n := Utf32LengthFromUtf8([]byte(tc.in)); n != len(codes) {
				t.Errorf("Utf32LengthFromUtf8(%q) = %d, want %d", tc.in, n, len(codes))
			}
			if n := Utf8LengthFromUtf32(codes); n != len(tc.in) {
				t.Errorf("Utf8LengthFromUtf32(%v) = %d, want %d", codes, n, len(tc.in))
			}
		})
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := map[string][]byte{
		"truncated 2-byte":     {0xC2},
		"truncated 3-byte":     {0xE0, 0xA0},
		"truncated 4-byte":     {0xF0, 0x90, 0x80},
		"overlong 2-byte":      {0xC0, 0x80},
		"overlong 3-byte":      {0xE0, 0x80, 0x80},
		"surrogate":            {0xED, 0xA0, 0x80},
		"above max code point": {0xF4, 0x90, 0x80, 0x80},
		"bad continuation":     {0xC2, 0x20},
		"stray continuation":   {0x80},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if got := Decode(in); got != nil {
				t.Errorf("Decode(%v) = %v, want nil", in, got)
			}
		})
	}
}

func TestSkipASCIIWindowMatchesByteLoop(t *testing.T) {
	in := []byte("0123456789012345café0123456789012345")
	codes := Decode(in)
	if codes == nil {
		t.Fatal("Decode returned nil for valid input")
	}
	if got := Encode(codes); !bytes.Equal(got, in) {
		t.Errorf("got %q, want %q", got, in)
	}
}
