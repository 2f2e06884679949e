package bootstring

import "testing"

func TestEncodeVectors(t *testing.T) {
	cases := []struct {
		name string
		in   []rune
		want string
	}{
		{"a with diaeresis", []rune{0x00E4}, "4ca"},
		{"alpha beta gamma", []rune{0x03B1, 0x03B2, 0x03B3}, "mxacd"},
		{"strasse body", []rune("straße"), "strae-oqa"},
		{"munchen body", []rune("münchen"), "mnchen-3ya"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Encode(tc.in)
			if !ok {
				t.Fatalf("Encode(%v) failed, want %q", tc.in, tc.want)
			}
			if got != tc.want {
				t.Errorf("Encode(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	inputs := [][]rune{
		[]rune("straße"),
		[]rune("münchen"),
		[]rune("café"),
		[]rune("ドメイン名例"),
		[]rune{0x03B1, 0x03B2, 0x03B3},
	}
	for _, in := range inputs {
		enc, ok := Encode(in)
		if !ok {
			t.Fatalf("Encode(%v) failed", in)
		}
		dec, ok := Decode(enc)
		if !ok {
			t.Fatalf("Decode(%q) failed", enc)
		}
		if string(dec) != string(in) {
			t.Errorf("round trip %v -> %q -> %v", in, enc, dec)
		}
	}
}

func TestEncodeRejectsAcePrefix(t *testing.T) {
	if _, ok := Encode([]rune("xn--foo")); ok {
		t.Error("Encode accepted input beginning with xn--")
	}
}

func TestDecodeRejectsAcePrefix(t *testing.T) {
	if _, ok := Decode("xn--foo-bar"); ok {
		t.Error("Decode accepted input beginning with xn--")
	}
}

func TestDecodeRejectsInvalidDigit(t *testing.T) {
	if _, ok := Decode("a!b"); ok {
		t.Error("Decode accepted an invalid base-36 digit")
	}
}

func TestDecodeRejectsTruncatedDigitSequence(t *testing.T) {
	// "z" has digit-value 25, which is >= the threshold at k=36 and so
	// demands a continuation digit that the input does not supply.
	if _, ok := Decode("z"); ok {
		t.Error(`Decode("z") unexpectedly succeeded`)
	}
}

