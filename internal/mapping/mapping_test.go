package mapping

import "testing"

func TestASCIIMap(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"example.com": "example.com",
		"EXAMPLE.com": "example.com",
		"AbC-123":     "abc-123",
	}
	for in, want := range cases {
		if got := ASCIIMap(in); got != want {
			t.Errorf("ASCIIMap(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMapDeletions(t *testing.T) {
	cases := map[string]string{
		"ex­ample": "example",
		"a‌b":      "ab",
		"a‍b":      "ab",
		"a‎b":      "ab",
		"a‪b":      "ab",
	}
	for in, want := range cases {
		if got := Map(in); got != want {
			t.Errorf("Map(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMapSpecialCasing(t *testing.T) {
	cases := map[string]string{
		"İ":  "i̇",
		"և":  "եւ",
		"ﬁ":  "fi",
		"ﬀ":  "ff",
		"ﬃ":  "ffi",
	}
	for in, want := range cases {
		if got := Map(in); got != want {
			t.Errorf("Map(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestMapLeavesDeviationCharacterUnchanged guards the non-transitional
// scope decision recorded next to the special table: ß must survive
// mapping as-is so "straße" Punycode-encodes directly instead of folding
// to the ASCII "strasse".
func TestMapLeavesDeviationCharacterUnchanged(t *testing.T) {
	if got := Map("straße"); got != "straße" {
		t.Errorf("Map(%q) = %q, want unchanged", "straße", got)
	}
}

func TestMapLowercasesGeneral(t *testing.T) {
	cases := map[string]string{
		"CAFÉ":    "café",
		"MÜNCHEN": "münchen",
		"naÏve":   "naïve",
	}
	for in, want := range cases {
		if got := Map(in); got != want {
			t.Errorf("Map(%q) = %q, want %q", in, got, want)
		}
	}
}
