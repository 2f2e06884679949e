package idna

import "testing"

// conformanceRow mirrors one row of the Unicode IdnaTestV2.txt fixture
// format this package's conformance suite is shaped after: a source
// string, the expected toUnicode and toASCII (non-transitional) results,
// and whether each direction is expected to fail.
type conformanceRow struct {
	source       string
	toUnicode    string
	toUnicodeErr bool
	toASCII      string
	toASCIIErr   bool
}

// conformanceFixtures is a small, hand-curated stand-in for the full
// IdnaTestV2.txt fixture set: enough rows to exercise mapping,
// normalization, and validation jointly, in the shape a fuller suite would
// take.
var conformanceFixtures = []conformanceRow{
	{source: "example.com", toUnicode: "example.com", toASCII: "example.com"},
	// to-Unicode only maps/normalizes xn-- labels; a plain ASCII label is
	// emitted as-is once is_label_valid passes, uppercase and all.
	{source: "EXAMPLE.COM", toUnicode: "EXAMPLE.COM", toASCII: "example.com"},
	{source: "café.example", toUnicode: "café.example", toASCII: "xn--caf-dma.example"},
	{source: "straße.de", toUnicode: "straße.de", toASCII: "xn--strae-oqa.de"},
	{source: "xn--caf-dma.example", toUnicode: "café.example", toASCII: "xn--caf-dma.example"},
	{source: "xn--strae-oqa.de", toUnicode: "straße.de", toASCII: "xn--strae-oqa.de"},
	{source: "a..b", toUnicodeErr: true, toASCIIErr: true},
	{source: "", toUnicodeErr: true, toASCIIErr: true},
	// Already clean lowercase ASCII, so ToASCII's step-3 fast path returns
	// it unchanged without validating the Punycode body; ToUnicode, which
	// must actually decode that body, rejects it.
	{source: "xn--z", toUnicodeErr: true, toASCII: "xn--z"},
	{source: "a\x00b", toUnicodeErr: true, toASCIIErr: true},
}

func TestConformanceFixtures(t *testing.T) {
	for _, row := range conformanceFixtures {
		row := row
		t.Run(row.source, func(t *testing.T) {
			u, err := ToUnicode(row.source)
			if row.toUnicodeErr {
				if err == nil {
					t.Errorf("ToUnicode(%q) = %q, want error", row.source, u)
				}
			} else if err != nil {
				t.Errorf("ToUnicode(%q) = %v, want %q", row.source, err, row.toUnicode)
			} else if u != row.toUnicode {
				t.Errorf("ToUnicode(%q) = %q, want %q", row.source, u, row.toUnicode)
			}

			a, err := ToASCII(row.source)
			if row.toASCIIErr {
				if err == nil {
					t.Errorf("ToASCII(%q) = %q, want error", row.source, a)
				}
			} else if err != nil {
				t.Errorf("ToASCII(%q) = %v, want %q", row.source, err, row.toASCII)
			} else if a != row.toASCII {
				t.Errorf("ToASCII(%q) = %q, want %q", row.source, a, row.toASCII)
			}
		})
	}
}
