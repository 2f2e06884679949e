package normalize

import "testing"

func runes(s string) []rune { return []rune(s) }

func TestNFCAlreadyComposed(t *testing.T) {
	cases := []string{"café", "straße", "münchen", "ドメイン名例"}
	for _, s := range cases {
		got := string(NFC(runes(s)))
		if got != s {
			t.Errorf("NFC(%q) = %q, want unchanged", s, got)
		}
		if !IsNFC(runes(s)) {
			t.Errorf("IsNFC(%q) = false, want true", s)
		}
	}
}

func TestNFCComposesDecomposedForm(t *testing.T) {
	// "e" + combining acute accent (U+0301) must compose to "é" (U+00E9).
	decomposed := []rune{'e', 0x0301}
	want := "é"
	if got := string(NFC(decomposed)); got != want {
		t.Errorf("NFC(e + combining acute) = %q, want %q", got, want)
	}
	if IsNFC(decomposed) {
		t.Error("IsNFC(e + combining acute) = true, want false")
	}
}

func TestNFCReordersCombiningMarks(t *testing.T) {
	// Digit '1' is not a composition starter for any diacritic, so this
	// isolates the reordering step: U+0301 (acute, ccc 230) followed by
	// U+0323 (dot below, ccc 220) is out of canonical order and must be
	// swapped, with no composition possible either way.
	in := []rune{'1', 0x0301, 0x0323}
	want := []rune{'1', 0x0323, 0x0301}
	got := NFC(in)
	if string(got) != string(want) {
		t.Errorf("NFC(1 + acute + dot-below) = %U, want %U", got, want)
	}
}

func TestNFCSequentialComposition(t *testing.T) {
	// U+0041 'A' + U+0323 (dot below, ccc 220) + U+0301 (acute, ccc 230) is
	// already in canonical order. 'A' composes with the dot below first
	// (U+1EA0, Ạ); the acute then has nothing of equal-or-higher class
	// between it and the (now-composed) starter, but Ạ has no further
	// precomposed form with an added acute, so it stays a separate mark.
	in := []rune{'A', 0x0323, 0x0301}
	want := []rune{0x1EA0, 0x0301}
	got := NFC(in)
	if string(got) != string(want) {
		t.Errorf("NFC(A+dot-below+acute) = %U, want %U", got, want)
	}
}

func TestNFCDoesNotLatchBlockedState(t *testing.T) {
	// Regression test for a blocking-state bug: blocking must be evaluated
	// per-candidate against the combining class seen since the starter, not
	// latched permanently once one candidate is blocked.
	//
	// 'a' + U+0301 (acute, ccc 230, composes with 'a') + U+0300 (grave,
	// ccc 230, not blocked from the still-open starter since acute was
	// absorbed and never raised lastCC).
	in := []rune{'a', 0x0301, 0x0300}
	out := NFC(in)
	// a + acute -> á (U+00E1); á + grave has no composition, mark stays
	// separate. The key assertion is that the grave is still *considered*
	// for composition against the same starter rather than being
	// unconditionally blocked because an earlier mark was absorbed.
	want := []rune{0x00E1, 0x0300}
	if string(out) != string(want) {
		t.Errorf("NFC(a+acute+grave) = %U, want %U", out, want)
	}
}

func TestHangulDecomposeCompose(t *testing.T) {
	// U+AC00 (가, GA, LV syllable with no trailing consonant) decomposes to
	// L+V (U+1100 U+1161) and recomposes exactly.
	syllable := []rune{0xAC00}
	d := decompose(syllable)
	want := []rune{0x1100, 0x1161}
	if string(d) != string(want) {
		t.Errorf("decompose(가) = %U, want %U", d, want)
	}
	reorder(d)
	c := compose(d)
	if string(c) != string(syllable) {
		t.Errorf("compose(L+V) = %U, want %U", c, syllable)
	}
}

func TestHangulDecomposeComposeWithTrailingConsonant(t *testing.T) {
	// U+AC01 (각, GAG) decomposes to L+V+T and recomposes exactly.
	syllable := []rune{0xAC01}
	d := decompose(syllable)
	if len(d) != 3 {
		t.Fatalf("decompose(각) = %U, want 3 jamo", d)
	}
	reorder(d)
	c := compose(d)
	if string(c) != string(syllable) {
		t.Errorf("compose(L+V+T) = %U, want %U", c, syllable)
	}
}

func TestNFCEmptyInput(t *testing.T) {
	if got := NFC(nil); len(got) != 0 {
		t.Errorf("NFC(nil) = %U, want empty", got)
	}
	if !IsNFC(nil) {
		t.Error("IsNFC(nil) = false, want true")
	}
}

func TestNFCLeadingCombiningMark(t *testing.T) {
	// A combining mark with nothing before it has no starter to compose
	// with and must survive unchanged.
	in := []rune{0x0301}
	got := NFC(in)
	if string(got) != string(in) {
		t.Errorf("NFC(lone combining acute) = %U, want unchanged", got)
	}
}

func TestCombiningClassLookup(t *testing.T) {
	if cc := combiningClass('a'); cc != 0 {
		t.Errorf("combiningClass('a') = %d, want 0", cc)
	}
	if cc := combiningClass(0x0301); cc != 230 {
		t.Errorf("combiningClass(U+0301) = %d, want 230", cc)
	}
	if cc := combiningClass(0x0323); cc != 220 {
		t.Errorf("combiningClass(U+0323) = %d, want 220", cc)
	}
}
