// Package normalize implements Unicode Normalization Form C over a buffer
// of code points, driven by the two-level decomposition, combining-class,
// and composition tables in tables.go.
//
// The two-pass shape (decompose, then canonically reorder and compose) is
// grounded on the decompose/reorder/compose structure of this codebase's
// x/text-style NFC implementation, reworked from its streaming
// reorderBuffer/quickSpan design (which this module's spec explicitly rules
// out, see its "no streaming API over partial input" Non-goal) into a
// non-streaming, whole-buffer transform over []rune, matching the spec's
// buffer-growth-then-fill-from-tail allocation discipline.
package normalize

import "sort"

const (
	sBase, lBase, vBase, tBase = 0xAC00, 0x1100, 0x1161, 0x11A7
	lCount, vCount, tCount     = 19, 21, 28
	nCount                     = vCount * tCount
	sCount                     = lCount * nCount
)

// NFC returns the NFC-normalized form of codes.
func NFC(codes []rune) []rune {
	d := decompose(codes)
	reorder(d)
	return compose(d)
}

// IsNFC reports whether codes is already in Normalization Form C. It
// normalizes a copy of codes with NFC and compares, so it always allocates.
func IsNFC(codes []rune) bool {
	return string32(NFC(codes)) == string32(codes)
}

func string32(codes []rune) string {
	return string(codes)
}

// decompose expands every Hangul syllable and canonically-decomposable code
// point in codes into its full (transitively expanded) decomposition,
// leaving everything else untouched. It precomputes the total expansion
// length so the output buffer is allocated exactly once.
func decompose(codes []rune) []rune {
	total := 0
	for _, c := range codes {
		total += decomposedLen(c)
	}
	out := make([]rune, total)
	i := total
	for j := len(codes) - 1; j >= 0; j-- {
		c := codes[j]
		if isHangul(c) {
			var jamo [3]rune
			n := decomposeHangul(c, &jamo)
			for k := n - 1; k >= 0; k-- {
				i--
				out[i] = jamo[k]
			}
			continue
		}
		seq := decompositionOf(c)
		if len(seq) == 0 {
			i--
			out[i] = c
			continue
		}
		for k := len(seq) - 1; k >= 0; k-- {
			i--
			out[i] = seq[k]
		}
	}
	return out
}

func decomposedLen(c rune) int {
	if isHangul(c) {
		if (c-sBase)%tCount == 0 {
			return 2
		}
		return 3
	}
	if seq := decompositionOf(c); len(seq) > 0 {
		return len(seq)
	}
	return 1
}

func isHangul(c rune) bool {
	return c >= sBase && c < sBase+sCount
}

// decomposeHangul writes the 2 or 3 jamo that c decomposes into into out
// and returns how many it wrote.
func decomposeHangul(c rune, out *[3]rune) int {
	sIndex := c - sBase
	l := lBase + sIndex/nCount
	v := vBase + (sIndex%nCount)/tCount
	t := sIndex % tCount
	out[0] = l
	out[1] = v
	if t == 0 {
		return 2
	}
	out[2] = tBase + t
	return 3
}

// decompositionOf returns the canonical decomposition of c, or nil if c has
// none, via the two-level decompIndex/decompBlocks/decompData tables.
func decompositionOf(c rune) []rune {
	if c < 0 {
		return nil
	}
	hi := int(c >> 8)
	if hi >= len(decompIndex) {
		return nil
	}
	block := decompIndex[hi]
	if block == 0 {
		return nil
	}
	lo := c & 0xFF
	offsets := &decompBlocks[block]
	cur := offsets[lo]
	next := offsets[lo+1]
	if cur&1 != 0 {
		// Compatibility-only entry; NFC never expands these.
		return nil
	}
	start, end := cur>>2, next>>2
	if start == end {
		return nil
	}
	return decompData[start:end]
}

// combiningClass looks up the canonical combining class of c via the
// two-level cccIndex/cccBlocks tables, yielding 0 for any code point not
// present (the overwhelming majority: non-combining characters).
func combiningClass(c rune) uint8 {
	if c < 0 {
		return 0
	}
	hi := int(c >> 8)
	if hi >= len(cccIndex) {
		return 0
	}
	block := cccIndex[hi]
	if block == 0 {
		return 0
	}
	return cccBlocks[block][c&0xFF]
}

// reorder performs a stable insertion sort of non-starter runs by
// combining class, in place.
func reorder(codes []rune) {
	for i := 1; i < len(codes); i++ {
		cc := combiningClass(codes[i])
		if cc == 0 {
			continue
		}
		j := i
		for j > 0 && combiningClass(codes[j-1]) > cc {
			codes[j-1], codes[j] = codes[j], codes[j-1]
			j--
		}
	}
}

// compose walks the canonically-reordered buffer and folds starter+mark
// sequences back together: Hangul L+V and LV+T algorithmically, everything
// else via the compIndex/compBlocks/compSecond/compReplacement tables. The
// result is written in place and the backing array is truncated to the
// final composed length.
func compose(codes []rune) []rune {
	if len(codes) == 0 {
		return codes
	}
	out := codes[:1]
	starter := 0 // index into out of the last code point with ccc == 0
	lastCC := combiningClass(out[0])

	for i := 1; i < len(codes); i++ {
		c := codes[i]
		cc := combiningClass(c)
		s := out[starter]

		// Blocked if a code point with combining class >= cc has appeared
		// since the starter and was not itself absorbed into it. Guard on
		// lastCC, not cc: a starter (cc == 0) following an unabsorbed mark
		// must still be blocked from composing with s, since any ccc is
		// >= 0.
		blocked := lastCC != 0 && lastCC >= cc

		if !blocked {
			if composed, ok := tryCompose(s, c); ok {
				out[starter] = composed
				if cc == 0 {
					lastCC = 0
				}
				// An absorbed mark never updates lastCC: it no longer
				// exists in the output sequence to block anything.
				continue
			}
		}

		out = append(out, c)
		if cc == 0 {
			starter = len(out) - 1
			lastCC = 0
		} else {
			lastCC = cc
		}
	}
	return out
}

// tryCompose attempts to fold c onto starter s, trying Hangul algorithmic
// composition first and falling back to the table.
func tryCompose(s, c rune) (rune, bool) {
	if s >= lBase && s < lBase+lCount && c >= vBase && c < vBase+vCount {
		lIndex := s - lBase
		vIndex := c - vBase
		return sBase + (lIndex*vCount+vIndex)*tCount, true
	}
	if isHangul(s) && (s-sBase)%tCount == 0 && c > tBase && c < tBase+tCount {
		return s + (c - tBase), true
	}
	return tableCompose(s, c)
}

func tableCompose(s, c rune) (rune, bool) {
	if s < 0 {
		return 0, false
	}
	hi := int(s >> 8)
	if hi >= len(compIndex) {
		return 0, false
	}
	block := compIndex[hi]
	if block == 0 {
		return 0, false
	}
	offsets := &compBlocks[block]
	lo := s & 0xFF
	start, end := offsets[lo], offsets[lo+1]
	if start == end {
		return 0, false
	}
	seconds := compSecond[start:end]
	idx := sort.Search(len(seconds), func(i int) bool { return seconds[i] >= c })
	if idx < len(seconds) && seconds[idx] == c {
		return compReplacement[start+uint32(idx)], true
	}
	return 0, false
}
