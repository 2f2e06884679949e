// This file generates tables.go from the Unicode Character Database. It is
// excluded from the build (see the //go:build line below) and is invoked
// only via `go generate`, mirroring the offline `gen.go` convention this
// codebase's corpus uses for its own large Unicode tables (see e.g. its
// width and secure/precis packages).

//go:build ignore

package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/go-idna/idna/internal/gen"
	"golang.org/x/tools/imports"
)

// entry describes one canonically-decomposable code point, read from
// UnicodeData.txt's Decomposition_Mapping field (the <tag>-free form only:
// compatibility decompositions are excluded, per spec).
type entry struct {
	cp  rune
	seq []rune // transitively-expanded canonical decomposition
}

func main() {
	var (
		decompositions []entry
		combining      = map[rune]uint8{}
		canonRaw       = map[rune][]rune{} // cp -> its own (unexpanded) canonical decomposition
		compositions   = map[[2]rune]rune{}
	)

	gen.ParseUnicodeData("UnicodeData.txt", func(cp rune, ccc uint8, rawDecomp []rune, isCompat bool) {
		if ccc != 0 {
			combining[cp] = ccc
		}
		if len(rawDecomp) == 0 || isCompat || isHangulSyllable(cp) {
			return
		}
		canonRaw[cp] = rawDecomp
		if len(rawDecomp) == 2 && !isExcludedFromComposition(cp) {
			compositions[[2]rune{rawDecomp[0], rawDecomp[1]}] = cp
		}
	})

	for cp, raw := range canonRaw {
		decompositions = append(decompositions, entry{cp, expandTransitively(raw, canonRaw)})
	}
	sort.Slice(decompositions, func(i, j int) bool { return decompositions[i].cp < decompositions[j].cp })

	w := gen.NewCodeWriter()
	writeDecompTables(w, decompositions)
	writeCCCTable(w, combining)
	writeCompTables(w, compositions)
	w.WriteGoFile("tables.go", "normalize")

	if err := formatWithImports("tables.go"); err != nil {
		log.Fatal(err)
	}
}

// expandTransitively substitutes any code point in seq that itself has a
// canonical decomposition, recursively, so the generated table never needs
// a runtime visited-set or recursion of its own. canon holds every code
// point's own (unexpanded) canonical decomposition, collected during the
// UCD parse pass, so this can resolve sub-decompositions belonging to other
// code points than seq's owner.
func expandTransitively(seq []rune, canon map[rune][]rune) []rune {
	out := make([]rune, 0, len(seq))
	for _, r := range seq {
		if sub, ok := canon[r]; ok {
			out = append(out, expandTransitively(sub, canon)...)
		} else {
			out = append(out, r)
		}
	}
	return out
}

func isHangulSyllable(cp rune) bool { return cp >= 0xAC00 && cp < 0xAC00+11172 }

// compositionExclusions lazily loads CompositionExclusions.txt, the UCD file
// listing code points that have a canonical decomposition but must never be
// recomposed into by NFC (script-specific exclusions, post-composition
// version singletons, and non-starter decomposables).
var compositionExclusions map[rune]bool

func isExcludedFromComposition(cp rune) bool {
	if compositionExclusions == nil {
		compositionExclusions = loadCodePointSet("CompositionExclusions.txt")
	}
	return compositionExclusions[cp]
}

// loadCodePointSet reads a UCD-style file whose data lines begin with a
// single hex code point, optionally followed by a "#"-introduced comment,
// as CompositionExclusions.txt does.
func loadCodePointSet(path string) map[rune]bool {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	set := map[rune]bool{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cp, err := strconv.ParseInt(fields[0], 16, 32)
		if err != nil {
			continue
		}
		set[rune(cp)] = true
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
	return set
}

const blockSize = 256

// writeDecompTables builds the two-level decompIndex/decompBlocks/decompData
// tables decompositionOf (normalize.go) reads: decompIndex maps a code
// point's high byte to a block of 257 cumulative offsets into decompData,
// each offset packing (dataIndex<<2)|compatBit; block 0 is the shared
// all-empty sentinel.
func writeDecompTables(w *gen.CodeWriter, entries []entry) {
	byCP := map[rune][]rune{}
	maxHi := 0
	for _, e := range entries {
		byCP[e.cp] = e.seq
		if hi := int(e.cp) >> 8; hi > maxHi {
			maxHi = hi
		}
	}

	index := make([]uint16, maxHi+1)
	blocks := [][257]uint32{{}}
	var data []rune

	for hi := 0; hi <= maxHi; hi++ {
		var block [257]uint32
		nonEmpty := false
		for lo := 0; lo < blockSize; lo++ {
			block[lo] = uint32(len(data)) << 2
			if seq, ok := byCP[rune(hi<<8|lo)]; ok {
				data = append(data, seq...)
				nonEmpty = true
			}
		}
		block[blockSize] = uint32(len(data)) << 2
		if !nonEmpty {
			continue // index[hi] stays 0, the shared empty block
		}
		blocks = append(blocks, block)
		index[hi] = uint16(len(blocks) - 1)
	}

	writeUint16Rows(w, "decompIndex",
		"decompIndex maps cp>>8 to a block in decompBlocks; 0 is the empty sentinel block.",
		index)
	writeOffsetBlocks(w, "decompBlocks", blocks, "block 0: empty sentinel")
	writeRuneRows(w, "decompData",
		"decompData holds the canonical decomposition sequences decompBlocks offsets index into.",
		data)
}

// writeCCCTable builds the two-level cccIndex/cccBlocks tables
// combiningClass (normalize.go) reads: a direct per-code-point uint8, no
// offset indirection needed since a combining class is a single small
// value rather than a variable-length sequence.
func writeCCCTable(w *gen.CodeWriter, combining map[rune]uint8) {
	maxHi := 0
	for cp := range combining {
		if hi := int(cp) >> 8; hi > maxHi {
			maxHi = hi
		}
	}

	index := make([]uint16, maxHi+1)
	blocks := [][256]uint8{{}}

	for hi := 0; hi <= maxHi; hi++ {
		var block [256]uint8
		nonEmpty := false
		for lo := 0; lo < blockSize; lo++ {
			if ccc, ok := combining[rune(hi<<8|lo)]; ok {
				block[lo] = ccc
				nonEmpty = true
			}
		}
		if !nonEmpty {
			continue
		}
		blocks = append(blocks, block)
		index[hi] = uint16(len(blocks) - 1)
	}

	writeUint16Rows(w, "cccIndex",
		"cccIndex maps cp>>8 to a block in cccBlocks; 0 is the all-zero sentinel block.",
		index)
	writeByteBlocks(w, "cccBlocks", blocks, "block 0: all combining class 0")
}

// writeCompTables builds the two-level compIndex/compBlocks/compSecond/
// compReplacement tables tableCompose (normalize.go) reads: per starter,
// compSecond holds its composable second code points in ascending order so
// the composer can binary search, with compReplacement holding the
// parallel composed result. Unlike decompBlocks, these offsets are used
// unshifted: there is no per-entry flag bit to pack.
func writeCompTables(w *gen.CodeWriter, compositions map[[2]rune]rune) {
	byFirst := map[rune]map[rune]rune{}
	maxHi := 0
	for pair, composed := range compositions {
		m := byFirst[pair[0]]
		if m == nil {
			m = map[rune]rune{}
			byFirst[pair[0]] = m
		}
		m[pair[1]] = composed
		if hi := int(pair[0]) >> 8; hi > maxHi {
			maxHi = hi
		}
	}

	index := make([]uint16, maxHi+1)
	blocks := [][257]uint32{{}}
	var seconds, replacements []rune

	for hi := 0; hi <= maxHi; hi++ {
		var block [257]uint32
		nonEmpty := false
		for lo := 0; lo < blockSize; lo++ {
			block[lo] = uint32(len(seconds))
			if m, ok := byFirst[rune(hi<<8|lo)]; ok {
				secs := make([]rune, 0, len(m))
				for s := range m {
					secs = append(secs, s)
				}
				sort.Slice(secs, func(i, j int) bool { return secs[i] < secs[j] })
				for _, s := range secs {
					seconds = append(seconds, s)
					replacements = append(replacements, m[s])
				}
				nonEmpty = true
			}
		}
		block[blockSize] = uint32(len(seconds))
		if !nonEmpty {
			continue
		}
		blocks = append(blocks, block)
		index[hi] = uint16(len(blocks) - 1)
	}

	writeUint16Rows(w, "compIndex",
		"compIndex maps starter>>8 to a block in compBlocks; 0 is the empty sentinel block.",
		index)
	fmt.Fprint(w, "\n// compBlocks holds, per high-byte block, 257 cumulative offsets into\n")
	fmt.Fprint(w, "// compSecond/compReplacement; offset[lo] is the start index for starter\n")
	fmt.Fprint(w, "// (block<<8)|lo. Within a starter's range, compSecond is sorted ascending\n")
	fmt.Fprint(w, "// so the composer can binary search it.\n")
	writeOffsetBlocks(w, "compBlocks", blocks, "block 0: empty sentinel")
	writeRuneRows(w, "compSecond", "compSecond holds, per starter, its composable second code points in ascending order.", seconds)
	writeRuneRows(w, "compReplacement", "compReplacement is parallel to compSecond: the composed result for each pair.", replacements)
}

func writeUint16Rows(w *gen.CodeWriter, name, comment string, vals []uint16) {
	fmt.Fprintf(w, "\n// %s\n", comment)
	fmt.Fprintf(w, "var %s = [...]uint16{\n", name)
	for i := 0; i < len(vals); i += 16 {
		end := i + 16
		if end > len(vals) {
			end = len(vals)
		}
		fmt.Fprint(w, "\t")
		for _, v := range vals[i:end] {
			fmt.Fprintf(w, "%d, ", v)
		}
		fmt.Fprint(w, "\n")
	}
	fmt.Fprint(w, "}\n")
}

func writeRuneRows(w *gen.CodeWriter, name, comment string, vals []rune) {
	fmt.Fprintf(w, "\n// %s\n", comment)
	fmt.Fprintf(w, "var %s = [...]rune{\n", name)
	for i := 0; i < len(vals); i += 12 {
		end := i + 12
		if end > len(vals) {
			end = len(vals)
		}
		fmt.Fprint(w, "\t")
		for _, v := range vals[i:end] {
			fmt.Fprintf(w, "%#x, ", v)
		}
		fmt.Fprint(w, "\n")
	}
	fmt.Fprint(w, "}\n")
}

// writeByteBlocks writes a [][256]uint8 as one block literal per line,
// matching the existing hand-maintained table's layout.
func writeByteBlocks(w *gen.CodeWriter, name string, blocks [][256]uint8, zeroComment string) {
	fmt.Fprintf(w, "\nvar %s = [][256]uint8{\n", name)
	for i, b := range blocks {
		if i == 0 {
			fmt.Fprintf(w, "\t{}, // %s\n", zeroComment)
			continue
		}
		fmt.Fprint(w, "\t{")
		for j, v := range b {
			if j > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%d", v)
		}
		fmt.Fprint(w, "},\n")
	}
	fmt.Fprint(w, "}\n")
}

// writeOffsetBlocks writes a [][257]uint32 as one block literal per line.
func writeOffsetBlocks(w *gen.CodeWriter, name string, blocks [][257]uint32, zeroComment string) {
	fmt.Fprintf(w, "var %s = [][257]uint32{\n", name)
	for i, b := range blocks {
		if i == 0 {
			fmt.Fprintf(w, "\t{}, // %s\n", zeroComment)
			continue
		}
		fmt.Fprint(w, "\t{")
		for j, v := range b {
			if j > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%d", v)
		}
		fmt.Fprint(w, "},\n")
	}
	fmt.Fprint(w, "}\n")
}

func formatWithImports(path string) error {
	_, err := imports.Process(path, nil, nil)
	return err
}
