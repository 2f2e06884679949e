// This file generates tables.go from the Unicode Character Database's
// general category assignments. It is excluded from the build (see the
// //go:build line below) and is invoked only via `go generate`, mirroring
// the offline `gen.go` convention this codebase's corpus uses for its own
// large Unicode tables.

//go:build ignore

package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/go-idna/idna/internal/gen"
	"golang.org/x/tools/imports"
)

type codeRange struct{ lo, hi rune }

func main() {
	var ranges []codeRange

	// Every code point whose Unicode general category is a Letter, Mark,
	// or Number (L*, M*, N*) is PVALID for this module's purposes, plus
	// ASCII hyphen-minus (Pd, not covered by the category sweep above).
	gen.ForEachAssignedCodePoint(func(cp rune, category string) {
		if category[0] == 'L' || category[0] == 'M' || category[0] == 'N' {
			ranges = append(ranges, codeRange{cp, cp})
		}
	})
	ranges = append(ranges, codeRange{'-', '-'})

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].lo < ranges[j].lo })
	merged := mergeAdjacent(ranges)

	w := gen.NewCodeWriter()
	writeRangeTable(w, merged)
	w.WriteGoFile("tables.go", "validate")

	if _, err := imports.Process("tables.go", nil, nil); err != nil {
		log.Fatal(err)
	}
}

func mergeAdjacent(ranges []codeRange) []codeRange {
	if len(ranges) == 0 {
		return nil
	}
	out := []codeRange{ranges[0]}
	for _, r := range ranges[1:] {
		last := &out[len(out)-1]
		if r.lo <= last.hi+1 {
			if r.hi > last.hi {
				last.hi = r.hi
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// writeRangeTable emits the validRange type and the sorted, gap-merged
// validNameRanges table that ValidNameCodePoint binary-searches over.
func writeRangeTable(w *gen.CodeWriter, ranges []codeRange) {
	fmt.Fprint(w, "// validRange is a half-open-free, inclusive [lo, hi] code point range.\n")
	fmt.Fprint(w, "type validRange struct {\n\tlo, hi rune\n}\n\n")

	fmt.Fprint(w, "// validNameRanges lists every code point range accepted by ValidNameCodePoint:\n")
	fmt.Fprint(w, "// ASCII '-' and [0-9a-zA-Z], plus every Unicode letter, mark, and number\n")
	fmt.Fprint(w, "// range (general categories L*, M*, N*). Sorted and gap-merged so lookup is\n")
	fmt.Fprint(w, "// a single binary search. Uppercase ASCII survives this table because the\n")
	fmt.Fprint(w, "// mapping stage (internal/mapping) lowercases before validation ever runs;\n")
	fmt.Fprint(w, "// the range itself does not need to special-case case.\n")
	fmt.Fprint(w, "var validNameRanges = [...]validRange{\n")
	for _, r := range ranges {
		fmt.Fprintf(w, "\t{%#x, %#x},\n", r.lo, r.hi)
	}
	fmt.Fprint(w, "}\n")
}
