package gen

import (
	"bufio"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

func isLetter(r rune) bool { return unicode.IsLetter(r) }
func isMark(r rune) bool   { return unicode.IsMark(r) }
func isNumber(r rune) bool { return unicode.IsNumber(r) }

// WriteGoFile formats b as Go source, prepends the generated-file header and
// package clause, and writes the result to filename. CodeWriter.WriteGoFile
// calls this after appending its size/checksum trailer comment.
func WriteGoFile(filename, pkg string, b []byte) {
	src := fmt.Sprintf("// Code generated by gen.go from the Unicode Character Database. DO NOT EDIT.\n\npackage %s\n\n%s", pkg, b)
	out, err := format.Source([]byte(src))
	if err != nil {
		// Write the unformatted source so the failure is inspectable rather
		// than silently dropped.
		out = []byte(src)
	}
	if err2 := os.WriteFile(filename, out, 0644); err2 != nil {
		panic(err2)
	}
}

// These field indexes mirror the semicolon-delimited field layout of
// UnicodeData.txt: 0 code point, 1 name, 2 general category, 3 canonical
// combining class, 5 decomposition mapping (optionally prefixed with a
// <tag> for compatibility decompositions).
const (
	fieldCodePoint = iota
	fieldName
	fieldCategory
	fieldCombiningClass
	fieldBidiClass
	fieldDecomposition
)

// ParseUnicodeData streams a local UnicodeData.txt snapshot and invokes fn
// once per assigned code point with its combining class and canonical
// decomposition (isCompat reports whether the mapping field carried a
// compatibility <tag>, in which case decomp is still populated but callers
// that only want canonical decompositions should skip it).
func ParseUnicodeData(path string, fn func(cp rune, ccc uint8, decomp []rune, isCompat bool)) {
	f, err := os.Open(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) <= fieldDecomposition {
			continue
		}
		cp, err := strconv.ParseInt(fields[fieldCodePoint], 16, 32)
		if err != nil {
			continue
		}
		ccc, _ := strconv.Atoi(fields[fieldCombiningClass])

		var decomp []rune
		isCompat := false
		if raw := strings.TrimSpace(fields[fieldDecomposition]); raw != "" {
			if strings.HasPrefix(raw, "<") {
				isCompat = true
				if i := strings.IndexByte(raw, '>'); i >= 0 {
					raw = strings.TrimSpace(raw[i+1:])
				}
			}
			for _, tok := range strings.Fields(raw) {
				v, err := strconv.ParseInt(tok, 16, 32)
				if err != nil {
					continue
				}
				decomp = append(decomp, rune(v))
			}
		}
		fn(rune(cp), uint8(ccc), decomp, isCompat)
	}
	if err := sc.Err(); err != nil && err != io.EOF {
		panic(err)
	}
}

// ForEachAssignedCodePoint calls fn once for every code point in the Basic
// Multilingual Plane and beyond that Go's unicode package reports a
// Letter, Mark, or Number classification for, passing the matching
// one-letter general-category prefix ("L", "M", or "N").
//
// Unlike ParseUnicodeData, this does not need a local UCD snapshot: the Go
// standard library already embeds the relevant category range tables, so
// generation-time classification can ride directly on unicode.IsLetter /
// unicode.IsMark / unicode.IsNumber.
func ForEachAssignedCodePoint(fn func(cp rune, category string)) {
	for cp := rune(0); cp <= 0x10FFFF; cp++ {
		if cp >= 0xD800 && cp <= 0xDFFF {
			continue
		}
		switch {
		case isLetter(cp):
			fn(cp, "L")
		case isMark(cp):
			fn(cp, "M")
		case isNumber(cp):
			fn(cp, "N")
		}
	}
}
