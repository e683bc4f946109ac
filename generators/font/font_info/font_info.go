// Package font_info inspects font files before they are handed to
// msdf-atlas-gen and writes charset files for it.
package font_info

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/image/font/sfnt"
)

type Info struct {
	Family     string
	FullName   string
	UnitsPerEm int
	NumGlyphs  int
}

func parse(path string) (*sfnt.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font_info: failed to parse %s: %w", path, err)
	}
	return f, nil
}

// Describe reads the naming and size information of a TrueType or
// OpenType font.
func Describe(path string) (Info, error) {
	f, err := parse(path)
	if err != nil {
		return Info{}, err
	}
	var buf sfnt.Buffer
	info := Info{
		UnitsPerEm: int(f.UnitsPerEm()),
		NumGlyphs:  f.NumGlyphs(),
	}
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil {
		info.Family = name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil {
		info.FullName = name
	}
	return info, nil
}

// Coverage lists the code points in [lo, hi] that map to a glyph other
// than .notdef, in ascending order.
func Coverage(path string, lo, hi rune) ([]rune, error) {
	if lo > hi {
		return nil, fmt.Errorf("font_info: empty range %#x..%#x", lo, hi)
	}
	f, err := parse(path)
	if err != nil {
		return nil, err
	}
	var buf sfnt.Buffer
	var runes []rune
	for r := lo; r <= hi; r++ {
		if idx, err := f.GlyphIndex(&buf, r); err == nil && idx != 0 {
			runes = append(runes, r)
		}
	}
	return runes, nil
}

// WriteCharset writes runes in msdf-atlas-gen charset syntax, folding
// consecutive code points into [first, last] ranges.
func WriteCharset(w io.Writer, runes []rune) error {
	sorted := slices.Clone(runes)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	out := bufio.NewWriter(w)
	for i := 0; i < len(sorted); {
		j := i
		for j+1 < len(sorted) && sorted[j+1] == sorted[j]+1 {
			j++
		}
		if i > 0 {
			out.WriteString(", ")
		}
		if i == j {
			fmt.Fprintf(out, "0x%X", sorted[i])
		} else {
			fmt.Fprintf(out, "[0x%X, 0x%X]", sorted[i], sorted[j])
		}
		i = j + 1
	}
	out.WriteString("\n")
	return out.Flush()
}
