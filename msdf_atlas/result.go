/******************************************************************************/
/* result.go                                                                  */
/******************************************************************************/
/*                           This file is part of:                            */
/*                                KAIJU ENGINE                                */
/*                          https://kaijuengine.org                           */
/******************************************************************************/
/* MIT License                                                                */
/*                                                                            */
/* Copyright (c) 2023-present Kaiju Engine authors (AUTHORS.md).              */
/* Copyright (c) 2015-present Brent Farris.                                   */
/*                                                                            */
/* May all those that this source may reach be blessed by the LORD and find   */
/* peace and joy in life.                                                     */
/* Everyone who drinks of this water will be thirsty again; but whoever       */
/* drinks of the water that I will give him shall never thirst; John 4:13-14  */
/*                                                                            */
/* Permission is hereby granted, free of charge, to any person obtaining a    */
/* copy of this software and associated documentation files (the "Software"), */
/* to deal in the Software without restriction, including without limitation  */
/* the rights to use, copy, modify, merge, publish, distribute, sublicense,   */
/* and/or sell copies of the Software, and to permit persons to whom the      */
/* Software is furnished to do so, subject to the following conditions:       */
/*                                                                            */
/* The above copyright, blessing, biblical verse, notice and                  */
/* this permission notice shall be included in all copies or                  */
/* substantial portions of the Software.                                      */
/*                                                                            */
/* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS    */
/* OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF                 */
/* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.     */
/* IN NO EVENT SHALL THE /* AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY    */
/* CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT  */
/* OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE      */
/* OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.                              */
/******************************************************************************/

package msdf_atlas

import (
	"unicode"
	"unicode/utf8"
)

// Bounds is a rectangle in either em units (plane bounds) or atlas
// pixels (atlas bounds). A glyph without a visible shape has zero bounds.
type Bounds struct {
	Left   float32
	Bottom float32
	Right  float32
	Top    float32
}

func (b Bounds) Width() float32  { return b.Right - b.Left }
func (b Bounds) Height() float32 { return b.Top - b.Bottom }
func (b Bounds) IsZero() bool    { return b == Bounds{} }

// FontMetrics are the font wide values reported by msdf-atlas-gen,
// unmodified.
type FontMetrics struct {
	EmSize             float32
	LineHeight         float32
	Ascender           float32
	Descender          float32
	UnderlineY         float32
	UnderlineThickness float32
}

type GlyphInfo struct {
	// Char is Unicode as a rune, or utf8.RuneError when Unicode is not a
	// valid code point. Use Unicode to identify the glyph.
	Char        rune
	Unicode     int
	Advance     float32
	PlaneBounds Bounds // shape extents relative to the baseline, in ems
	AtlasBounds Bounds // pixel rectangle inside the atlas image
}

// KerningPair adjusts the advance between Unicode1 followed by Unicode2.
type KerningPair struct {
	Unicode1 int
	Unicode2 int
	Advance  float32
}

func (k KerningPair) First() rune  { return codepointRune(k.Unicode1) }
func (k KerningPair) Second() rune { return codepointRune(k.Unicode2) }

// Result is the outcome of a successful Generate call.
type Result struct {
	ImagePath string
	JSONPath  string
	// Type is the atlas type as written by the tool, e.g. "msdf".
	Type          string
	Width         int
	Height        int
	DistanceRange float32
	Metrics       FontMetrics
	Glyphs        []GlyphInfo
	Kerning       []KerningPair
}

// Glyph returns the first glyph for the given code point.
func (r *Result) Glyph(codepoint int) (GlyphInfo, bool) {
	for i := range r.Glyphs {
		if r.Glyphs[i].Unicode == codepoint {
			return r.Glyphs[i], true
		}
	}
	return GlyphInfo{}, false
}

// KerningAdvance returns the adjustment of the first matching pair, or
// zero when the pair is not kerned.
func (r *Result) KerningAdvance(first, second int) float32 {
	for i := range r.Kerning {
		if r.Kerning[i].Unicode1 == first && r.Kerning[i].Unicode2 == second {
			return r.Kerning[i].Advance
		}
	}
	return 0
}

func codepointRune(codepoint int) rune {
	if codepoint < 0 || codepoint > unicode.MaxRune {
		return utf8.RuneError
	}
	if r := rune(codepoint); utf8.ValidRune(r) {
		return r
	}
	return utf8.RuneError
}
