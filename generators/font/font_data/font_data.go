/******************************************************************************/
/* font_data.go                                                               */
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

package font_data

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"msdfatlas/msdf_atlas"
)

type GlyphRect struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

type GlyphData struct {
	Unicode     int32
	Advance     float32
	PlaneBounds GlyphRect // The bounding box of the glyph as it should be placed on the baseline
	AtlasBounds GlyphRect // The bounding box of the glyph in the atlas
}

type FontData struct {
	Width              int32
	Height             int32
	EmSize             float32
	LineHeight         float32
	Ascender           float32
	Descender          float32
	UnderlineY         float32
	UnderlineThickness float32
	IsMsdf             bool
	Glyphs             []GlyphData
}

// maxGlyphs guards Deserialize against a corrupt glyph count.
const maxGlyphs = 1 << 20

var ErrCorrupt = errors.New("font_data: corrupt font data")

func rect(b msdf_atlas.Bounds) GlyphRect {
	return GlyphRect{Left: b.Left, Top: b.Top, Right: b.Right, Bottom: b.Bottom}
}

// FromAtlas converts a generated atlas into the engine's font data.
func FromAtlas(res *msdf_atlas.Result) FontData {
	t, err := msdf_atlas.ParseType(res.Type)
	fontData := FontData{
		Width:              int32(res.Width),
		Height:             int32(res.Height),
		EmSize:             res.Metrics.EmSize,
		LineHeight:         res.Metrics.LineHeight,
		Ascender:           res.Metrics.Ascender,
		Descender:          res.Metrics.Descender,
		UnderlineY:         res.Metrics.UnderlineY,
		UnderlineThickness: res.Metrics.UnderlineThickness,
		IsMsdf:             err == nil && (t == msdf_atlas.MSDF || t == msdf_atlas.MTSDF),
		Glyphs:             make([]GlyphData, len(res.Glyphs)),
	}
	for i, glyph := range res.Glyphs {
		fontData.Glyphs[i] = GlyphData{
			Unicode:     int32(glyph.Unicode),
			Advance:     glyph.Advance,
			PlaneBounds: rect(glyph.PlaneBounds),
			AtlasBounds: rect(glyph.AtlasBounds),
		}
	}
	return fontData
}

func (f *FontData) header() []any {
	return []any{
		&f.Width, &f.Height, &f.EmSize, &f.LineHeight,
		&f.Ascender, &f.Descender, &f.UnderlineY, &f.UnderlineThickness,
	}
}

// Serialize writes fontData little endian: glyph count, the font header,
// every glyph, then the msdf flag.
func Serialize(fontData FontData, w io.Writer) error {
	out := bufio.NewWriter(w)
	if err := binary.Write(out, binary.LittleEndian, int32(len(fontData.Glyphs))); err != nil {
		return err
	}
	for _, v := range fontData.header() {
		if err := binary.Write(out, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	if err := binary.Write(out, binary.LittleEndian, fontData.Glyphs); err != nil {
		return err
	}
	if err := binary.Write(out, binary.LittleEndian, fontData.IsMsdf); err != nil {
		return err
	}
	return out.Flush()
}

func Deserialize(r io.Reader) (FontData, error) {
	in := bufio.NewReader(r)
	var fontData FontData
	var count int32
	if err := binary.Read(in, binary.LittleEndian, &count); err != nil {
		return fontData, err
	}
	if count < 0 || count > maxGlyphs {
		return fontData, ErrCorrupt
	}
	for _, v := range fontData.header() {
		if err := binary.Read(in, binary.LittleEndian, v); err != nil {
			return fontData, err
		}
	}
	fontData.Glyphs = make([]GlyphData, count)
	if err := binary.Read(in, binary.LittleEndian, fontData.Glyphs); err != nil {
		return fontData, err
	}
	if err := binary.Read(in, binary.LittleEndian, &fontData.IsMsdf); err != nil {
		return fontData, err
	}
	return fontData, nil
}
