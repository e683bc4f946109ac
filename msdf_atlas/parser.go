/******************************************************************************/
/* parser.go                                                                  */
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
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Layout of the -json file written by msdf-atlas-gen. Key matching is
// case-insensitive.
type jsonBounds struct {
	Left   float32 `json:"left"`
	Bottom float32 `json:"bottom"`
	Right  float32 `json:"right"`
	Top    float32 `json:"top"`
}

type jsonGlyph struct {
	Unicode     int         `json:"unicode"`
	Advance     float32     `json:"advance"`
	PlaneBounds *jsonBounds `json:"planeBounds"`
	AtlasBounds *jsonBounds `json:"atlasBounds"`
}

type jsonAtlas struct {
	Type          string  `json:"type"`
	DistanceRange float32 `json:"distanceRange"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
}

type jsonMetrics struct {
	EmSize             float32 `json:"emSize"`
	LineHeight         float32 `json:"lineHeight"`
	Ascender           float32 `json:"ascender"`
	Descender          float32 `json:"descender"`
	UnderlineY         float32 `json:"underlineY"`
	UnderlineThickness float32 `json:"underlineThickness"`
}

type jsonKerning struct {
	Unicode1 int     `json:"unicode1"`
	Unicode2 int     `json:"unicode2"`
	Advance  float32 `json:"advance"`
}

type jsonAtlasData struct {
	Atlas   *jsonAtlas    `json:"atlas"`
	Metrics *jsonMetrics  `json:"metrics"`
	Glyphs  []jsonGlyph   `json:"glyphs"`
	Kerning []jsonKerning `json:"kerning"`
}

func (b *jsonBounds) bounds() Bounds {
	if b == nil {
		return Bounds{}
	}
	return Bounds{Left: b.Left, Bottom: b.Bottom, Right: b.Right, Top: b.Top}
}

// ParseResult reads the JSON layout at jsonPath. imagePath is only
// recorded in the Result. A missing file is ErrOutputMissing, anything
// unreadable or incomplete is ErrParse.
func ParseResult(jsonPath, imagePath string) (*Result, error) {
	data, err := os.ReadFile(jsonPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrOutputMissing, jsonPath)
	} else if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	res, err := decodeResult(data)
	if err != nil {
		return nil, err
	}
	res.ImagePath = imagePath
	res.JSONPath = jsonPath
	return res, nil
}

func decodeResult(data []byte) (*Result, error) {
	var doc *jsonAtlasData
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}
	if doc.Atlas == nil {
		return nil, fmt.Errorf("%w: missing atlas section", ErrParse)
	}
	if doc.Metrics == nil {
		return nil, fmt.Errorf("%w: missing metrics section", ErrParse)
	}
	res := &Result{
		Type:          doc.Atlas.Type,
		Width:         doc.Atlas.Width,
		Height:        doc.Atlas.Height,
		DistanceRange: doc.Atlas.DistanceRange,
		Metrics: FontMetrics{
			EmSize:             doc.Metrics.EmSize,
			LineHeight:         doc.Metrics.LineHeight,
			Ascender:           doc.Metrics.Ascender,
			Descender:          doc.Metrics.Descender,
			UnderlineY:         doc.Metrics.UnderlineY,
			UnderlineThickness: doc.Metrics.UnderlineThickness,
		},
		Glyphs:  make([]GlyphInfo, len(doc.Glyphs)),
		Kerning: make([]KerningPair, len(doc.Kerning)),
	}
	for i, g := range doc.Glyphs {
		res.Glyphs[i] = GlyphInfo{
			Char:        codepointRune(g.Unicode),
			Unicode:     g.Unicode,
			Advance:     g.Advance,
			PlaneBounds: g.PlaneBounds.bounds(),
			AtlasBounds: g.AtlasBounds.bounds(),
		}
	}
	for i, k := range doc.Kerning {
		res.Kerning[i] = KerningPair{
			Unicode1: k.Unicode1,
			Unicode2: k.Unicode2,
			Advance:  k.Advance,
		}
	}
	return res, nil
}
