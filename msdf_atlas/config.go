/******************************************************************************/
/* config.go                                                                  */
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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaijuEngine/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Type selects which kind of distance field msdf-atlas-gen renders.
// The zero value is MSDF.
type Type int

const (
	MSDF Type = iota
	MTSDF
	SDF
	PSDF
)

var typeNames = [...]string{
	MSDF:  "MSDF",
	MTSDF: "MTSDF",
	SDF:   "SDF",
	PSDF:  "PSDF",
}

var lowerCaser = cases.Lower(language.Und)

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// argument is the spelling msdf-atlas-gen expects after -type
func (t Type) argument() string { return lowerCaser.String(t.String()) }

// ParseType reads an atlas type name in any letter case, e.g. "msdf".
func ParseType(name string) (Type, error) {
	for i, n := range typeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Type(i), nil
		}
	}
	return MSDF, fmt.Errorf("%w: unknown atlas type %q", ErrInvalidConfig, name)
}

// Config describes one atlas generation run.
type Config struct {
	// FontPath is the .ttf/.otf file to build the atlas from. Required.
	FontPath string
	Type     Type
	// Width and Height are the requested atlas dimensions in pixels. The
	// tool reports the dimensions it actually used in the Result.
	Width  int
	Height int
	// GlyphSize is the em size in pixels each glyph is rendered at.
	GlyphSize int
	// PixelRange is the distance field range in pixels.
	PixelRange int
	// CharsetFile optionally restricts the glyph set, in msdf-atlas-gen
	// charset syntax. When empty the tool uses its default ASCII set.
	CharsetFile string
	// OutputImagePath and OutputJSONPath default to unique files in the
	// temp directory when empty.
	OutputImagePath string
	OutputJSONPath  string
}

// DefaultConfig returns the settings used for any zero valued field of
// a Config passed to Generate.
func DefaultConfig() Config {
	return Config{
		Type:       MSDF,
		Width:      1024,
		Height:     1024,
		GlyphSize:  48,
		PixelRange: 4,
	}
}

// Validate reports configuration errors that can be found without
// touching the file system.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.FontPath) == "" {
		return fmt.Errorf("%w: FontPath is required", ErrInvalidConfig)
	}
	return nil
}

// withDefaults fills zero values only. Negative values are left for
// msdf-atlas-gen to reject.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	if c.GlyphSize == 0 {
		c.GlyphSize = d.GlyphSize
	}
	if c.PixelRange == 0 {
		c.PixelRange = d.PixelRange
	}
	return c
}

func (c *Config) outputPaths() (imagePath, jsonPath string) {
	imagePath, jsonPath = c.OutputImagePath, c.OutputJSONPath
	if imagePath != "" && jsonPath != "" {
		return imagePath, jsonPath
	}
	id := uuid.New().String()
	if imagePath == "" {
		imagePath = filepath.Join(os.TempDir(), "atlas_"+id+".png")
	}
	if jsonPath == "" {
		jsonPath = filepath.Join(os.TempDir(), "atlas_"+id+".json")
	}
	return imagePath, jsonPath
}
