/******************************************************************************/
/* generator.go                                                               */
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
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Generator ties the binary lookup, the process run and the JSON parsing
// together. The zero value uses the host platform.
type Generator struct {
	Platform Platform
	Runner   Runner
}

// DefaultGenerator is used by the package level Generate.
var DefaultGenerator = &Generator{Platform: HostPlatform{}}

// Generate runs msdf-atlas-gen for cfg with DefaultGenerator.
func Generate(ctx context.Context, cfg Config) (*Result, error) {
	return DefaultGenerator.Generate(ctx, cfg)
}

// Generate validates cfg, runs msdf-atlas-gen and parses its output. It
// blocks until the tool exits. Nothing is retried, and there is no
// partial result on error.
func (g *Generator) Generate(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if s, err := os.Stat(cfg.FontPath); err != nil || s.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrFontNotFound, cfg.FontPath)
	}
	platform := g.Platform
	if platform == nil {
		platform = HostPlatform{}
	}
	bin, err := LocateBinary(platform)
	if err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	imagePath, jsonPath := cfg.outputPaths()
	args := BuildArguments(cfg, imagePath, jsonPath)
	slog.Debug("running msdf-atlas-gen", "command", CommandLine(bin, args))
	stdout, _, err := g.Runner.Run(ctx, bin, args)
	if err != nil {
		return nil, err
	}
	if len(stdout) > 0 {
		slog.Debug("msdf-atlas-gen finished", "output", string(stdout))
	}
	res, err := ParseResult(jsonPath, imagePath)
	if err != nil {
		return nil, err
	}
	slog.Debug("generated font atlas", "image", res.ImagePath,
		"width", res.Width, "height", res.Height,
		"glyphs", len(res.Glyphs), "kerning", len(res.Kerning))
	return res, nil
}
