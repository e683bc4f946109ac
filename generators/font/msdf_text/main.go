/******************************************************************************/
/* main.go                                                                    */
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

package main

import (
	"context"
	"fmt"
	"log/slog"
	"msdfatlas/generators/font/font_data"
	"msdfatlas/generators/font/font_info"
	"msdfatlas/klib"
	"msdfatlas/msdf_atlas"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tdewolff/argp"
	"golang.org/x/text/unicode/runenames"
)

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

type Generate struct {
	Font     string `index:"0" desc:"Font file, or a directory of .ttf files"`
	Type     string `desc:"Atlas type: sdf, psdf, msdf or mtsdf"`
	Width    int    `desc:"Atlas width in pixels"`
	Height   int    `desc:"Atlas height in pixels"`
	Size     int    `desc:"Glyph em size in pixels"`
	PxRange  int    `name:"pxrange" desc:"Distance field range in pixels"`
	Charset  string `desc:"Charset file in msdf-atlas-gen syntax"`
	ImageOut string `name:"imageout" desc:"Output image path"`
	JSON     string `name:"json" desc:"Output JSON path"`
	Bin      string `desc:"Also write engine font data to this path"`
	BinDir   string `name:"bin-dir" desc:"Directory holding runtimes/<rid>/native/msdf-atlas-gen"`
	Verbose  bool   `short:"v" desc:"Debug logging"`
}

func (cmd *Generate) config(fontPath string) (msdf_atlas.Config, error) {
	t, err := msdf_atlas.ParseType(cmd.Type)
	if err != nil {
		return msdf_atlas.Config{}, err
	}
	return msdf_atlas.Config{
		FontPath:        fontPath,
		Type:            t,
		Width:           cmd.Width,
		Height:          cmd.Height,
		GlyphSize:       cmd.Size,
		PixelRange:      cmd.PxRange,
		CharsetFile:     cmd.Charset,
		OutputImagePath: cmd.ImageOut,
		OutputJSONPath:  cmd.JSON,
	}, nil
}

func (cmd *Generate) Run() error {
	setupLogging(cmd.Verbose)
	gen := &msdf_atlas.Generator{Platform: msdf_atlas.HostPlatform{Dir: cmd.BinDir}}
	s, err := os.Stat(cmd.Font)
	if err != nil {
		return err
	}
	if !s.IsDir() {
		cfg, err := cmd.config(cmd.Font)
		if err != nil {
			return err
		}
		res, err := gen.Generate(context.Background(), cfg)
		if err != nil {
			return err
		}
		printSummary(res)
		if cmd.Bin != "" {
			return writeBin(res, cmd.Bin)
		}
		return nil
	}
	outDir := filepath.Join(cmd.Font, "out")
	klib.Must(os.MkdirAll(outDir, os.ModePerm))
	return filepath.Walk(cmd.Font, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && path == outDir {
			return filepath.SkipDir
		}
		if filepath.Ext(path) != ".ttf" {
			return nil
		}
		name := strings.TrimSuffix(filepath.Base(path), ".ttf")
		slog.Info("processing", "font", path)
		cfg, err := cmd.config(path)
		if err != nil {
			return err
		}
		cfg.OutputImagePath = filepath.Join(outDir, name+".png")
		cfg.OutputJSONPath = filepath.Join(outDir, name+".json")
		res, err := gen.Generate(context.Background(), cfg)
		if err != nil {
			return err
		}
		return writeBin(res, filepath.Join(outDir, name+".bin"))
	})
}

func writeBin(res *msdf_atlas.Result, path string) error {
	fout, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fout.Close()
	if err := font_data.Serialize(font_data.FromAtlas(res), fout); err != nil {
		return err
	}
	return fout.Close()
}

func printSummary(res *msdf_atlas.Result) {
	fmt.Println("Atlas generated successfully!")
	fmt.Printf("  Image: %s\n", res.ImagePath)
	fmt.Printf("  Size: %dx%d\n", res.Width, res.Height)
	fmt.Printf("  Glyphs: %d\n", len(res.Glyphs))
	fmt.Printf("  Kerning pairs: %d\n", len(res.Kerning))
	fmt.Println("\nFont Metrics:")
	fmt.Printf("  Line height: %.2f\n", res.Metrics.LineHeight)
	fmt.Printf("  Ascender: %.2f\n", res.Metrics.Ascender)
	fmt.Printf("  Descender: %.2f\n", res.Metrics.Descender)
	fmt.Println("\nSample glyphs:")
	for _, g := range res.Glyphs[:min(10, len(res.Glyphs))] {
		fmt.Printf("  %q (U+%04X) %s - advance: %.2f\n",
			g.Char, g.Unicode, runenames.Name(g.Char), g.Advance)
	}
}

type Info struct {
	Font string `index:"0" desc:"Font file"`
}

func (cmd *Info) Run() error {
	info, err := font_info.Describe(cmd.Font)
	if err != nil {
		return err
	}
	fmt.Printf("Family: %s\n", info.Family)
	fmt.Printf("Full name: %s\n", info.FullName)
	fmt.Printf("Units per em: %d\n", info.UnitsPerEm)
	fmt.Printf("Glyphs: %d\n", info.NumGlyphs)
	return nil
}

type Charset struct {
	Font   string `index:"0" desc:"Font file"`
	Output string `short:"o" desc:"Charset file to write, stdout when empty"`
	From   string `desc:"First code point, e.g. 0x20"`
	To     string `desc:"Last code point, e.g. 0x7E"`
}

func (cmd *Charset) Run() error {
	lo, err := strconv.ParseInt(cmd.From, 0, 32)
	if err != nil {
		return fmt.Errorf("invalid --from: %w", err)
	}
	hi, err := strconv.ParseInt(cmd.To, 0, 32)
	if err != nil {
		return fmt.Errorf("invalid --to: %w", err)
	}
	runes, err := font_info.Coverage(cmd.Font, rune(lo), rune(hi))
	if err != nil {
		return err
	}
	if cmd.Output == "" {
		return font_info.WriteCharset(os.Stdout, runes)
	}
	fout, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	defer fout.Close()
	if err := font_info.WriteCharset(fout, runes); err != nil {
		return err
	}
	slog.Info("wrote charset", "path", cmd.Output, "codepoints", len(runes))
	return fout.Close()
}

func main() {
	cmd := argp.New("Generate MSDF font atlases with msdf-atlas-gen")
	cmd.AddCmd(&Generate{
		Type:     "msdf",
		Width:    512,
		Height:   512,
		Size:     64,
		PxRange:  4,
		ImageOut: "output-atlas.png",
		JSON:     "output-atlas.json",
	}, "generate", "Generate an atlas image and its glyph layout")
	cmd.AddCmd(&Info{}, "info", "Print font information")
	cmd.AddCmd(&Charset{From: "0x20", To: "0x7E"}, "charset", "Write a charset covering the glyphs a font provides")
	cmd.Parse()
}
