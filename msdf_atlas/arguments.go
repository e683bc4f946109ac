/******************************************************************************/
/* arguments.go                                                               */
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
	"strconv"
	"strings"
)

// BuildArguments returns the msdf-atlas-gen argument list for cfg, always
// in the same order. Values are not validated here.
func BuildArguments(cfg Config, imagePath, jsonPath string) []string {
	args := []string{
		"-font", cfg.FontPath,
		"-type", cfg.Type.argument(),
		"-dimensions", strconv.Itoa(cfg.Width), strconv.Itoa(cfg.Height),
		"-size", strconv.Itoa(cfg.GlyphSize),
		"-pxrange", strconv.Itoa(cfg.PixelRange),
		"-format", "png",
		"-imageout", imagePath,
		"-json", jsonPath,
	}
	if cfg.CharsetFile != "" {
		args = append(args, "-charset", cfg.CharsetFile)
	}
	return args
}

// CommandLine renders bin and args as one line for logs, quoting any
// element that contains whitespace.
func CommandLine(bin string, args []string) string {
	sb := strings.Builder{}
	sb.WriteString(quoteArgument(bin))
	for _, a := range args {
		sb.WriteByte(' ')
		sb.WriteString(quoteArgument(a))
	}
	return sb.String()
}

func quoteArgument(s string) string {
	if s == "" {
		return `""`
	}
	if strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}
