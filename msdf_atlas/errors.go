/******************************************************************************/
/* errors.go                                                                  */
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
	"errors"
	"fmt"
)

// Sentinel errors for the msdf_atlas package.
var (
	ErrInvalidConfig       = errors.New("msdf_atlas: invalid config")
	ErrFontNotFound        = errors.New("msdf_atlas: font file not found")
	ErrUnsupportedPlatform = errors.New("msdf_atlas: only windows and linux are supported")
	ErrBinaryNotFound      = errors.New("msdf_atlas: native binary not found")
	ErrStartFailed         = errors.New("msdf_atlas: failed to start msdf-atlas-gen")
	ErrToolFailed          = errors.New("msdf_atlas: msdf-atlas-gen failed")
	ErrOutputMissing       = errors.New("msdf_atlas: output JSON not generated")
	ErrParse               = errors.New("msdf_atlas: failed to parse atlas JSON data")
)

// ToolError is returned when msdf-atlas-gen exits with a non-zero code.
// It matches ErrToolFailed with errors.Is.
type ToolError struct {
	ExitCode int
	Stderr   string // everything the tool wrote to its error stream
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("msdf_atlas: msdf-atlas-gen failed with exit code %d: %s",
		e.ExitCode, e.Stderr)
}

func (e *ToolError) Is(target error) bool { return target == ErrToolFailed }
