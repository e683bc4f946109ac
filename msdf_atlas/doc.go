/******************************************************************************/
/* doc.go                                                                     */
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

// Package msdf_atlas generates signed distance field font atlases by
// driving the msdf-atlas-gen command line tool.
//
// A call to [Generate] locates the platform binary under
// runtimes/<rid>/native/ next to the running executable, runs it with
// the arguments derived from a [Config], waits for it to exit, and reads
// the JSON layout it writes into a [Result]:
//
//	cfg := msdf_atlas.DefaultConfig()
//	cfg.FontPath = "Roboto-Regular.ttf"
//	cfg.Width, cfg.Height = 512, 512
//	res, err := msdf_atlas.Generate(context.Background(), cfg)
//	if err != nil {
//	    return err
//	}
//	// res.ImagePath is the packed PNG, res.Glyphs holds the layout
//
// No timeout is applied. Pass a context with a deadline to bound how
// long a stuck tool may block the caller.
//
// Plane bounds are in em units relative to the baseline, atlas bounds are
// pixel rectangles inside the image, and font metrics are passed through
// exactly as msdf-atlas-gen reports them.
package msdf_atlas
