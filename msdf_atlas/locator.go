/******************************************************************************/
/* locator.go                                                                 */
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
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const binaryName = "msdf-atlas-gen"

// Platform is the process wide state the binary lookup depends on.
type Platform interface {
	// OS returns a GOOS value such as "linux" or "windows".
	OS() string
	// BaseDir is the directory holding the runtimes/ tree.
	BaseDir() (string, error)
	Exists(path string) bool
	MakeExecutable(path string) error
}

// HostPlatform is the Platform of the running process. Dir overrides the
// base directory, which otherwise is the directory of the executable.
type HostPlatform struct {
	Dir string
}

func (HostPlatform) OS() string { return runtime.GOOS }

func (p HostPlatform) BaseDir() (string, error) {
	if p.Dir != "" {
		return p.Dir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func (HostPlatform) Exists(path string) bool {
	s, err := os.Stat(path)
	return err == nil && !s.IsDir()
}

func (HostPlatform) MakeExecutable(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.Chmod(path, s.Mode().Perm()|0o111)
}

func runtimeIdentifier(goos string) (rid, name string, err error) {
	switch goos {
	case "windows":
		return "win-x64", binaryName + ".exe", nil
	case "linux":
		return "linux-x64", binaryName, nil
	default:
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// LocateBinary returns the absolute path of the msdf-atlas-gen binary
// shipped under <base>/runtimes/<rid>/native/. Outside of Windows it also
// tries to set the execute bits. That failure is only logged, and a binary
// that still cannot run fails later with ErrStartFailed.
func LocateBinary(p Platform) (string, error) {
	goos := p.OS()
	rid, name, err := runtimeIdentifier(goos)
	if err != nil {
		return "", err
	}
	base, err := p.BaseDir()
	if err != nil {
		return "", fmt.Errorf("%w: resolving base directory: %w", ErrBinaryNotFound, err)
	}
	path := filepath.Join(base, "runtimes", rid, "native", name)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if !p.Exists(path) {
		return "", fmt.Errorf("%w: %s", ErrBinaryNotFound, path)
	}
	if goos != "windows" {
		if err := p.MakeExecutable(path); err != nil {
			slog.Warn("failed to mark msdf-atlas-gen executable", "path", path, "error", err)
		}
	}
	return path, nil
}
