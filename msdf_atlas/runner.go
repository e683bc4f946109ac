/******************************************************************************/
/* runner.go                                                                  */
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
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Runner executes the msdf-atlas-gen process.
type Runner struct {
	// Env is the child environment; nil inherits the current process's.
	Env []string
}

// Run starts bin and blocks until it exits. Both output streams are read
// to the end before the exit status is looked at so a chatty tool can
// never stall on a full pipe. A non-zero exit yields a *ToolError.
func (r Runner) Run(ctx context.Context, bin string, args []string) (stdout, stderr []byte, err error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	if r.Env != nil {
		cmd.Env = r.Env
	}
	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("stdout pipe: %w", err)
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrStartFailed, err)
	}
	outCh := make(chan []byte, 1)
	errCh := make(chan []byte, 1)
	go func() { outCh <- readAll(outPipe) }()
	go func() { errCh <- readAll(errPipe) }()
	stdout = <-outCh
	stderr = <-errCh
	waitErr := cmd.Wait()
	if waitErr == nil {
		return stdout, stderr, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return stdout, stderr, fmt.Errorf("%w: %w", ErrToolFailed, ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return stdout, stderr, &ToolError{
			ExitCode: exitErr.ExitCode(),
			Stderr:   string(stderr),
		}
	}
	return stdout, stderr, fmt.Errorf("%w: %w", ErrToolFailed, waitErr)
}

// readAll returns whatever could be read, even when the read fails part
// way through.
func readAll(r io.Reader) []byte {
	b, _ := io.ReadAll(r)
	return b
}
