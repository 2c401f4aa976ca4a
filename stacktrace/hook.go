// Copyright 2026 The Hardhat Authors
// This file is part of Hardhat.
//
// Hardhat is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hardhat is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Hardhat. If not, see <http://www.gnu.org/licenses/>.

// Process-wide stack rendering lives in this file only. The renderer is
// the one piece of shared mutable state in the package; everything else
// is a pure transformation.

package stacktrace

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-stack/stack"
)

// Renderer assembles the final stack text from a message and formatted
// frame lines. Embedders may install their own with SwapRenderer.
//
// A Renderer runs while the install-window lock is held and must not
// call SwapRenderer or CurrentRenderer itself; the lock is not
// reentrant and doing so deadlocks.
type Renderer func(message string, frames []string) string

var (
	rendererMu sync.Mutex
	renderer   Renderer = renderDefault
)

func renderDefault(message string, frames []string) string {
	var b strings.Builder
	b.WriteString(message)
	for _, frame := range frames {
		b.WriteString("\n    at ")
		b.WriteString(frame)
	}
	return b.String()
}

// SwapRenderer installs r as the process-wide renderer and returns the
// previous one, so callers can restore it.
func SwapRenderer(r Renderer) (previous Renderer) {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	previous = renderer
	renderer = r
	return previous
}

// CurrentRenderer returns the installed renderer.
func CurrentRenderer() Renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	return renderer
}

// renderWithCallSites materializes the stack text for one diagnostic. It
// temporarily installs a renderer that prepends the synthesized call
// sites to whatever native frames it is given and delegates the final
// assembly to the previously installed renderer.
//
// The mutex is held for the whole install-materialize-restore window so
// concurrent encodes cannot interleave their installs, and the restore
// runs in a defer so a panicking renderer still leaves the previous one
// in place. A leaked temporary renderer would corrupt every later stack
// rendered in this process.
func renderWithCallSites(message string, sites []CallSite, native []string) string {
	rendererMu.Lock()
	defer rendererMu.Unlock()

	previous := renderer
	renderer = func(msg string, frames []string) string {
		lines := make([]string, 0, len(sites)+len(frames))
		for _, site := range sites {
			lines = append(lines, site.String())
		}
		lines = append(lines, frames...)
		return previous(msg, lines)
	}
	defer func() { renderer = previous }()

	return renderer(message, native)
}

// captureNativeStack formats the current goroutine's stack, dropping the
// runtime frames, its own frame and skip additional frames above it.
func captureNativeStack(skip int) []string {
	calls := stack.Trace().TrimRuntime()
	if drop := skip + 1; len(calls) > drop {
		calls = calls[drop:]
	}
	frames := make([]string, 0, len(calls))
	for _, call := range calls {
		frame := call.Frame()
		frames = append(frames, fmt.Sprintf("%s (%s:%d)", frame.Function, frame.File, frame.Line))
	}
	return frames
}
