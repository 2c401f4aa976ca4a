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

package stacktrace

// DiagnosticError is the designed output of Encode: a contract-level
// execution failure with a synthesized source-level stack. It is a plain
// error to the rest of the system.
//
// It intentionally has no ErrorCode method. Generic RPC error middleware
// dispatches on that method, and a diagnostic must never be silently
// reinterpreted as a protocol error.
type DiagnosticError struct {
	message string
	frames  []CallSite
	stack   string
}

func (e *DiagnosticError) Error() string { return e.message }

// Message is never empty; Encode falls back to the caller's default.
func (e *DiagnosticError) Message() string { return e.message }

// Frames is the synthesized call stack in trace order, outermost first.
func (e *DiagnosticError) Frames() []CallSite { return e.frames }

// Stack is the materialized textual stack, synthesized frames first,
// native frames after.
func (e *DiagnosticError) Stack() string { return e.stack }

// Encode builds the diagnostic for a failed execution trace.
//
// The last frame drives the message; when its kind has no message rule
// fallbackMessage is used. Every frame contributes one call site, in
// trace order. nativeStack replaces the captured Go stack when non-nil;
// otherwise Encode captures its caller's stack, minus its own frame.
//
// The textual stack is materialized immediately, through the scoped
// renderer swap in hook.go, so the installed renderer is guaranteed to be
// back in place when Encode returns.
func Encode(fallbackMessage string, trace Trace, nativeStack []string) *DiagnosticError {
	message := fallbackMessage
	if len(trace) > 0 {
		if synthesized, ok := FrameMessage(trace.Last()); ok {
			message = synthesized
		}
	}

	frames := make([]CallSite, 0, len(trace))
	for _, frame := range trace {
		frames = append(frames, FrameCallSite(frame))
	}

	if nativeStack == nil {
		nativeStack = captureNativeStack(1)
	}

	return &DiagnosticError{
		message: message,
		frames:  frames,
		stack:   renderWithCallSites(message, frames, nativeStack),
	}
}
