/*
   Copyright 2026 The HRGrid Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package uxerr

import (
	"fmt"

	"hrgrid.dev/uxerr/marker"
)

// Error is the normalized, user-facing error record for hrgrid UIs.
//
// It is what a screen gets back after an arbitrary remote-call failure has
// been classified:
//   - Message: a single human-readable sentence, always non-empty;
//   - Status: the HTTP status code, when the failure carried one;
//   - Code: an optional transport-level marker (connection refused, timeout);
//   - Data: the server-supplied response body, passed through unmodified so
//     callers can inspect structured payloads;
//   - Cause: the wrapped underlying error for debugging / unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Message is the human-readable explanation. This is the text a UI
	// renders next to the failing control. Producers MUST keep it non-empty;
	// the classify package guarantees this for every input it sees.
	Message string

	// Status is the HTTP status code of the failing response, or 0 when the
	// failure never reached (or never came from) an HTTP exchange.
	Status int

	// Code refines the failure with a transport-level marker, e.g.
	// marker.ConnRefused or marker.Timeout. May be empty.
	Code marker.Code

	// Data carries the raw server-supplied payload (typically a decoded JSON
	// body). It is an informational passthrough: the classifier never
	// re-derives anything from it after construction.
	Data any

	// Cause holds the wrapped underlying error (if any). Used for
	// errors.Is / errors.As and for debugging in lower layers.
	Cause error
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return uxerr.E("The server is not reachable at the moment.",
//	    uxerr.WithCodeOption(marker.ConnRefused),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(msg string, opts ...Option) *Error {
	e := &Error{Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<message>
//
// prefixed with "status <n>: " when an HTTP status is known, or with
// "<marker>: " when only a transport marker is known. This keeps log lines
// scannable without duplicating transport detail that is already structured.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Status != 0 {
		return fmt.Sprintf("status %d: %s", e.Status, e.Message)
	}
	if e.Code != marker.Empty {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// WithMessage returns a shallow copy of e with a replaced human message.
// Useful when a screen wants to keep the classification but present the
// text in a different context.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithStatus returns a shallow copy of e with the given HTTP status set.
// The original error is not modified.
func (e *Error) WithStatus(status int) *Error {
	cp := *e
	cp.Status = status
	return &cp
}

// WithCode returns a shallow copy of e with the given transport marker set.
func (e *Error) WithCode(c marker.Code) *Error {
	cp := *e
	cp.Code = c
	return &cp
}

// WithData returns a shallow copy of e with the server payload attached.
// The payload is stored as-is; callers own its (im)mutability.
func (e *Error) WithData(data any) *Error {
	cp := *e
	cp.Data = data
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
