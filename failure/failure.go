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

package failure

import (
	"fmt"

	"hrgrid.dev/uxerr/marker"
)

// Kind discriminates the structural shape of a failure value.
//
// The zero value is KindUnknown, so an accidentally zero-initialized
// Failure classifies to the safest possible branch (the fallback message).
type Kind int

const (
	// KindUnknown means the failure carries nothing usable. Classification
	// always resolves it to the caller's fallback message.
	KindUnknown Kind = iota

	// KindTransport means an HTTP exchange completed and the server
	// answered with an error status. Status is set; Body may carry the raw
	// response payload.
	KindTransport

	// KindMessage means a generic error with a message string. Code may
	// refine it with a transport-level marker when the boundary recognized
	// one (timeout, connection refused, ...).
	KindMessage

	// KindString means the caller supplied a bare string. It is returned
	// verbatim by classification.
	KindString
)

// String returns a short lowercase name for the kind, for logs and Explain
// output.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindMessage:
		return "message"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Failure is the discriminated failure value handed to classification.
//
// Only the fields implied by Kind are meaningful; constructors keep the
// combinations consistent, and the classify package ignores fields that do
// not belong to the kind at hand.
type Failure struct {
	// Kind tags which variant this value is.
	Kind Kind

	// Status is the HTTP status code of the error response.
	// Meaningful only for KindTransport.
	Status int

	// Body is the raw, server-supplied response payload: a decoded
	// map[string]any, raw JSON bytes, or a plain string. It is passed
	// through to the normalized record unmodified.
	// Meaningful only for KindTransport.
	Body any

	// Message is the error text. Meaningful for KindMessage and KindString.
	Message string

	// Code is an optional transport-level marker attached by the boundary
	// adapter (e.g. marker.ConnRefused when the dial was rejected).
	Code marker.Code

	// Cause holds the original error the boundary discriminated, if any.
	Cause error
}

// Transport constructs a transport failure from an HTTP error status and
// the raw response body. The body may be nil when the response had none.
func Transport(status int, body any) *Failure {
	return &Failure{Kind: KindTransport, Status: status, Body: body}
}

// Message constructs a generic message failure.
func Message(msg string) *Failure {
	return &Failure{Kind: KindMessage, Message: msg}
}

// String constructs a raw-string failure. The string is surfaced verbatim
// by classification.
func String(s string) *Failure {
	return &Failure{Kind: KindString, Message: s}
}

// Unknown constructs an empty failure. Classification resolves it to the
// fallback message.
func Unknown() *Failure {
	return &Failure{Kind: KindUnknown}
}

// WithCode returns a shallow copy of f with the given transport marker set.
// The original failure is not modified.
func (f *Failure) WithCode(c marker.Code) *Failure {
	cp := *f
	cp.Code = c
	return &cp
}

// WithCause returns a shallow copy of f with the original error attached.
// If err is nil, the original failure is returned unchanged.
func (f *Failure) WithCause(err error) *Failure {
	if err == nil {
		return f
	}
	cp := *f
	cp.Cause = err
	return &cp
}

// Error implements the built-in error interface so a *Failure can travel
// through ordinary error returns. The format is diagnostic, not user-facing;
// user-facing text comes from the classify package.
func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	switch f.Kind {
	case KindTransport:
		return fmt.Sprintf("transport failure: status %d", f.Status)
	case KindMessage, KindString:
		if f.Code != marker.Empty {
			return fmt.Sprintf("%s: %s", f.Code, f.Message)
		}
		return f.Message
	default:
		return "unknown failure"
	}
}

// Unwrap returns the original boundary error, enabling errors.Is/As chains
// through a discriminated failure.
func (f *Failure) Unwrap() error { return f.Cause }
