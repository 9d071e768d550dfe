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

import "hrgrid.dev/uxerr/marker"

// Option is a functional option for constructing or transforming an Error.
// It always takes an *Error and returns a (possibly new) *Error.
type Option func(*Error) *Error

// WithStatusOption sets the HTTP status on the error being constructed.
// Intended to be used with E(...).
func WithStatusOption(status int) Option {
	return func(e *Error) *Error {
		return e.WithStatus(status)
	}
}

// WithCodeOption sets the transport marker on the error being constructed.
// Intended to be used with E(...).
func WithCodeOption(c marker.Code) Option {
	return func(e *Error) *Error {
		return e.WithCode(c)
	}
}

// WithDataOption attaches the server payload on construction.
// Intended to be used with E(...).
func WithDataOption(data any) Option {
	return func(e *Error) *Error {
		return e.WithData(data)
	}
}

// WithCauseOption attaches a cause on construction.
// Intended to be used with E(...).
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}
