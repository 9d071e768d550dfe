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

package apis

// ErrorView is a minimal, serializable representation of a classified
// failure.
//
// This is *not* the concrete record used internally — it is the shape that
// we are comfortable handing to a rendering layer or logging as-is. Keeping
// it here (in apis) allows the edit controller, render helpers and
// application code to share the same struct.
type ErrorView struct {
	// Message is the human-readable text to render. Always non-empty.
	Message string `json:"message"`

	// Status is the HTTP status code of the failing response, when known.
	// A value of 0 means "not specified".
	Status int `json:"status,omitempty"`

	// Code is the transport-level marker, e.g. "connection_refused".
	// It MAY be empty when the failure carried an HTTP response.
	Code string `json:"code,omitempty"`

	// Network reports that the failure classified as a connectivity
	// problem. UIs typically render these with an offline affordance
	// instead of a per-field message.
	Network bool `json:"network,omitempty"`

	// Auth reports that the failure classified as an authentication or
	// authorization rejection. UIs are expected to trigger a re-login flow
	// when this is set.
	Auth bool `json:"auth,omitempty"`
}

// ErrorDescriptor is a flat, log-friendly description of a classified
// failure in the context of the field whose save produced it.
//
// This type intentionally uses strings (not the internal Path / Code value
// types) so that it can live in the public "apis" layer and survive
// JSON round-trips in whatever logging pipeline consumes it.
type ErrorDescriptor struct {
	// Field is the dot-separated path of the editable field, e.g.
	// "employee.contact.email". MAY be empty for unlabeled fields.
	Field string `json:"field,omitempty"`

	// Message is the classified human-readable message.
	Message string `json:"message"`

	// Status is the HTTP status of the failing response. 0 means unknown.
	Status int `json:"status,omitempty"`

	// Code is the transport-level marker string, if any.
	Code string `json:"code,omitempty"`

	// Cause is the raw underlying error text, for operators. MAY be empty.
	Cause string `json:"cause,omitempty"`
}
