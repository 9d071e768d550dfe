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

import (
	"hrgrid.dev/uxerr"
	"hrgrid.dev/uxerr/failure"
)

// Classifier is an immutable, concurrency-safe view of the classification
// rules. It reduces a discriminated failure value to user-facing output.
//
// The central contract, which every implementation MUST honor: no method
// panics, and Message/Extract produce a non-empty message for every input,
// however malformed — including a nil failure. Callers never need a
// fallback of their own.
type Classifier interface {
	// Message returns the single human-readable message for the failure.
	// An empty fallback selects the classifier's configured default.
	Message(f *failure.Failure, fallback string) string

	// Extract returns the full normalized record: the message as computed
	// by Message, plus the informational passthroughs (HTTP status,
	// transport marker, raw server payload). The record is created fresh on
	// every call; calling Extract twice on the same failure yields
	// structurally equal records.
	Extract(f *failure.Failure) *uxerr.Error

	// IsNetwork reports whether the failure looks like a connectivity
	// problem (network marker, connection refused, timeout). A malformed or
	// minimal failure yields false.
	IsNetwork(f *failure.Failure) bool

	// IsAuth reports whether the failure is an authentication/authorization
	// rejection (HTTP 401 or 403). UIs use this to force a re-login flow.
	IsAuth(f *failure.Failure) bool

	// Explain returns a human-readable description of which rule resolved
	// the message. Implementations may return an empty string in production
	// builds.
	Explain(f *failure.Failure) string
}
