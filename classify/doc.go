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

// Package classify reduces discriminated failure values
// (hrgrid.dev/uxerr/failure) to user-facing output: one human-readable
// message, the normalized record (hrgrid.dev/uxerr), and the network/auth
// predicates that drive UI branching.
//
// # Overview
//
// A remote call can fail as an HTTP error response, a connection-level
// error, a plain Go error, or a bare string. The screens that render these
// failures need exactly one sentence — and the screens' controllers need to
// know two things: "is this a connectivity problem?" and "should I force a
// re-login?". Package classify answers all three deterministically, in a
// way that is:
//
//   - total — every input, however malformed (including nil), produces a
//     non-empty message; no method panics. Callers never need their own
//     fallback string;
//   - immutable — a Classifier is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change messages per status, per marker,
//     and append cleanup rules.
//
// # Resolution model
//
// A Classifier resolves the message in the following order:
//
//  1. transport body probe: "message", then "error", then "data.message" —
//     a server-supplied message wins regardless of status code;
//  2. fixed per-status message (401 session expired, 403 permission
//     denied, 404 not found, 500 server error; unrecognized statuses fall
//     through rather than getting a misleading specific message);
//  3. for generic errors: the marker sentence when a boundary adapter
//     recognized a transport-level condition, otherwise the ordered
//     cleanup sequence (drop "Request failed with status code N" noise,
//     strip "Error:" prefixes, rewrite network/timeout/refused markers
//     into guidance sentences);
//  4. raw strings verbatim;
//  5. the fallback message.
//
// # Building a classifier
//
// A Classifier is created once and reused:
//
//	c, err := classify.New(
//	    classify.WithStatusMessage(409, "Someone else edited this record. Reload and retry."),
//	    classify.WithRewrite("quota", `(?i)quota exceeded`, "Storage quota exceeded. Contact your administrator."),
//	)
//	if err != nil {
//	    // invalid rewrite pattern, etc.
//	}
//
//	msg := c.Message(failure.Transport(409, nil), "")
//
// The package-level functions (Message, Extract, IsNetwork, IsAuth) are
// bound to a shared default classifier for callers that need no
// customization.
//
// # Diagnostics
//
// For debugging and tests, Classifier.Explain returns a human-readable
// trace of how a particular failure was resolved, including which tier
// matched and, for body and rewrite matches, which field or rules were
// involved. This is intended for inspection and logging, not for stable
// machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Classifier does not observe further changes to the caller's maps or
// slices. This makes it safe to share a single instance across screens,
// goroutines, and requests.
package classify
