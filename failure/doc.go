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

// Package failure defines the tagged input variant for failure
// classification.
//
// A remote call can fail in a handful of structurally different ways: the
// server answered with an HTTP error (possibly carrying a structured body),
// the connection never happened, some library raised a plain error, or a
// caller passed a bare string. Instead of duck-probing an opaque value for
// a "response" field at every call site, the shape is discriminated exactly
// once — at the boundary where the failure is first caught — into one of
// four kinds:
//
//   - KindTransport: an HTTP exchange completed with an error status; the
//     failure carries the status code and the raw response body;
//   - KindMessage: a generic error with a message string (and possibly a
//     transport-level marker such as "connection_refused");
//   - KindString: a bare string supplied by the caller;
//   - KindUnknown: nothing usable at all.
//
// The boundary adapters (httpx, restyx, grpcx) and FromError produce
// Failure values; the classify package consumes them. A *Failure also
// implements error, so it can travel through ordinary error returns — for
// example out of a save callback — without losing its classification.
package failure
