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

package classify

import (
	"net/http"

	"hrgrid.dev/uxerr/classify/internal/rewrite"
	"hrgrid.dev/uxerr/marker"
)

// DefaultMessage is the library fallback used when a failure carries
// nothing usable and the caller did not configure or pass a fallback of
// their own.
const DefaultMessage = "An error occurred"

// Fixed guidance sentences for recognized transport-level conditions.
// These are deliberately written for end users, not operators: the raw
// cause stays available on the normalized record for logging.
const (
	// msgNetwork is shown when the network itself looks unavailable.
	msgNetwork = "Unable to reach the server. Please check your internet connection."

	// msgTimeout is shown when the request exceeded its time budget.
	msgTimeout = "The request took too long to complete. Please try again."

	// msgUnreachable is shown when the server actively refused or dropped
	// the connection.
	msgUnreachable = "The server is not reachable at the moment. Please try again later."

	// msgCanceled is shown when the request was canceled before completing.
	// UIs usually suppress these entirely, but the classifier still never
	// returns an empty message.
	msgCanceled = "The request was canceled before it could complete."
)

// defaultStatusMessages defines the library's built-in messages for
// well-known HTTP error statuses. These apply only when the response body
// itself did not provide a usable message. These are only defaults: callers
// can replace or extend them per status at build time.
//
// Statuses absent from this table deliberately fall through to the
// fallback message — a generic sentence beats a misleading specific one.
var defaultStatusMessages = map[int]string{
	http.StatusUnauthorized:        "Your session has expired. Please sign in again.",         // 401: force a re-login flow.
	http.StatusForbidden:           "You do not have permission to perform this action.",      // 403: authenticated but not allowed.
	http.StatusNotFound:            "The requested resource could not be found.",              // 404: stale link or deleted record.
	http.StatusInternalServerError: "The server encountered an internal error. Please try again later.", // 500: nothing actionable client-side.
}

// defaultMarkerMessages maps transport-level markers attached by boundary
// adapters to their guidance sentences. A marker is more reliable than
// sniffing the message text, so it is consulted before the rewrite chain.
var defaultMarkerMessages = map[marker.Code]string{
	marker.NetworkDown: msgNetwork,
	marker.DNSFailure:  msgNetwork,

	marker.ConnRefused: msgUnreachable,
	marker.ConnReset:   msgUnreachable,
	marker.TLSFailure:  msgUnreachable,

	marker.Timeout:  msgTimeout,
	marker.Canceled: msgCanceled,
}

// defaultRewrites is the built-in cleanup sequence for generic error
// messages, applied in order. Strip rules run first so that a sentence
// rewrite sees the message without client-library noise.
//
// The specs are kept as data (not precompiled) so that New() compiles
// library and user rules through the same path.
var defaultRewrites = []rewrite.Spec{
	// "Request failed with status code 500" carries no information the
	// status tables don't already have; drop it entirely so the fallback
	// (or a configured status message) wins.
	{Name: "status_noise", Pattern: `^Request failed with status code \d+$`, Replace: "", Whole: true},

	// Strip "Error: " and framework prefixes like "AxiosError: " or
	// "TypeError: ".
	{Name: "error_prefix", Pattern: `^(?:[A-Za-z][A-Za-z0-9]*Error|Error):\s*`, Replace: ""},

	// Raw connectivity markers become guidance sentences.
	{Name: "network", Pattern: `(?i)\bnetwork\s+error\b`, Replace: msgNetwork, Whole: true},
	{Name: "timeout", Pattern: `(?i)\b(?:timeout|timed\s+out)\b`, Replace: msgTimeout, Whole: true},
	{Name: "conn_refused", Pattern: `(?i)econnrefused|connection\s+refused`, Replace: msgUnreachable, Whole: true},
}
