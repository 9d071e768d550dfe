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
	"hrgrid.dev/uxerr/classify/internal/rewrite"
	"hrgrid.dev/uxerr/marker"
)

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// defaultMessage is the fallback returned when nothing else resolves.
	defaultMessage string

	// statusMessages holds per-status messages that override or extend the
	// library defaults.
	statusMessages map[int]string

	// markerMessages holds per-marker guidance sentences.
	markerMessages map[marker.Code]string

	// rewrites holds the cleanup sequence as raw specs, library defaults
	// first, user additions appended in registration order. Compiled into
	// an immutable chain in New().
	rewrites []rewrite.Spec
}

// newBuilder creates an empty builder with maps pre-sized to hold typical
// numbers of entries.
func newBuilder() *builder {
	return &builder{
		defaultMessage: DefaultMessage,

		// we size the maps roughly to the number of built-in defaults
		statusMessages: make(map[int]string, len(defaultStatusMessages)),
		markerMessages: make(map[marker.Code]string, len(defaultMarkerMessages)),

		rewrites: make([]rewrite.Spec, 0, len(defaultRewrites)+4),
	}
}
