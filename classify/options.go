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

// Option configures the Classifier at build time.
// All options are applied to an internal builder and then frozen into an
// immutable Classifier.
type Option func(*builder)

// WithDefaultMessage replaces the library fallback message. The message is
// used whenever classification resolves nothing and the caller passes an
// empty fallback.
func WithDefaultMessage(msg string) Option {
	return func(b *builder) { b.defaultMessage = msg }
}

// WithStatusMessage sets or replaces the fixed message for the given HTTP
// status. It applies only when the response body itself did not provide a
// usable message.
func WithStatusMessage(status int, msg string) Option {
	return func(b *builder) { b.statusMessages[status] = msg }
}

// WithMarkerMessage sets or replaces the guidance sentence for the given
// transport-level marker.
func WithMarkerMessage(c marker.Code, msg string) Option {
	return func(b *builder) { b.markerMessages[c] = msg }
}

// WithStrip appends a cleanup rule that removes the matched span from a
// generic error message. User rules run after the library's built-in
// sequence, in registration order.
func WithStrip(name, pattern string) Option {
	return func(b *builder) {
		b.rewrites = append(b.rewrites, rewrite.Spec{Name: name, Pattern: pattern, Replace: ""})
	}
}

// WithRewrite appends a whole-match rule: when pattern matches anywhere in
// a generic error message, the entire message is replaced with sentence.
// User rules run after the library's built-in sequence, in registration
// order.
func WithRewrite(name, pattern, sentence string) Option {
	return func(b *builder) {
		b.rewrites = append(b.rewrites, rewrite.Spec{Name: name, Pattern: pattern, Replace: sentence, Whole: true})
	}
}
