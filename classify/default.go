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
	"hrgrid.dev/uxerr"
	"hrgrid.dev/uxerr/apis"
	"hrgrid.dev/uxerr/failure"
)

// std is the library-default classifier. Building with no options cannot
// fail: the built-in rewrite specs are covered by tests.
var std = func() apis.Classifier {
	c, err := New()
	if err != nil {
		panic(err)
	}
	return c
}()

// Default returns the shared, immutable library-default classifier. Use it
// when no per-application customization is needed; it is safe for
// concurrent use.
func Default() apis.Classifier { return std }

// Message classifies the failure with the library defaults and the default
// fallback message.
func Message(f *failure.Failure) string { return std.Message(f, "") }

// MessageOr classifies the failure with the library defaults, using the
// given fallback when nothing resolves.
func MessageOr(f *failure.Failure, fallback string) string { return std.Message(f, fallback) }

// Extract builds the normalized record with the library defaults.
func Extract(f *failure.Failure) *uxerr.Error { return std.Extract(f) }

// IsNetwork reports connectivity failures using the library defaults.
func IsNetwork(f *failure.Failure) bool { return std.IsNetwork(f) }

// IsAuth reports authentication/authorization rejections using the library
// defaults.
func IsAuth(f *failure.Failure) bool { return std.IsAuth(f) }
