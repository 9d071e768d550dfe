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

package editor

import (
	"github.com/rs/zerolog"

	"hrgrid.dev/uxerr"
	"hrgrid.dev/uxerr/apis"
	"hrgrid.dev/uxerr/fieldpath"
)

// Option configures a Field during construction.
type Option[T comparable] func(*Field[T])

// WithClassifier replaces the default failure classifier. Nil classifiers
// are ignored.
func WithClassifier[T comparable](c apis.Classifier) Option[T] {
	return func(f *Field[T]) {
		if c != nil {
			f.classifier = c
		}
	}
}

// WithLogger attaches a logger for transition and failure events. The
// default discards everything.
func WithLogger[T comparable](log zerolog.Logger) Option[T] {
	return func(f *Field[T]) {
		f.log = log
	}
}

// WithPath labels the field for logging and error descriptors.
func WithPath[T comparable](p fieldpath.Path) Option[T] {
	return func(f *Field[T]) {
		f.path = p
	}
}

// WithReadOnly locks the field: Edit always returns false, so no draft,
// save, or failure state can ever arise.
func WithReadOnly[T comparable]() Option[T] {
	return func(f *Field[T]) {
		f.readOnly = true
	}
}

// WithAuthHook registers a callback fired after a save fails with an
// authentication or authorization rejection, typically to route the user
// to a sign-in screen. The hook runs outside the field's lock.
func WithAuthHook[T comparable](hook func(*uxerr.Error)) Option[T] {
	return func(f *Field[T]) {
		f.authHook = hook
	}
}
