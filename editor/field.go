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
	"context"
	"sync"

	"github.com/rs/zerolog"

	"hrgrid.dev/uxerr"
	"hrgrid.dev/uxerr/apis"
	"hrgrid.dev/uxerr/classify"
	"hrgrid.dev/uxerr/failure"
	"hrgrid.dev/uxerr/fieldpath"
)

// SaveFunc persists a value to the backend. It is invoked at most once per
// successful Save transition, outside the field's lock, and should honor
// ctx cancellation.
type SaveFunc[T comparable] func(ctx context.Context, value T) error

// Field is an optimistic inline-edit controller for a single value.
//
// A Field owns the committed value, the in-progress draft, the current
// Mode, and the last save failure. All methods are safe for concurrent
// use; the save function runs without the lock held so accessors stay
// responsive while a save is in flight.
//
// The transition rules:
//
//	Viewing --Edit--> Editing    (draft seeded from committed, last error cleared)
//	Editing --Cancel--> Viewing  (draft discarded)
//	Editing --Save, unchanged--> Viewing   (save function not invoked)
//	Editing --Save--> Saving --ok--> Viewing   (draft becomes committed)
//	                         --err--> Editing  (draft preserved, last error set)
//
// Every other (mode, request) pair is ignored.
type Field[T comparable] struct {
	mu        sync.Mutex
	committed T
	draft     T
	mode      Mode
	lastErr   *uxerr.Error

	save       SaveFunc[T]
	classifier apis.Classifier
	log        zerolog.Logger
	path       fieldpath.Path
	readOnly   bool
	authHook   func(*uxerr.Error)
}

// NewField returns a Field in ModeViewing holding the committed value.
// The save function is required; options customize classification,
// logging, and access.
func NewField[T comparable](committed T, save SaveFunc[T], opts ...Option[T]) *Field[T] {
	f := &Field[T]{
		committed:  committed,
		save:       save,
		classifier: classify.Default(),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Edit transitions Viewing -> Editing: the draft is seeded from the
// committed value and any previous save failure is cleared. Returns false
// without effect when the field is read-only or not in ModeViewing.
func (f *Field[T]) Edit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.readOnly || f.mode != ModeViewing {
		return false
	}
	f.draft = f.committed
	f.lastErr = nil
	f.mode = ModeEditing
	f.log.Debug().Stringer("field", f.path).Msg("edit started")
	return true
}

// SetDraft replaces the draft. Ignored outside ModeEditing; in particular
// the draft is frozen while a save is in flight.
func (f *Field[T]) SetDraft(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.mode != ModeEditing {
		return
	}
	f.draft = v
}

// Cancel discards the draft and returns to ModeViewing. Returns false
// without effect when the field is not in ModeEditing.
func (f *Field[T]) Cancel() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.mode != ModeEditing {
		return false
	}
	f.draft = f.committed
	f.mode = ModeViewing
	f.log.Debug().Stringer("field", f.path).Msg("edit canceled")
	return true
}

// Save commits the draft.
//
// Outside ModeEditing (including while a previous save is in flight) Save
// returns nil without invoking the save function. An unchanged draft
// short-circuits straight back to ModeViewing, also without invoking it.
//
// Otherwise the field enters ModeSaving and the save function runs with
// the lock released. On success the draft becomes the committed value and
// the field returns to ModeViewing. On failure the field returns to
// ModeEditing with the draft preserved, records the classified failure as
// LastError, fires the auth hook for session rejections, and returns the
// normalized error.
func (f *Field[T]) Save(ctx context.Context) error {
	f.mu.Lock()
	if f.mode != ModeEditing {
		f.mu.Unlock()
		return nil
	}
	if f.draft == f.committed {
		f.mode = ModeViewing
		f.mu.Unlock()
		f.log.Debug().Stringer("field", f.path).Msg("save skipped, draft unchanged")
		return nil
	}
	draft := f.draft
	f.mode = ModeSaving
	f.mu.Unlock()

	err := f.save(ctx, draft)

	f.mu.Lock()
	if err == nil {
		f.committed = draft
		f.lastErr = nil
		f.mode = ModeViewing
		f.mu.Unlock()
		f.log.Debug().Stringer("field", f.path).Msg("saved")
		return nil
	}

	fl := failure.FromError(err)
	e := f.classifier.Extract(fl)
	f.lastErr = e
	f.mode = ModeEditing
	f.mu.Unlock()

	f.log.Warn().
		Stringer("field", f.path).
		Int("status", e.Status).
		Stringer("marker", e.Code).
		Str("message", e.Message).
		Msg("save failed")

	if f.authHook != nil && f.classifier.IsAuth(fl) {
		f.authHook(e)
	}
	return e
}

// Sync replaces the committed value with a fresh server snapshot. Applied
// only in ModeViewing so a remote refresh never clobbers local work;
// returns whether the value was applied.
func (f *Field[T]) Sync(v T) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.mode != ModeViewing {
		return false
	}
	f.committed = v
	return true
}

// Mode returns the current lifecycle mode.
func (f *Field[T]) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// Committed returns the last successfully saved (or synced) value.
func (f *Field[T]) Committed() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.committed
}

// Draft returns the in-progress value. Outside ModeEditing and ModeSaving
// it mirrors the committed value.
func (f *Field[T]) Draft() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == ModeViewing {
		return f.committed
	}
	return f.draft
}

// LastError returns the classified failure from the most recent failed
// save, or nil. It is cleared when a new edit starts and when a save
// succeeds.
func (f *Field[T]) LastError() *uxerr.Error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Path returns the field label configured with WithPath, or
// fieldpath.Empty.
func (f *Field[T]) Path() fieldpath.Path {
	return f.path
}
