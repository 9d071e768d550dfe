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
	"errors"
	"sync/atomic"
	"testing"

	"hrgrid.dev/uxerr"
	"hrgrid.dev/uxerr/failure"
	"hrgrid.dev/uxerr/fieldpath"
)

func countingSave(calls *int32, err error) SaveFunc[string] {
	return func(ctx context.Context, v string) error {
		atomic.AddInt32(calls, 1)
		return err
	}
}

func TestField_EditSeedsDraftAndClearsError(t *testing.T) {
	var calls int32
	f := NewField("A", countingSave(&calls, failure.Transport(500, nil)))

	if !f.Edit() {
		t.Fatal("Edit from Viewing must succeed")
	}
	f.SetDraft("B")
	if err := f.Save(context.Background()); err == nil {
		t.Fatal("Save must surface the failure")
	}
	if f.LastError() == nil {
		t.Fatal("LastError must be set after a failed save")
	}

	// Back in Editing after the failure; cancel out and start over.
	if !f.Cancel() {
		t.Fatal("Cancel from Editing must succeed")
	}
	if !f.Edit() {
		t.Fatal("Edit after Cancel must succeed")
	}
	if f.LastError() != nil {
		t.Fatal("a new edit must clear the previous failure")
	}
	if f.Draft() != "A" {
		t.Fatalf("Draft = %q, want committed value", f.Draft())
	}
}

func TestField_Edit_RejectedOutsideViewing(t *testing.T) {
	var calls int32
	f := NewField("A", countingSave(&calls, nil))

	f.Edit()
	if f.Edit() {
		t.Fatal("Edit while Editing must be rejected")
	}
}

func TestField_NoOpSave_SkipsBackend(t *testing.T) {
	var calls int32
	f := NewField("A", countingSave(&calls, nil))

	f.Edit()
	f.SetDraft("A")
	if err := f.Save(context.Background()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Fatalf("save function invoked %d times, want 0", got)
	}
	if f.Mode() != ModeViewing {
		t.Fatalf("Mode = %v, want viewing", f.Mode())
	}
}

func TestField_Save_Success(t *testing.T) {
	var calls int32
	f := NewField("A", countingSave(&calls, nil))

	f.Edit()
	f.SetDraft("B")
	if err := f.Save(context.Background()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("save function invoked %d times, want 1", got)
	}
	if f.Committed() != "B" {
		t.Fatalf("Committed = %q, want B", f.Committed())
	}
	if f.Mode() != ModeViewing {
		t.Fatalf("Mode = %v, want viewing", f.Mode())
	}
	if f.LastError() != nil {
		t.Fatal("LastError must be nil after success")
	}
}

func TestField_Save_FailurePreservesDraft(t *testing.T) {
	var calls int32
	f := NewField("A", countingSave(&calls, failure.Transport(500, nil)))

	f.Edit()
	f.SetDraft("B")
	err := f.Save(context.Background())
	if err == nil {
		t.Fatal("Save must return the classified failure")
	}

	if f.Mode() != ModeEditing {
		t.Fatalf("Mode = %v, want editing", f.Mode())
	}
	if f.Draft() != "B" {
		t.Fatalf("Draft = %q, want preserved B", f.Draft())
	}
	if f.Committed() != "A" {
		t.Fatalf("Committed = %q, want A", f.Committed())
	}

	e := f.LastError()
	if e == nil {
		t.Fatal("LastError must be set")
	}
	var returned *uxerr.Error
	if !errors.As(err, &returned) || returned != e {
		t.Fatal("Save must return the same record as LastError")
	}
	if e.Status != 500 {
		t.Fatalf("Status = %d, want 500", e.Status)
	}
	if e.Message != "The server encountered an internal error. Please try again later." {
		t.Fatalf("Message = %q", e.Message)
	}
}

func TestField_Save_IgnoredOutsideEditing(t *testing.T) {
	var calls int32
	f := NewField("A", countingSave(&calls, nil))

	if err := f.Save(context.Background()); err != nil {
		t.Fatalf("Save in Viewing: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Fatalf("save function invoked %d times, want 0", got)
	}
}

func TestField_Save_WhileSavingDropped(t *testing.T) {
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})
	save := func(ctx context.Context, v string) error {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
		}
		<-release
		return nil
	}

	f := NewField("A", save)
	f.Edit()
	f.SetDraft("B")

	done := make(chan error, 1)
	go func() { done <- f.Save(context.Background()) }()
	<-started

	if f.Mode() != ModeSaving {
		t.Fatalf("Mode = %v, want saving", f.Mode())
	}
	// Second request while the first is in flight: dropped, no second call.
	if err := f.Save(context.Background()); err != nil {
		t.Fatalf("dropped Save returned %v", err)
	}
	// Draft edits are frozen while saving.
	f.SetDraft("C")

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("save function invoked %d times, want 1", got)
	}
	if f.Committed() != "B" {
		t.Fatalf("Committed = %q, want B", f.Committed())
	}
}

func TestField_Sync_OnlyWhileViewing(t *testing.T) {
	var calls int32
	f := NewField("A", countingSave(&calls, nil))

	if !f.Sync("fresh") {
		t.Fatal("Sync in Viewing must apply")
	}
	if f.Committed() != "fresh" {
		t.Fatalf("Committed = %q", f.Committed())
	}

	f.Edit()
	f.SetDraft("local work")
	if f.Sync("remote") {
		t.Fatal("Sync while Editing must be rejected")
	}
	if f.Draft() != "local work" {
		t.Fatalf("Draft = %q, local work lost", f.Draft())
	}
	if f.Committed() != "fresh" {
		t.Fatalf("Committed = %q, want fresh", f.Committed())
	}
}

func TestField_ReadOnly(t *testing.T) {
	var calls int32
	f := NewField("A", countingSave(&calls, nil), WithReadOnly[string]())

	if f.Edit() {
		t.Fatal("Edit on a read-only field must be rejected")
	}
	if f.Mode() != ModeViewing {
		t.Fatalf("Mode = %v", f.Mode())
	}
}

func TestField_AuthHook(t *testing.T) {
	var calls int32
	var hooked *uxerr.Error
	f := NewField("A", countingSave(&calls, failure.Transport(401, nil)),
		WithPath[string](fieldpath.MustParse("employee.email")),
		WithAuthHook[string](func(e *uxerr.Error) { hooked = e }),
	)

	f.Edit()
	f.SetDraft("B")
	if err := f.Save(context.Background()); err == nil {
		t.Fatal("Save must fail")
	}
	if hooked == nil {
		t.Fatal("auth hook must fire on a 401 rejection")
	}
	if hooked.Message != "Your session has expired. Please sign in again." {
		t.Fatalf("Message = %q", hooked.Message)
	}
	if f.Path() != "employee.email" {
		t.Fatalf("Path = %q", f.Path())
	}
}

func TestField_AuthHook_NotFiredOnPlainFailure(t *testing.T) {
	var calls int32
	fired := false
	f := NewField("A", countingSave(&calls, failure.Transport(500, nil)),
		WithAuthHook[string](func(*uxerr.Error) { fired = true }),
	)

	f.Edit()
	f.SetDraft("B")
	_ = f.Save(context.Background())
	if fired {
		t.Fatal("auth hook must not fire on non-auth failures")
	}
}

func TestField_PlainGoError_Classified(t *testing.T) {
	var calls int32
	f := NewField(10, func(ctx context.Context, v int) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("timeout of 5000ms exceeded")
	})

	f.Edit()
	f.SetDraft(11)
	err := f.Save(context.Background())
	if err == nil {
		t.Fatal("Save must fail")
	}
	e := f.LastError()
	if e.Message != "The request took too long to complete. Please try again." {
		t.Fatalf("Message = %q", e.Message)
	}
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{ModeViewing, "viewing"},
		{ModeEditing, "editing"},
		{ModeSaving, "saving"},
		{Mode(9), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Fatalf("Mode(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}
