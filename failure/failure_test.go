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

package failure

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"hrgrid.dev/uxerr/marker"
)

func TestConstructors_Kinds(t *testing.T) {
	tests := []struct {
		name string
		f    *Failure
		want Kind
	}{
		{"transport", Transport(500, nil), KindTransport},
		{"message", Message("boom"), KindMessage},
		{"string", String("boom"), KindString},
		{"unknown", Unknown(), KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.f.Kind != tt.want {
				t.Fatalf("Kind = %v, want %v", tt.f.Kind, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	pairs := map[Kind]string{
		KindUnknown:   "unknown",
		KindTransport: "transport",
		KindMessage:   "message",
		KindString:    "string",
		Kind(99):      "unknown",
	}
	for k, want := range pairs {
		if k.String() != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", int(k), k.String(), want)
		}
	}
}

func TestWithCode_CopyOnWrite(t *testing.T) {
	f1 := Message("dial tcp: connection refused")
	f2 := f1.WithCode(marker.ConnRefused)
	if f1.Code != marker.Empty {
		t.Fatal("original mutated")
	}
	if f2.Code != marker.ConnRefused {
		t.Fatal("copy not applied")
	}
}

func TestFromError_Nil(t *testing.T) {
	if FromError(nil) != nil {
		t.Fatal("FromError(nil) must be nil")
	}
}

func TestFromError_PassThroughFailure(t *testing.T) {
	orig := Transport(404, map[string]any{"message": "no such employee"})
	got := FromError(fmt.Errorf("saving field: %w", orig))
	if got != orig {
		t.Fatal("existing *Failure must be returned as-is, even when wrapped")
	}
}

func TestFromError_ContextConditions(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want marker.Code
	}{
		{"deadline", context.DeadlineExceeded, marker.Timeout},
		{"canceled", context.Canceled, marker.Canceled},
		{"wrapped deadline", fmt.Errorf("save: %w", context.DeadlineExceeded), marker.Timeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FromError(tt.err)
			if f.Kind != KindMessage {
				t.Fatalf("Kind = %v, want KindMessage", f.Kind)
			}
			if f.Code != tt.want {
				t.Fatalf("Code = %q, want %q", f.Code, tt.want)
			}
			if !errors.Is(f, tt.err) {
				t.Fatal("cause chain broken")
			}
		})
	}
}

func TestFromError_ConnectionConditions(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want marker.Code
	}{
		{"refused", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, marker.ConnRefused},
		{"reset", &net.OpError{Op: "read", Err: syscall.ECONNRESET}, marker.ConnReset},
		{"net unreachable", &net.OpError{Op: "dial", Err: syscall.ENETUNREACH}, marker.NetworkDown},
		{"dns", &net.DNSError{Err: "no such host", Name: "hr.internal"}, marker.DNSFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FromError(tt.err)
			if f.Code != tt.want {
				t.Fatalf("Code = %q, want %q", f.Code, tt.want)
			}
		})
	}
}

func TestFromError_PlainError(t *testing.T) {
	err := errors.New("validation rejected on server")
	f := FromError(err)
	if f.Kind != KindMessage || f.Message != "validation rejected on server" {
		t.Fatalf("unexpected discrimination: %+v", f)
	}
	if f.Code != marker.Empty {
		t.Fatalf("plain error must not get a marker, got %q", f.Code)
	}
}

func TestFailure_ErrorString(t *testing.T) {
	tests := []struct {
		name string
		f    *Failure
		want string
	}{
		{"nil", nil, "<nil>"},
		{"transport", Transport(503, nil), "transport failure: status 503"},
		{"message with marker", Message("dial refused").WithCode(marker.ConnRefused), "connection_refused: dial refused"},
		{"string", String("oops"), "oops"},
		{"unknown", Unknown(), "unknown failure"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
