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
	"errors"
	"reflect"
	"sync"
	"testing"

	"hrgrid.dev/uxerr/apis"
	"hrgrid.dev/uxerr/failure"
	"hrgrid.dev/uxerr/marker"
)

func TestMessage_BodyProbe_Priority(t *testing.T) {
	tests := []struct {
		name string
		body any
		want string
	}{
		{"message field", map[string]any{"message": "email already in use"}, "email already in use"},
		{"error field", map[string]any{"error": "bad payload"}, "bad payload"},
		{"nested data.message", map[string]any{"data": map[string]any{"message": "nested"}}, "nested"},
		{"message beats error", map[string]any{"message": "m", "error": "e"}, "m"},
		{"error beats nested", map[string]any{"error": "e", "data": map[string]any{"message": "n"}}, "e"},
		{"raw json bytes", []byte(`{"message":"from raw"}`), "from raw"},
		{"json string body", `{"error":"from string"}`, "from string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Message(failure.Transport(500, tt.body))
			if got != tt.want {
				t.Fatalf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessage_BodyWinsRegardlessOfStatus(t *testing.T) {
	// A server-supplied message must win even on statuses that have fixed
	// messages of their own.
	for _, status := range []int{401, 403, 404, 500, 418} {
		got := Message(failure.Transport(status, map[string]any{"message": "X"}))
		if got != "X" {
			t.Fatalf("status %d: Message() = %q, want %q", status, got, "X")
		}
	}
}

func TestMessage_StatusTable(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{401, "Your session has expired. Please sign in again."},
		{403, "You do not have permission to perform this action."},
		{404, "The requested resource could not be found."},
		{500, "The server encountered an internal error. Please try again later."},
	}
	for _, tt := range tests {
		got := Message(failure.Transport(tt.status, nil))
		if got != tt.want {
			t.Fatalf("status %d: Message() = %q, want %q", tt.status, got, tt.want)
		}
	}

	// Unrecognized statuses must yield the generic default, never a
	// misleading specific message.
	if got := Message(failure.Transport(418, nil)); got != DefaultMessage {
		t.Fatalf("status 418: Message() = %q, want default", got)
	}
}

func TestMessage_EmptyBodyFieldsFallThrough(t *testing.T) {
	// Body present but every probed field empty or missing → status table.
	body := map[string]any{"message": "", "details": "x"}
	got := Message(failure.Transport(404, body))
	if got != "The requested resource could not be found." {
		t.Fatalf("Message() = %q", got)
	}
}

func TestMessage_Cleanup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"status noise stripped to default", "Request failed with status code 500", DefaultMessage},
		{"error prefix", "Error: validation rejected", "validation rejected"},
		{"framework prefix", "AxiosError: something odd", "something odd"},
		{"network marker", "Network Error", msgNetwork},
		{"prefixed network marker", "Error: Network Error", msgNetwork},
		{"timeout marker", "timeout of 5000ms exceeded", msgTimeout},
		{"timed out", "request timed out", msgTimeout},
		{"conn refused", "connect ECONNREFUSED 10.0.0.5:443", msgUnreachable},
		{"untouched", "quota exceeded for department", "quota exceeded for department"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Message(failure.Message(tt.in))
			if got != tt.want {
				t.Fatalf("Message(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMessage_MarkerBeatsText(t *testing.T) {
	// An adapter-attached marker is more reliable than the message text.
	f := failure.Message("dial tcp 10.0.0.5:443: i/o problem").WithCode(marker.Timeout)
	if got := Message(f); got != msgTimeout {
		t.Fatalf("Message() = %q, want timeout sentence", got)
	}
}

func TestMessage_StringVerbatim(t *testing.T) {
	if got := Message(failure.String("exactly this")); got != "exactly this" {
		t.Fatalf("Message() = %q", got)
	}
}

func TestMessage_FallbackCases(t *testing.T) {
	tests := []struct {
		name string
		f    *failure.Failure
	}{
		{"nil failure", nil},
		{"unknown", failure.Unknown()},
		{"empty message", failure.Message("")},
		{"empty string kind", failure.String("")},
		{"transport no body no table", failure.Transport(302, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.f); got != DefaultMessage {
				t.Fatalf("Message() = %q, want default", got)
			}
			if got := MessageOr(tt.f, "custom fallback"); got != "custom fallback" {
				t.Fatalf("MessageOr() = %q, want custom fallback", got)
			}
		})
	}
}

func TestMessage_NeverEmpty(t *testing.T) {
	malformed := []*failure.Failure{
		nil,
		{},
		{Kind: failure.Kind(42)},
		{Kind: failure.KindTransport, Status: -1},
		{Kind: failure.KindTransport, Body: []byte("not json")},
		{Kind: failure.KindTransport, Body: map[string]any{"message": 7}},
		{Kind: failure.KindMessage},
		failure.Message("Request failed with status code 503"),
	}
	for i, f := range malformed {
		if got := Message(f); got == "" {
			t.Fatalf("case %d: Message() returned empty string", i)
		}
	}
}

func TestExtract_PassthroughAndIdempotence(t *testing.T) {
	body := map[string]any{"error": "duplicate employee id", "request_id": "r-17"}
	cause := errors.New("wire-level cause")
	f := failure.Transport(409, body).WithCause(cause)

	e1 := Extract(f)
	e2 := Extract(f)

	if e1.Message != "duplicate employee id" {
		t.Fatalf("Message = %q", e1.Message)
	}
	if e1.Status != 409 {
		t.Fatalf("Status = %d", e1.Status)
	}
	if !reflect.DeepEqual(e1.Data, body) {
		t.Fatalf("Data passthrough mismatch: %#v", e1.Data)
	}
	if e1.Cause != cause {
		t.Fatalf("Cause not preserved")
	}
	if !reflect.DeepEqual(e1, e2) {
		t.Fatalf("Extract is not idempotent:\n%#v\n%#v", e1, e2)
	}
	if e1 == e2 {
		t.Fatalf("Extract must return a fresh record per call")
	}
}

func TestExtract_MarkerPassthrough(t *testing.T) {
	f := failure.Message("dial refused").WithCode(marker.ConnRefused)
	e := Extract(f)
	if e.Code != marker.ConnRefused {
		t.Fatalf("Code = %q", e.Code)
	}
	if e.Status != 0 || e.Data != nil {
		t.Fatalf("non-transport failure must not carry status/data")
	}
}

func TestIsAuth(t *testing.T) {
	tests := []struct {
		name string
		f    *failure.Failure
		want bool
	}{
		{"401", failure.Transport(401, nil), true},
		{"403", failure.Transport(403, nil), true},
		{"401 with body", failure.Transport(401, map[string]any{"message": "X"}), true},
		{"404", failure.Transport(404, nil), false},
		{"500", failure.Transport(500, nil), false},
		{"message kind", failure.Message("unauthorized"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuth(tt.f); got != tt.want {
				t.Fatalf("IsAuth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsNetwork(t *testing.T) {
	tests := []struct {
		name string
		f    *failure.Failure
		want bool
	}{
		{"network error text", failure.Message("Network Error"), true},
		{"timeout text", failure.Message("timeout of 5000ms exceeded"), true},
		{"econnrefused text", failure.Message("connect ECONNREFUSED"), true},
		{"timeout marker", failure.Message("x").WithCode(marker.Timeout), true},
		{"dns marker", failure.Message("x").WithCode(marker.DNSFailure), true},
		{"plain message", failure.Message("validation rejected"), false},
		{"transport 500", failure.Transport(500, nil), false},
		{"nil", nil, false},
		{"unknown", failure.Unknown(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNetwork(tt.f); got != tt.want {
				t.Fatalf("IsNetwork() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNetworkErrorText_ClassifiesAndGuides(t *testing.T) {
	// The two halves of the contract together: a "Network Error" message is
	// detected as a network failure AND rendered as the guidance sentence.
	f := failure.Message("Network Error")
	if !IsNetwork(f) {
		t.Fatal("IsNetwork must be true")
	}
	if got := Message(f); got != msgNetwork {
		t.Fatalf("Message() = %q, want connectivity guidance", got)
	}
}

func TestOptions_StatusOverrideAndAddition(t *testing.T) {
	c, err := New(
		WithStatusMessage(404, "No such employee."),
		WithStatusMessage(409, "Someone else edited this record. Reload and retry."),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Message(failure.Transport(404, nil), ""); got != "No such employee." {
		t.Fatalf("override: Message() = %q", got)
	}
	if got := c.Message(failure.Transport(409, nil), ""); got != "Someone else edited this record. Reload and retry." {
		t.Fatalf("addition: Message() = %q", got)
	}
	// Untouched defaults survive.
	if got := c.Message(failure.Transport(403, nil), ""); got != "You do not have permission to perform this action." {
		t.Fatalf("default lost: Message() = %q", got)
	}
}

func TestOptions_DefaultMessageAndUserRules(t *testing.T) {
	c, err := New(
		WithDefaultMessage("Something went wrong."),
		WithStrip("trace_suffix", `\s*\(trace [a-z0-9-]+\)$`),
		WithRewrite("quota", `(?i)quota exceeded`, "Storage quota exceeded. Contact your administrator."),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Message(nil, ""); got != "Something went wrong." {
		t.Fatalf("default: Message() = %q", got)
	}
	if got := c.Message(failure.Message("boom (trace ab12-cd34)"), ""); got != "boom" {
		t.Fatalf("strip: Message() = %q", got)
	}
	if got := c.Message(failure.Message("quota exceeded for dept 7"), ""); got != "Storage quota exceeded. Contact your administrator." {
		t.Fatalf("rewrite: Message() = %q", got)
	}
}

func TestNew_InvalidRulePattern(t *testing.T) {
	if _, err := New(WithStrip("bad", "(")); err == nil {
		t.Fatalf("New must reject invalid rewrite patterns")
	}
}

func TestConcurrency_ClassifierMessage(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = c.Message(failure.Transport(401, nil), "")
				_ = c.Message(failure.Message("Network Error"), "")
				_ = c.Extract(failure.Transport(500, map[string]any{"message": "x"}))
			}
		}()
	}
	wg.Wait()
}

// Ensure classifier implements apis.Classifier
func TestClassifier_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Classifier = (*classifier)(nil)
}

func BenchmarkMessage_BodyProbe(b *testing.B) {
	f := failure.Transport(500, map[string]any{"message": "email already in use"})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Message(f)
	}
}

func BenchmarkMessage_StatusTable(b *testing.B) {
	f := failure.Transport(401, nil)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Message(f)
	}
}

func BenchmarkMessage_Cleanup(b *testing.B) {
	f := failure.Message("Error: Network Error")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Message(f)
	}
}
