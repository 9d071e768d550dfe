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
	"fmt"
	"strings"

	"hrgrid.dev/uxerr"
	"hrgrid.dev/uxerr/apis"
	"hrgrid.dev/uxerr/classify/internal/rewrite"
	"hrgrid.dev/uxerr/failure"
	"hrgrid.dev/uxerr/marker"
)

// New constructs an immutable apis.Classifier snapshot.
//
// The resulting apis.Classifier is fully thread-safe and designed for
// long-lived reuse. Each build creates a self-contained instance — no
// shared references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (status table, marker table,
//     cleanup sequence).
//  2. Apply user-provided options (messages, strip/rewrite rules).
//  3. Compile every rewrite spec; invalid patterns fail the build here,
//     never on the classification path.
//  4. Freeze all maps and the rule chain into immutable copies (fresh
//     allocations).
//
// Errors returned from this function indicate invalid rewrite specs.
func New(opts ...Option) (apis.Classifier, error) {
	// (0) Start with an empty builder. We do not assume any pre-seeded state.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned structures to prevent external mutation.
	for k, v := range defaultStatusMessages {
		b.statusMessages[k] = v
	}
	for k, v := range defaultMarkerMessages {
		b.markerMessages[k] = v
	}
	b.rewrites = append(b.rewrites, defaultRewrites...)

	// (2) Apply user-supplied options (messages, rules, etc.).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Compile the cleanup sequence.
	rules := make([]rewrite.Rule, 0, len(b.rewrites))
	for _, spec := range b.rewrites {
		r, err := rewrite.Compile(spec)
		if err != nil {
			return nil, fmt.Errorf("classify: invalid rewrite rule %q: %w", spec.Name, err)
		}
		rules = append(rules, r)
	}

	// (4) Freeze everything into a read-only snapshot.
	c := &classifier{
		defaultMessage: b.defaultMessage,
		statusMessages: freezeStatusMessages(b.statusMessages),
		markerMessages: freezeMarkerMessages(b.markerMessages),
		chain:          rewrite.NewChain(rules),
	}

	return c, nil
}

// classifier is an immutable classifier implementation. Lookups allocate
// only when decoding a raw body and are safe for concurrent use once
// constructed.
type classifier struct {
	// defaultMessage is returned when nothing else resolves. Never empty.
	defaultMessage string

	// statusMessages holds the fixed per-status messages for transport
	// failures whose body carried no usable message.
	statusMessages map[int]string

	// markerMessages holds guidance sentences for transport-level markers.
	// Consulted before the rewrite chain: a marker set by a boundary
	// adapter is more reliable than sniffing the message text.
	markerMessages map[marker.Code]string

	// chain is the ordered cleanup sequence for generic error messages.
	chain *rewrite.Chain
}

// Message resolves the single human-readable message for the failure.
//
// Resolution order (highest to lowest):
//  1. transport body probe: "message", then "error", then "data.message";
//  2. transport status table (401/403/404/500 and user additions);
//  3. marker sentence, then the cleanup sequence, for generic messages;
//  4. raw strings verbatim;
//  5. the fallback (or the classifier default when fallback is empty).
//
// Message never panics and never returns an empty string.
func (c *classifier) Message(f *failure.Failure, fallback string) string {
	msg, _, _ := c.resolve(f, fallback)
	return msg
}

// Extract builds the full normalized record: the message as resolved by
// Message plus the informational passthroughs. The status, marker and body
// are copied from the failure, not re-derived.
func (c *classifier) Extract(f *failure.Failure) *uxerr.Error {
	e := uxerr.E(c.Message(f, ""))
	if f == nil {
		return e
	}
	if f.Kind == failure.KindTransport {
		e = e.WithStatus(f.Status).WithData(f.Body)
	}
	if f.Code != marker.Empty {
		e = e.WithCode(f.Code)
	}
	return e.WithCause(f.Cause)
}

// IsNetwork reports whether the failure looks like a connectivity problem.
//
// True when the failure carries a connection-level or timeout marker, or
// when its message mentions a network failure, a timeout, or a refused
// connection. Malformed or minimal failures yield false; this predicate
// never panics.
func (c *classifier) IsNetwork(f *failure.Failure) bool {
	if f == nil {
		return false
	}
	switch f.Code {
	case marker.NetworkDown, marker.DNSFailure, marker.ConnRefused, marker.ConnReset, marker.Timeout:
		return true
	}
	if f.Message == "" {
		return false
	}
	m := strings.ToLower(f.Message)
	return strings.Contains(m, "network") ||
		strings.Contains(m, "timeout") ||
		strings.Contains(m, "econnrefused") ||
		strings.Contains(m, "connection refused")
}

// IsAuth reports whether the failure is an authentication or authorization
// rejection: a transport failure with HTTP status 401 or 403. Anything
// else — including auth-sounding message text — yields false.
func (c *classifier) IsAuth(f *failure.Failure) bool {
	if f == nil || f.Kind != failure.KindTransport {
		return false
	}
	return f.Status == 401 || f.Status == 403
}

// Explain produces a textual trace of how the classifier resolved the
// message for a particular failure.
//
// This is primarily a diagnostic tool: it shows which tier matched (body,
// status, marker, rewrite, string, or fallback) and, for body and rewrite
// matches, which field or rules were involved.
//
// Example output:
//
//	kind="transport" status=401
//	message: source=body field="message" -> "token expired"
//
// Notes:
//   - source ∈ {body | status | marker | rewrite | message | string | fallback}
//   - the output is for inspection and logging, not stable machine parsing.
func (c *classifier) Explain(f *failure.Failure) string {
	var b strings.Builder

	if f == nil {
		_, _ = fmt.Fprintln(&b, `kind="none"`)
	} else {
		_, _ = fmt.Fprintf(&b, "kind=%q", f.Kind)
		if f.Kind == failure.KindTransport {
			_, _ = fmt.Fprintf(&b, " status=%d", f.Status)
		}
		if f.Code != marker.Empty {
			_, _ = fmt.Fprintf(&b, " marker=%q", f.Code)
		}
		_, _ = fmt.Fprintln(&b)
	}

	msg, source, detail := c.resolve(f, "")
	switch source {
	case "body":
		_, _ = fmt.Fprintf(&b, "message: source=body field=%q -> %q", detail, msg)
	case "rewrite":
		_, _ = fmt.Fprintf(&b, "message: source=rewrite rules=[%s] -> %q", detail, msg)
	case "status", "marker", "message", "string", "fallback":
		_, _ = fmt.Fprintf(&b, "message: source=%s -> %q", source, msg)
	default:
		// Unexpected source.
		_, _ = fmt.Fprintf(&b, "message: source=unknown -> %q", msg)
	}

	return b.String()
}

// resolve is the single resolution path shared by Message and Explain, so
// the diagnostic trace can never drift from the actual behavior.
//
// It returns the resolved message, the tier that produced it, and a
// tier-specific detail (body field name, or comma-joined rewrite rule
// names).
func (c *classifier) resolve(f *failure.Failure, fallback string) (msg, source, detail string) {
	if fallback == "" {
		fallback = c.defaultMessage
	}
	if f == nil {
		return fallback, "fallback", ""
	}

	switch f.Kind {
	case failure.KindTransport:
		// 1. Body probe wins regardless of status code.
		if m, field, ok := bodyMessage(f.Body); ok {
			return m, "body", field
		}
		// 2. Fixed per-status message.
		if m, ok := c.statusMessages[f.Status]; ok {
			return m, "status", ""
		}
		// Transport failures occasionally carry a client-library message
		// ("Request failed with status code 418"); clean it like a generic
		// message before giving up.
		if f.Message != "" {
			return c.cleanup(f.Message, fallback)
		}
		return fallback, "fallback", ""

	case failure.KindMessage:
		// A marker set by a boundary adapter beats text sniffing.
		if m, ok := c.markerMessages[f.Code]; ok {
			return m, "marker", ""
		}
		if f.Message == "" {
			return fallback, "fallback", ""
		}
		return c.cleanup(f.Message, fallback)

	case failure.KindString:
		if f.Message != "" {
			return f.Message, "string", ""
		}
		return fallback, "fallback", ""

	default:
		return fallback, "fallback", ""
	}
}

// cleanup runs the rewrite chain over a generic message and falls back
// when the result is empty.
func (c *classifier) cleanup(raw, fallback string) (msg, source, detail string) {
	out, matched := c.chain.Apply(raw)
	out = strings.TrimSpace(out)
	if out == "" {
		return fallback, "fallback", ""
	}
	if len(matched) > 0 {
		return out, "rewrite", strings.Join(matched, ",")
	}
	return out, "message", ""
}
