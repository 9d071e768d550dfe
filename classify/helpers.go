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
	"encoding/json"

	"hrgrid.dev/uxerr/marker"
)

// freezeStatusMessages makes an immutable copy of the status message map.
// Used when finalizing the classifier so later mutations to the builder
// (or caller-owned maps) cannot affect the classifier.
func freezeStatusMessages(src map[int]string) map[int]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[int]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeMarkerMessages makes an immutable copy of the marker message map.
func freezeMarkerMessages(src map[marker.Code]string) map[marker.Code]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[marker.Code]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// bodyMessage probes a server-supplied response body for a usable message,
// in strict priority order: a top-level "message" field, then a top-level
// "error" field, then a nested "data.message" field. The first non-empty
// string wins.
//
// The body may arrive as a decoded map, raw JSON bytes, or a JSON string;
// anything else (including plain-text bodies) yields no match, so the
// status table gets its turn.
func bodyMessage(body any) (msg, field string, ok bool) {
	m := bodyAsMap(body)
	if m == nil {
		return "", "", false
	}

	if s, ok := nonEmptyString(m["message"]); ok {
		return s, "message", true
	}
	if s, ok := nonEmptyString(m["error"]); ok {
		return s, "error", true
	}
	if data, ok := m["data"].(map[string]any); ok {
		if s, ok := nonEmptyString(data["message"]); ok {
			return s, "data.message", true
		}
	}
	return "", "", false
}

// bodyAsMap coerces the supported body shapes into a string-keyed map.
// Returns nil when the body is absent or not an object.
func bodyAsMap(body any) map[string]any {
	switch b := body.(type) {
	case nil:
		return nil
	case map[string]any:
		return b
	case json.RawMessage:
		return decodeObject([]byte(b))
	case []byte:
		return decodeObject(b)
	case string:
		return decodeObject([]byte(b))
	default:
		return nil
	}
}

// decodeObject unmarshals raw into a map, returning nil on any failure.
// The probe must never raise: a malformed body simply yields no message.
func decodeObject(raw []byte) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

// nonEmptyString reports whether v is a non-empty string.
func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
