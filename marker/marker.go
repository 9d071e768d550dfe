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

package marker

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical, validated representation of a transport-level
// failure marker.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw client-library output with normalized values.
//
// The empty marker ("") is allowed and means "no transport-level tag".
type Code string

// MinLength and MaxLength define the allowed length range for a canonical
// non-empty marker.
const (
	// MinLength is the minimum length for a non-empty marker. We require at
	// least 3 characters so that ambiguous identifiers like "x1" are not
	// accepted. The empty marker is still allowed and means "not provided".
	MinLength = 3

	// MaxLength is the maximum length for a valid marker. 64 characters is
	// enough for descriptive markers like "connection_refused" while still
	// preventing unbounded or accidental long strings.
	MaxLength = 64
)

const (
	// markerFmt is the canonical regular expression used to validate markers.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[a-z] - first character must be a lowercase ASCII letter;
	//	[a-z0-9_]{2,63} - the remaining characters may be lowercase letters,
	//	                  digits or underscore; the quantifier {2,63} makes the
	//	                  total length 3..64 characters (1 + 2..63);
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {2,63} is tied to MinLength / MaxLength
	// above. If you change MinLength / MaxLength, adjust this pattern as well.
	markerFmt = `^[a-z][a-z0-9_]{2,63}$`
)

var (
	// markerRe is the compiled regular expression used at runtime to validate
	// that a string is a canonical marker. Precompiled so repeated
	// validations do not pay the compilation cost.
	//
	// Examples of valid markers:
	//   - "timeout"
	//   - "connection_refused"
	//   - "dns_failure"
	//
	// Examples of invalid markers:
	//   - "Timeout"             (uppercase)
	//   - "connection-refused"  (dash instead of underscore)
	//   - "x"                   (too short)
	//   - "1net"                (does not start with a letter)
	markerRe = regexp.MustCompile(markerFmt)
)

var (
	// ErrCodeInvalid is returned when a value cannot be parsed or validated
	// as a marker. Having a dedicated sentinel error makes it easy for
	// callers and tests to detect "this is about marker format" vs "this is
	// some other error".
	ErrCodeInvalid = errors.New("marker: invalid code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value marker. It is considered "not provided" and is
// valid to store in error structs. Callers that require a non-empty,
// canonical marker should explicitly check against Empty after Parse.
var Empty Code = ""

// Parse takes an arbitrary string, normalizes it and validates it.
// On success it returns a canonical Code value.
//
// Parse also accepts the empty string and returns Empty without error.
// This is what makes Code an "optional" part of the error model.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level marker constants in var/const blocks.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string — passing
// an empty string here is almost always a programmer error.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if c == Empty {
		panic("marker: empty code in MustParse")
	}
	return c
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical marker form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value (so legacy client codes like "ECONNREFUSED"
//     become "econnrefused" and can be mapped by adapters);
//   - replaces '-' with '_'.
//
// It does NOT guarantee that the result is valid — callers should still call
// Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Code is in canonical form.
// The empty marker ("") is considered valid, because the whole point of
// this type is to be optional. If you need "must be non-empty", add that
// check at call site.
func Validate(c Code) error {
	if c == Empty {
		return nil
	}
	return validate(string(c))
}

// String returns the canonical string representation of the marker.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
//
// The empty marker marshals to an empty slice so JSON/YAML encoders that
// rely on TextMarshaler are not broken by optional fields.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	if c == Empty {
		return []byte{}, nil
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
// An empty or whitespace-only input will produce Empty.
func (c *Code) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// validate is a helper that checks whether the provided string is a valid
// non-empty marker.
func validate(s string) error {
	if !markerRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
