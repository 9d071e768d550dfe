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

package fieldpath

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Path is the canonical, validated identifier of an editable field.
//
// Paths are dot-separated hierarchical identifiers with a small, fixed
// depth. Each segment names a record, section, or attribute of the form
// being edited.
//
// Example valid paths:
//
//   - "employee.contact.email"
//   - "employee.position.title"
//   - "department.name"
//
// The intent is to make it easy to programmatically build such identifiers
// from known record/section/attribute names, and later to let log queries
// and dashboards match on these prefixes.
type Path string

// MinLength and MaxLength define the allowed length range for a canonical
// non-empty path.
const (
	// MinLength is the minimum length for a non-empty path. We keep it at 3
	// so that trivial values like "x" are not considered meaningful paths.
	// Remember: the empty string is still allowed and means "unlabeled".
	MinLength = 3

	// MaxLength is the maximum length for a valid path. 128 characters is
	// enough even for 4 segments with descriptive names.
	MaxLength = 128
)

const (
	// pathFmt is the canonical regular expression used to validate paths.
	//
	// We accept 1 to 4 segments, dot-separated, each segment:
	//
	//   - starts with a lowercase ASCII letter [a-z]
	//   - continues with lowercase letters, digits, or underscore [a-z0-9_]*
	//
	// Examples that match:
	//
	//	"employee.contact.email"
	//	"employee.start_date"
	//	"department.name"
	//
	// Examples that DO NOT match:
	//
	//	"Employee.Email"       (uppercase)
	//	"employee/contact"     (slash)
	//	"employee..email"      (empty segment)
	//	"1email"               (digit first)
	//
	// NOTE: empty string ("") is treated separately as "optional path" and
	// does not go through this regexp.
	pathFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`
)

var (
	// pathRe is the compiled regexp for the above pattern.
	pathRe = regexp.MustCompile(pathFmt)
)

var (
	// ErrPathInvalidFormat is returned when a path does not conform to the
	// expected format.
	ErrPathInvalidFormat = errors.New("fieldpath: invalid path format")
	// ErrPathInvalidLength is returned when a path is too short or too long.
	ErrPathInvalidLength = errors.New("fieldpath: invalid path length")
)

// Ensure Path implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Path)(nil)
	_ encoding.TextUnmarshaler = (*Path)(nil)
)

// Empty is the zero-value path. It is considered "unlabeled" and is valid
// to store in field state. Callers that require a non-empty, canonical path
// should explicitly call Validate.
var Empty Path = ""

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical path form.
//
// We do *very* conservative transformations:
//
//   - trim spaces
//   - lower-case
//   - convert "/" to "." (because callers may build paths with slashes)
//   - replace "-" with "_" (to align with identifier style)
//
// It does NOT guarantee validity — callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Path value.
//
// Parse also accepts the empty string and returns fieldpath.Empty without
// error. This is what makes Path an "optional" part of the field state.
func Parse(s string) (Path, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Path(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level path constants in var/const blocks.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string — passing
// an empty string here is almost always a programmer error.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if p == Empty {
		panic("fieldpath: empty path in MustParse")
	}
	return p
}

// Validate checks whether the provided Path is in canonical form.
//
// The empty path ("") is considered valid here, because the whole point of
// this type is to be optional. If you need to enforce "must be non-empty",
// add that check at call site.
func Validate(p Path) error {
	if p == Empty {
		return nil
	}
	return validate(string(p))
}

// String returns the canonical string representation of the path.
func (p Path) String() string {
	return string(p)
}

// MarshalText implements encoding.TextMarshaler.
//
// We allow marshaling of the empty path as an empty slice to not break
// JSON/YAML encoders that rely on TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	if p == Empty {
		return []byte{}, nil
	}
	return []byte(p), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
// An empty or whitespace-only input will produce fieldpath.Empty.
func (p *Path) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// validate is the internal helper that checks length and format.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrPathInvalidLength
	}
	if !pathRe.MatchString(s) {
		return ErrPathInvalidFormat
	}
	return nil
}
