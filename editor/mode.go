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

// Mode is the lifecycle state of an editable field. A field is in exactly
// one mode at any time.
type Mode int

const (
	// ModeViewing displays the committed value; no draft exists.
	ModeViewing Mode = iota

	// ModeEditing holds a local draft that diverges from (or shadows) the
	// committed value until saved or canceled.
	ModeEditing

	// ModeSaving has a save in flight. Edits and further saves are ignored
	// until the in-flight save settles.
	ModeSaving
)

// String returns the lowercase mode name, or "invalid" for out-of-range
// values.
func (m Mode) String() string {
	switch m {
	case ModeViewing:
		return "viewing"
	case ModeEditing:
		return "editing"
	case ModeSaving:
		return "saving"
	default:
		return "invalid"
	}
}
