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

// Package fieldpath defines an optional, structured identifier for editable
// UI fields.
//
// A path names which field of which record a commit attempt or a classified
// failure belongs to, e.g.:
//
//   - "employee.contact.email"
//   - "employee.position.title"
//   - "department.name"
//
// Paths show up in structured logs and error views so that operators can
// tell which control produced a failing save without screenshotting the UI.
//
// Path is intentionally optional: the zero value ("") is allowed and
// indicates that the field is unlabeled. This lets callers attach a path
// only when they actually have a meaningful, stable one to report.
package fieldpath
