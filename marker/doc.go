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

// Package marker provides parsing, normalization and validation for
// transport-level failure markers.
//
// A "marker" is the machine-readable tag a transport adapter attaches to a
// failure that never produced an HTTP response: "connection_refused",
// "timeout", "network_down", and so on. Markers are meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads and for branching in UI code.
//
// Markers are intentionally optional: the zero value ("") is allowed and
// indicates that the failure carries no transport-level tag. This lets
// adapters attach a marker only when they actually recognized a stable,
// meaningful condition.
//
// This package defines the canonical representation and the functions that
// convert arbitrary input (environment-specific error strings, legacy
// client codes like "ECONNREFUSED") to that canonical form.
package marker
