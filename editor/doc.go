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

// Package editor implements the optimistic inline-edit lifecycle for a
// single editable value: Viewing, Editing with a local draft, and Saving
// with a commit in flight.
//
// The controller is deliberately strict about when things happen:
//
//   - a save of an unchanged draft never reaches the backend;
//   - a failed save keeps the user's draft and records the classified
//     failure, so the UI can re-render the edit state with a message;
//   - a save requested while one is already in flight is dropped;
//   - a background refresh (Sync) only lands while the user is not
//     editing, so remote data never overwrites local work.
//
// Failures returned by the save function are normalized through
// hrgrid.dev/uxerr/classify, and authentication rejections can trigger a
// configured hook (WithAuthHook) to route the user to sign-in.
package editor
