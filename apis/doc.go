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

// Package apis defines the public Go-level contracts for hrgrid failure
// classification.
//
// The goal of this package is to provide *small, composable* interfaces and
// view types that other uxerr packages can depend on without importing the
// concrete classifier implementation (which lives in uxerr/classify).
//
// In other words: this package is the "surface" that the edit controller,
// render helpers and application code can target. Concrete implementations
// should satisfy these interfaces, but callers should not rely on the
// concrete types.
//
// This package must remain lightweight and should not introduce heavy
// dependencies, so it only contains interfaces and very small view types.
package apis
