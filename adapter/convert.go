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

package adapter

import (
	"hrgrid.dev/uxerr"
	"hrgrid.dev/uxerr/apis"
	"hrgrid.dev/uxerr/failure"
	"hrgrid.dev/uxerr/fieldpath"
)

// ToView converts a normalized error plus its resolved predicates into a
// public ErrorView.
//
// The view is intended for the rendering layer. No redaction or filtering
// is performed here; it exposes exactly what the record contains. The data
// payload is deliberately dropped — views are for display, and the raw
// body stays on the record for callers that need it.
func ToView(e *uxerr.Error, network, auth bool) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Message: e.Message,
		Status:  e.Status,
		Code:    string(e.Code),
		Network: network,
		Auth:    auth,
	}
}

// ToDescriptor converts a normalized error, in the context of the field
// whose save produced it, into a flat log-friendly descriptor.
func ToDescriptor(path fieldpath.Path, e *uxerr.Error) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{Field: string(path)}
	}
	d := apis.ErrorDescriptor{
		Field:   string(path),
		Message: e.Message,
		Status:  e.Status,
		Code:    string(e.Code),
	}
	if e.Cause != nil {
		d.Cause = e.Cause.Error()
	}
	return d
}

// View classifies a failure and converts it in one step: the record comes
// from Extract, the predicates from IsNetwork and IsAuth. This is the
// common path for callers that only render.
func View(c apis.Classifier, f *failure.Failure) apis.ErrorView {
	return ToView(c.Extract(f), c.IsNetwork(f), c.IsAuth(f))
}
