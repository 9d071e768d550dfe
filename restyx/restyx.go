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

// Package restyx discriminates go-resty outcomes into failure values.
package restyx

import (
	"github.com/go-resty/resty/v2"

	"hrgrid.dev/uxerr/failure"
)

// From discriminates the outcome of a resty request.
//
// Resty returns both a response and an error from Execute-style calls; the
// error covers round-trip problems (and is routed through
// failure.FromError so connection-level conditions keep their markers),
// while an error-status response becomes a transport failure carrying the
// already-buffered body for the classify body probe.
//
// A successful response yields nil.
func From(resp *resty.Response, err error) *failure.Failure {
	if err != nil {
		return failure.FromError(err)
	}
	if resp == nil {
		return failure.Unknown()
	}
	if !resp.IsError() {
		return nil
	}

	body := resp.Body()
	if len(body) == 0 {
		return failure.Transport(resp.StatusCode(), nil)
	}
	return failure.Transport(resp.StatusCode(), body)
}
