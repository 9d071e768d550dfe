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

// Package httpx discriminates net/http outcomes into failure values.
package httpx

import (
	"io"
	"net/http"

	"hrgrid.dev/uxerr/failure"
)

// maxBodyBytes bounds how much of an error response body is read for
// classification. Error payloads are small; anything larger is truncated
// and the probe simply finds no message in it.
const maxBodyBytes = 1 << 20

// From discriminates the outcome of an http.Client call.
//
// A non-nil err wins: round-trip errors never produce a usable response,
// and connection-level conditions (refused, DNS, timeout) are tagged with
// their markers via failure.FromError. A response with a 4xx/5xx status
// becomes a transport failure carrying the (bounded) response body for the
// classify body probe. A successful response yields nil.
//
// From consumes and closes resp.Body for error statuses; callers handle
// the body themselves only on success.
func From(resp *http.Response, err error) *failure.Failure {
	if err != nil {
		return failure.FromError(err)
	}
	if resp == nil {
		return failure.Unknown()
	}
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	var body []byte
	if resp.Body != nil {
		body, _ = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		_ = resp.Body.Close()
	}
	if len(body) == 0 {
		return failure.Transport(resp.StatusCode, nil)
	}
	return failure.Transport(resp.StatusCode, body)
}
