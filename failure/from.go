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

package failure

import (
	"context"
	"errors"
	"net"
	"syscall"

	"hrgrid.dev/uxerr/marker"
)

// FromError discriminates an arbitrary Go error into a Failure.
//
// This is the generic boundary for errors that did not come through one of
// the transport adapters (httpx, restyx, grpcx). The checks run from most
// to least specific:
//
//  1. an error that already is a *Failure is returned as-is — adapters run
//     before generic code, and their classification must not be redone;
//  2. context cancellation / deadline become message failures tagged with
//     marker.Canceled / marker.Timeout;
//  3. well-known connection-level conditions (refused, reset, unreachable,
//     DNS) become message failures tagged with the matching marker;
//  4. anything else becomes a plain message failure carrying err.Error().
//
// FromError(nil) returns nil; the classify package treats a nil failure as
// KindUnknown.
func FromError(err error) *Failure {
	if err == nil {
		return nil
	}

	var f *Failure
	if errors.As(err, &f) {
		return f
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Message(err.Error()).WithCode(marker.Timeout).WithCause(err)
	}
	if errors.Is(err, context.Canceled) {
		return Message(err.Error()).WithCode(marker.Canceled).WithCause(err)
	}

	if c, ok := connMarker(err); ok {
		return Message(err.Error()).WithCode(c).WithCause(err)
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return Message(err.Error()).WithCode(marker.Timeout).WithCause(err)
	}

	return Message(err.Error()).WithCause(err)
}

// connMarker maps well-known connection-level error conditions to markers.
// It reports false when the error is not a recognized connection failure.
func connMarker(err error) (marker.Code, bool) {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return marker.DNSFailure, true
	}

	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return marker.ConnRefused, true
	case errors.Is(err, syscall.ECONNRESET):
		return marker.ConnReset, true
	case errors.Is(err, syscall.ENETUNREACH), errors.Is(err, syscall.EHOSTUNREACH), errors.Is(err, syscall.ENETDOWN):
		return marker.NetworkDown, true
	}
	return marker.Empty, false
}
