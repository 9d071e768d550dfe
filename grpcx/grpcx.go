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

// Package grpcx discriminates gRPC call outcomes into failure values.
package grpcx

import (
	"errors"
	"net/http"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"hrgrid.dev/uxerr/failure"
	"hrgrid.dev/uxerr/marker"
)

// httpStatusByCode projects gRPC codes onto the HTTP statuses the rest of
// the pipeline classifies by. Codes without a sensible projection stay at
// zero and are handled as generic failures.
var httpStatusByCode = map[gcodes.Code]int{
	gcodes.InvalidArgument:    http.StatusBadRequest,
	gcodes.Unauthenticated:    http.StatusUnauthorized,
	gcodes.PermissionDenied:   http.StatusForbidden,
	gcodes.NotFound:           http.StatusNotFound,
	gcodes.AlreadyExists:      http.StatusConflict,
	gcodes.Aborted:            http.StatusConflict,
	gcodes.FailedPrecondition: http.StatusPreconditionFailed,
	gcodes.ResourceExhausted:  http.StatusTooManyRequests,
	gcodes.Internal:           http.StatusInternalServerError,
	gcodes.Unknown:            http.StatusInternalServerError,
	gcodes.DataLoss:           http.StatusInternalServerError,
	gcodes.Unimplemented:      http.StatusNotImplemented,
}

// From discriminates a gRPC call error.
//
// Connectivity-flavored codes (Unavailable, DeadlineExceeded, Canceled)
// become message failures tagged with the matching marker, so the network
// predicate and guidance sentences apply. Codes with an HTTP projection
// become transport failures; a server-attached LocalizedMessage or
// ErrorInfo detail is folded into the body so the classify body probe sees
// it exactly like a JSON error payload. Everything else falls back to
// failure.FromError.
//
// From(nil) returns nil.
func From(err error) *failure.Failure {
	if err == nil {
		return nil
	}

	var f *failure.Failure
	if errors.As(err, &f) {
		return f
	}

	st, ok := gstatus.FromError(err)
	if !ok {
		return failure.FromError(err)
	}

	switch st.Code() {
	case gcodes.OK:
		return nil
	case gcodes.Canceled:
		return failure.Message(st.Message()).WithCode(marker.Canceled).WithCause(err)
	case gcodes.DeadlineExceeded:
		return failure.Message(st.Message()).WithCode(marker.Timeout).WithCause(err)
	case gcodes.Unavailable:
		return failure.Message(st.Message()).WithCode(marker.NetworkDown).WithCause(err)
	}

	status, ok := httpStatusByCode[st.Code()]
	if !ok {
		return failure.FromError(err)
	}

	ff := &failure.Failure{
		Kind:    failure.KindTransport,
		Status:  status,
		Body:    detailBody(st),
		Message: st.Message(),
	}
	return ff.WithCause(err)
}

// detailBody folds well-known error details into a body map shaped like a
// JSON error payload: a LocalizedMessage becomes the "message" field, an
// ErrorInfo contributes "reason" and "domain". Returns nil when the status
// carries no usable details.
func detailBody(st *gstatus.Status) map[string]any {
	var body map[string]any
	put := func(k string, v any) {
		if body == nil {
			body = make(map[string]any, 4)
		}
		body[k] = v
	}

	for _, d := range st.Details() {
		switch d := d.(type) {
		case *errdetails.LocalizedMessage:
			if d.GetMessage() != "" {
				put("message", d.GetMessage())
			}
		case *errdetails.ErrorInfo:
			if d.GetReason() != "" {
				put("reason", d.GetReason())
			}
			if d.GetDomain() != "" {
				put("domain", d.GetDomain())
			}
		}
	}
	return body
}
