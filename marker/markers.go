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

package marker

// Connection-level markers
//
// These markers describe failures where the client never received an HTTP
// response at all: the connection could not be established, was torn down,
// or the peer could not be located.
const (
	// ConnRefused indicates that the remote host actively refused the
	// connection (nothing is listening on the target port, or a firewall
	// rejected it). The UI guidance for this marker is "server not
	// reachable, try again later".
	//
	// Client libraries report this as ECONNREFUSED or "connection refused".
	ConnRefused Code = "connection_refused"

	// ConnReset indicates that an established connection was torn down by
	// the peer mid-exchange. Usually transient; safe to present the same
	// guidance as ConnRefused.
	//
	// Client libraries report this as ECONNRESET or "connection reset by peer".
	ConnReset Code = "connection_reset"

	// NetworkDown indicates that no route to the remote host exists at all:
	// the local interface is down, or the network is unreachable. The UI
	// guidance for this marker is "check your internet connection".
	NetworkDown Code = "network_down"

	// DNSFailure indicates that the remote host name could not be resolved.
	// From the user's point of view this is indistinguishable from the
	// network being down, and gets the same connectivity guidance.
	DNSFailure Code = "dns_failure"

	// TLSFailure indicates that the TLS handshake with the remote host
	// failed (bad certificate, protocol mismatch). Not retriable by the
	// user; surfaced with the generic server-unreachable guidance.
	TLSFailure Code = "tls_failure"
)

// Time-based markers
//
// These markers describe failures where a connection existed (or was being
// established) but the operation did not complete in time.
const (
	// Timeout indicates that the request exceeded its time budget, whether
	// at dial, TLS, or response-read stage. The UI guidance is "the request
	// took too long, try again".
	Timeout Code = "timeout"

	// Canceled indicates that the request was canceled before completion,
	// typically because the surrounding context was canceled (navigation
	// away, component unmount). Usually not surfaced to the user at all.
	Canceled Code = "canceled"
)
