// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import "errors"

// Sentinel errors returned by [Engine.Execute]. Callers should match them with
// [errors.Is]; the engine wraps the underlying network error when one exists.
var (
	// ErrConnectFailed is returned when the TCP dial or the TLS handshake
	// fails. No retry is attempted.
	ErrConnectFailed = errors.New("connect failed")

	// ErrSendFailed is returned when the serialized request could not be
	// written to the connection.
	ErrSendFailed = errors.New("send failed")

	// ErrTimeout is returned when no response byte arrives within the poll
	// budget, or when the response stalls before it is fully read.
	ErrTimeout = errors.New("response timeout")

	// ErrMalformedChunk is returned in strict mode when a chunk-size line
	// carries no hexadecimal digits.
	ErrMalformedChunk = errors.New("malformed chunk size line")

	// ErrPrematureClose is returned when the peer closes the connection before
	// the response framing is complete.
	ErrPrematureClose = errors.New("connection closed before response was complete")

	// ErrBodyTooLarge is returned when the reassembled body would exceed the
	// configured MaxBodySize.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrLineTooLong is returned when a status, header or chunk-size line does
	// not fit into the line buffer.
	ErrLineTooLong = errors.New("response line too long")

	// ErrInvalidRequest is returned before any I/O when the request lacks a
	// method, host or target.
	ErrInvalidRequest = errors.New("invalid request")
)

// TLS configuration errors returned by [NewTLSConfig] and by the handshake
// verification hook it installs.
var (
	// ErrPinMismatch is returned from the handshake when the leaf certificate's
	// public key matches none of the configured pins.
	ErrPinMismatch = errors.New("certificate public key pin mismatch")

	// ErrInvalidPin is returned when a configured pin is not a base64 SHA-256
	// digest.
	ErrInvalidPin = errors.New("invalid public key pin")

	// ErrInvalidRootCA is returned when the root CA file holds no PEM
	// certificates.
	ErrInvalidRootCA = errors.New("invalid root CA bundle")
)
