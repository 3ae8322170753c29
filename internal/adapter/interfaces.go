// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the pooled alternative to the raw transport
// engine.
//
// [RestyExecutor] implements [transport.Executor] on top of go-resty, so the
// façade services can run unchanged on either engine. Unlike the raw engine
// it keeps connections alive between calls, frames bodies through net/http
// and ignores [transport.Request.Encoding]. It is single-attempt: retries are
// disabled.
//
// Failures are mapped by mapTransportError onto the transport sentinels so
// that callers can use [errors.Is] regardless of the engine in use.
package adapter

import "github.com/MKhiriev/go-firebase-client/internal/transport"

var _ transport.Executor = (*RestyExecutor)(nil)
