// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transport implements the raw HTTP/1.1-over-TLS request engine.
//
// Every call to [Engine.Execute] opens a new TLS connection, writes a
// hand-built request in a single send, waits for the first response byte in
// a bounded poll loop, then parses the status line, the header section and a
// chunked, sized or identity-framed body straight off the socket. The
// connection is closed before Execute returns.
//
// There is no connection reuse and no retry: a failed attempt is final.
package transport
