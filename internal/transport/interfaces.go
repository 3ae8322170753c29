// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"context"
	"net"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Executor performs a single request/response exchange. [Engine] is the raw
// socket implementation; the adapter package provides a pooled alternative.
type Executor interface {
	Execute(ctx context.Context, req *Request) (*Response, error)
}

// Dialer opens the encrypted connection for one exchange. *tls.Dialer
// satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}
