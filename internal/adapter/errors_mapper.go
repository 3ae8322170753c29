// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-firebase-client/internal/transport"
)

// mapTransportError translates a resty/net/http failure into the transport
// sentinels. Failures before a response arrives are reported as
// ErrConnectFailed since net/http does not tell the dial apart from the
// write.
func mapTransportError(host string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %s: %w", transport.ErrTimeout, host, err)
	default:
		return fmt.Errorf("%w: %s: %w", transport.ErrConnectFailed, host, err)
	}
}
