// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"strconv"
	"strings"
)

// Response is the decoded result of one exchange. It only lives for the
// duration of a façade call.
type Response struct {
	// StatusLine is the raw first line, e.g. "HTTP/1.1 200 OK".
	StatusLine string

	// StatusCode is parsed leniently from StatusLine; 0 when unparsable.
	// The façade does not use it to decide success.
	StatusCode int

	// Header holds the response header fields in wire order.
	Header []Header

	// Body is the reassembled payload.
	Body []byte

	// Truncated reports that a malformed chunk-size line was treated as the
	// terminal chunk, so Body may be shorter than what the server sent.
	Truncated bool
}

// String returns the body as text.
func (r *Response) String() string {
	if r == nil {
		return ""
	}
	return string(r.Body)
}

// HeaderValue returns the first value of the named header (case-insensitive).
func (r *Response) HeaderValue(name string) string {
	for _, h := range r.Header {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// parseStatusLine extracts the status code from "HTTP/1.1 200 OK".
func parseStatusLine(line string) int {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 || !strings.HasPrefix(parts[0], "HTTP/") {
		return 0
	}
	code, err := strconv.Atoi(parts[1])
	if err != nil || code < 100 || code > 999 {
		return 0
	}
	return code
}

// parseHeaderLine splits "Name: value". Lines without a colon are dropped.
func parseHeaderLine(line string) (Header, bool) {
	name, value, ok := strings.Cut(line, ":")
	if !ok {
		return Header{}, false
	}
	return Header{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)}, true
}
