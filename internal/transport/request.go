// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"bytes"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Method is an HTTP request method supported by the engine.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodPatch  Method = "PATCH"
	MethodDelete Method = "DELETE"
)

// Content types used by the façade payloads.
const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// Encoding selects how the response body is framed.
type Encoding int

const (
	// EncodingAuto inspects Transfer-Encoding and Content-Length.
	EncodingAuto Encoding = iota
	// EncodingChunked always applies chunk framing.
	EncodingChunked
	// EncodingIdentity reads until the peer closes the connection.
	EncodingIdentity
)

// String implements fmt.Stringer.
func (e Encoding) String() string {
	switch e {
	case EncodingChunked:
		return "chunked"
	case EncodingIdentity:
		return "identity"
	default:
		return "auto"
	}
}

// Header is a single header field. Headers are kept in a slice so that the
// wire order is exactly the order the caller supplied.
type Header struct {
	Name  string
	Value string
}

// Request describes one HTTP/1.1 exchange. It is built fresh for every call
// and never reused.
type Request struct {
	// Method is the request method.
	Method Method

	// Host is the target host, optionally with ":port". It is sent verbatim
	// (without the port) in the Host header.
	Host string

	// Target is the path and query, e.g. "/v1/accounts:signUp?key=...".
	Target string

	// ContentType is sent in the Content-Type header. Defaults to
	// [ContentTypeJSON].
	ContentType string

	// Header holds extra header fields written after the fixed set.
	Header []Header

	// Body is the request payload. Its exact length is declared via
	// Content-Length.
	Body []byte

	// Encoding selects the response body framing.
	Encoding Encoding
}

// Validate reports ErrInvalidRequest for a request that cannot be sent.
func (r *Request) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: nil request", ErrInvalidRequest)
	}
	if r.Method == "" {
		return fmt.Errorf("%w: empty method", ErrInvalidRequest)
	}
	if r.Host == "" {
		return fmt.Errorf("%w: empty host", ErrInvalidRequest)
	}
	if !strings.HasPrefix(r.Target, "/") {
		return fmt.Errorf("%w: target must start with '/'", ErrInvalidRequest)
	}
	return nil
}

// hostName returns the host part of r.Host without any port.
func (r *Request) hostName() string {
	if host, _, err := net.SplitHostPort(r.Host); err == nil {
		return host
	}
	return r.Host
}

// Address returns the dial address, using defaultPort when Host carries
// none.
func (r *Request) Address(defaultPort int) string {
	if _, _, err := net.SplitHostPort(r.Host); err == nil {
		return r.Host
	}
	return net.JoinHostPort(r.Host, strconv.Itoa(defaultPort))
}

// encode serializes the request line, the fixed header set, the caller's
// extra headers, the blank line and the body into a single buffer.
func (r *Request) encode() []byte {
	contentType := r.ContentType
	if contentType == "" {
		contentType = ContentTypeJSON
	}

	var buf bytes.Buffer
	buf.Grow(256 + len(r.Body))

	buf.WriteString(string(r.Method))
	buf.WriteByte(' ')
	buf.WriteString(r.Target)
	buf.WriteString(" HTTP/1.1\r\n")

	writeHeader(&buf, "Host", r.hostName())
	writeHeader(&buf, "Content-Type", contentType)
	writeHeader(&buf, "Content-Length", strconv.Itoa(len(r.Body)))
	for _, h := range r.Header {
		writeHeader(&buf, h.Name, h.Value)
	}
	writeHeader(&buf, "Connection", "close")
	buf.WriteString("\r\n")
	buf.Write(r.Body)

	return buf.Bytes()
}

func writeHeader(buf *bytes.Buffer, name, value string) {
	buf.WriteString(name)
	buf.WriteString(": ")
	buf.WriteString(value)
	buf.WriteString("\r\n")
}
