// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxChunkSizeDigits bounds the hex digits accepted in a chunk-size line so
// the parsed size can never overflow int64.
const maxChunkSizeDigits = 15

// readLine reads one line and strips the trailing CRLF or LF. A line that does
// not fit into the reader's buffer yields ErrLineTooLong. EOF in the middle of
// a line is reported as io.ErrUnexpectedEOF.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadSlice('\n')
	switch {
	case err == nil:
	case errors.Is(err, bufio.ErrBufferFull):
		return "", ErrLineTooLong
	case errors.Is(err, io.EOF):
		if len(line) > 0 {
			return "", io.ErrUnexpectedEOF
		}
		return "", io.EOF
	default:
		return "", err
	}

	return strings.TrimRight(string(line), "\r\n"), nil
}

// readHead consumes the status line and the header section up to and
// including the blank line.
func readHead(r *bufio.Reader, resp *Response) error {
	statusLine, err := readLine(r)
	if err != nil {
		return err
	}
	resp.StatusLine = statusLine
	resp.StatusCode = parseStatusLine(statusLine)

	for {
		line, err := readLine(r)
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}
		if h, ok := parseHeaderLine(line); ok {
			resp.Header = append(resp.Header, h)
		}
	}
}

// parseChunkSize parses the leading hexadecimal digits of a chunk-size line.
// Whatever follows the digits (chunk extensions, whitespace) is ignored. ok is
// false when the line carries no leading hex digit at all.
func parseChunkSize(line string) (size int64, ok bool) {
	line = strings.TrimLeft(line, " \t")

	digits := 0
	for ; digits < len(line); digits++ {
		b := line[digits]
		switch {
		case b >= '0' && b <= '9':
			b -= '0'
		case b >= 'a' && b <= 'f':
			b = b - 'a' + 10
		case b >= 'A' && b <= 'F':
			b = b - 'A' + 10
		default:
			return size, digits > 0
		}
		if digits == maxChunkSizeDigits {
			return 0, false
		}
		size = size<<4 + int64(b)
	}

	return size, digits > 0
}

// decodeChunked reassembles a chunked body. It stops at the terminal
// zero-size chunk and does not read trailers. A size line without hex digits
// ends the body with truncated set, or fails with ErrMalformedChunk in strict
// mode.
func decodeChunked(r *bufio.Reader, limit int64, strict bool) (body []byte, truncated bool, err error) {
	body = make([]byte, 0, 512)

	for {
		line, err := readLine(r)
		if err != nil {
			return body, false, err
		}

		size, ok := parseChunkSize(line)
		if !ok {
			if strict {
				return body, false, fmt.Errorf("%w: %q", ErrMalformedChunk, line)
			}
			return body, true, nil
		}
		if size == 0 {
			return body, false, nil
		}
		if int64(len(body))+size > limit {
			return body, false, ErrBodyTooLarge
		}

		start := len(body)
		body = append(body, make([]byte, size)...)
		if _, err = io.ReadFull(r, body[start:]); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return body[:start], false, err
		}

		// CRLF after chunk-data
		if _, err = readLine(r); err != nil {
			return body, false, err
		}
	}
}

// readIdentity reads everything until the peer closes the connection.
func readIdentity(r io.Reader, limit int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return body, err
	}
	if int64(len(body)) > limit {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}

// readSized reads exactly n bytes as announced by Content-Length.
func readSized(r io.Reader, n, limit int64) ([]byte, error) {
	if n > limit {
		return nil, ErrBodyTooLarge
	}
	body := make([]byte, n)
	if _, err := io.ReadFull(r, body); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return body, nil
}
