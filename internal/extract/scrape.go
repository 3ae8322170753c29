// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extract

import (
	"bytes"
	"encoding/json"
	"strings"
)

const (
	errorAnchor   = `"error"`
	messageAnchor = `"message":`
)

// ScrapeErrorMessage finds the first "error" literal, then the first
// "message": after it, and returns the quoted text that follows. It is a
// plain text scan: an unrelated "error" substring earlier in the body wins.
// When either anchor is missing it returns [UnknownError].
func ScrapeErrorMessage(body []byte) string {
	text := string(body)

	i := strings.Index(text, errorAnchor)
	if i < 0 {
		return UnknownError
	}
	text = text[i+len(errorAnchor):]

	j := strings.Index(text, messageAnchor)
	if j < 0 {
		return UnknownError
	}
	text = strings.TrimLeft(text[j+len(messageAnchor):], " \t\r\n")
	text = strings.TrimPrefix(text, `"`)

	for k := 0; k < len(text); k++ {
		switch text[k] {
		case '\\':
			k++
		case '"':
			return text[:k]
		}
	}
	return text
}

// ErrorMessage returns the message of a top-level "error" member. Both the
// identity toolkit shape {"error":{"message":"..."}} and the database shape
// {"error":"..."} are understood. Anything else falls back to
// [ScrapeErrorMessage].
func ErrorMessage(body []byte) string {
	obj, err := parseObject(body)
	if err != nil {
		return ScrapeErrorMessage(body)
	}

	raw, ok := obj["error"]
	if !ok {
		return ScrapeErrorMessage(body)
	}

	var plain string
	if json.Unmarshal(raw, &plain) == nil && plain != "" {
		return plain
	}

	var nested struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &nested) == nil && nested.Message != "" {
		return nested.Message
	}

	return ScrapeErrorMessage(body)
}

// ContainsText reports whether fragment occurs anywhere in the raw body.
func ContainsText(body []byte, fragment string) bool {
	return bytes.Contains(body, []byte(fragment))
}
