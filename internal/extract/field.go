// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package extract reads values out of raw response bodies.
//
// Two families of helpers live here. The structured ones parse the body as
// JSON and look fields up by name. The textual ones ([ScrapeErrorMessage],
// [ContainsText]) scan the raw text and never fail.
package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

func parseObject(body []byte) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	if obj == nil {
		return nil, ErrParseFailure
	}
	return obj, nil
}

// render returns JSON strings unquoted and every other value as compact JSON.
func render(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// RenderValue renders a whole body holding a single JSON value, as the
// database returns for a read: strings unquoted, anything else compact.
func RenderValue(body []byte) (string, error) {
	if !json.Valid(body) {
		return "", ErrParseFailure
	}
	return render(body), nil
}

// ExtractField returns the top-level field name of a JSON object body. ok is
// false when the body does not parse or the field is absent.
func ExtractField(body []byte, name string) (value string, ok bool) {
	value, err := LookupField(body, name)
	return value, err == nil
}

// LookupField is [ExtractField] with a reason on failure: [ErrParseFailure]
// or [ErrFieldMissing].
func LookupField(body []byte, name string) (string, error) {
	obj, err := parseObject(body)
	if err != nil {
		return "", err
	}

	raw, ok := obj[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrFieldMissing, name)
	}
	return render(raw), nil
}

// LookupFields returns every named top-level field, or an error for the first
// one that is missing.
func LookupFields(body []byte, names ...string) (map[string]string, error) {
	obj, err := parseObject(body)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(names))
	for _, name := range names {
		raw, ok := obj[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrFieldMissing, name)
		}
		values[name] = render(raw)
	}
	return values, nil
}

// LookupPath walks nested objects and arrays. Array elements are addressed by
// their decimal index, e.g. LookupPath(body, "users", "0", "emailVerified").
func LookupPath(body []byte, segments ...string) (string, error) {
	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		return "", ErrParseFailure
	}

	current := json.RawMessage(body)
	for i, segment := range segments {
		next, ok := step(current, segment)
		if !ok {
			return "", fmt.Errorf("%w: %q at segment %d", ErrFieldMissing, segment, i)
		}
		current = next
	}
	return render(current), nil
}

func step(raw json.RawMessage, segment string) (json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false
	}

	switch trimmed[0] {
	case '{':
		var obj map[string]json.RawMessage
		if json.Unmarshal(trimmed, &obj) != nil {
			return nil, false
		}
		next, ok := obj[segment]
		return next, ok
	case '[':
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 0 {
			return nil, false
		}
		var arr []json.RawMessage
		if json.Unmarshal(trimmed, &arr) != nil || idx >= len(arr) {
			return nil, false
		}
		return arr[idx], true
	default:
		return nil, false
	}
}

// HasField reports whether the body is a JSON object carrying name.
func HasField(body []byte, name string) bool {
	obj, err := parseObject(body)
	if err != nil {
		return false
	}
	_, ok := obj[name]
	return ok
}
