// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extract

import "errors"

var (
	// ErrParseFailure is returned when the body is not a JSON object.
	ErrParseFailure = errors.New("response body is not a JSON object")

	// ErrFieldMissing is returned when the body is valid JSON but lacks the
	// requested field.
	ErrFieldMissing = errors.New("field missing from response body")
)

// UnknownError is the message reported when no error text can be found.
const UnknownError = "Unknown error"
