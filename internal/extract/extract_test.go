// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ExtractField / LookupField ───────────────────────────────────────────────

func TestExtractField(t *testing.T) {
	body := []byte(`{"idToken":"T1","expiresIn":"3600","n":12,"ok":true,"obj":{"a": [1, 2]},"nil":null}`)

	tests := []struct {
		name  string
		field string
		want  string
		ok    bool
	}{
		{"string is unquoted", "idToken", "T1", true},
		{"numeric string", "expiresIn", "3600", true},
		{"number", "n", "12", true},
		{"bool", "ok", "true", true},
		{"object is compacted", "obj", `{"a":[1,2]}`, true},
		{"null", "nil", "null", true},
		{"missing", "localId", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractField(body, tt.field)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractField_UnparsableBody(t *testing.T) {
	for _, body := range []string{"", "not json", `{"idToken":`, "null", `["idToken"]`} {
		got, ok := ExtractField([]byte(body), "idToken")
		assert.False(t, ok, body)
		assert.Empty(t, got, body)
	}
}

func TestExtractField_EscapedString(t *testing.T) {
	got, ok := ExtractField([]byte(`{"v":"a\"b\\cé"}`), "v")
	require.True(t, ok)
	assert.Equal(t, `a"b\cé`, got)
}

func TestLookupField_DistinguishesFailures(t *testing.T) {
	_, err := LookupField([]byte("<html>"), "idToken")
	assert.ErrorIs(t, err, ErrParseFailure)

	_, err = LookupField([]byte(`{"kind":"x"}`), "idToken")
	assert.ErrorIs(t, err, ErrFieldMissing)
	assert.NotErrorIs(t, err, ErrParseFailure)
}

// ── LookupFields ─────────────────────────────────────────────────────────────

func TestLookupFields(t *testing.T) {
	body := []byte(`{"idToken":"T1","localId":"U1","refreshToken":"R1","email":"a@b.com"}`)

	values, err := LookupFields(body, "idToken", "localId", "refreshToken")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"idToken": "T1", "localId": "U1", "refreshToken": "R1"}, values)

	values, err = LookupFields([]byte(`{"idToken":"T1","localId":"U1"}`), "idToken", "localId", "refreshToken")
	assert.ErrorIs(t, err, ErrFieldMissing)
	assert.Nil(t, values)

	_, err = LookupFields([]byte("oops"), "idToken")
	assert.ErrorIs(t, err, ErrParseFailure)
}

// ── LookupPath ───────────────────────────────────────────────────────────────

func TestLookupPath(t *testing.T) {
	body := []byte(`{"kind":"identitytoolkit#GetAccountInfoResponse","users":[{"localId":"U1","emailVerified":true}]}`)

	got, err := LookupPath(body, "users", "0", "emailVerified")
	require.NoError(t, err)
	assert.Equal(t, "true", got)

	got, err = LookupPath(body, "users", "0", "localId")
	require.NoError(t, err)
	assert.Equal(t, "U1", got)

	got, err = LookupPath(body)
	require.NoError(t, err)
	assert.JSONEq(t, string(body), got)

	for _, segments := range [][]string{
		{"users", "1", "emailVerified"},
		{"users", "x"},
		{"users", "-1"},
		{"kind", "0"},
		{"missing"},
	} {
		_, err = LookupPath(body, segments...)
		assert.ErrorIs(t, err, ErrFieldMissing, segments)
	}

	_, err = LookupPath([]byte("{bad"), "users")
	assert.ErrorIs(t, err, ErrParseFailure)
}

// ── ScrapeErrorMessage ───────────────────────────────────────────────────────

func TestScrapeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "identity toolkit error",
			body: `{"error":{"code":400,"message":"EMAIL_NOT_FOUND","errors":[{"message":"EMAIL_NOT_FOUND","domain":"global"}]}}`,
			want: "EMAIL_NOT_FOUND",
		},
		{
			name: "pretty printed with space after colon",
			body: "{\n  \"error\": {\n    \"code\": 400,\n    \"message\": \"INVALID_PASSWORD\"\n  }\n}",
			want: "INVALID_PASSWORD",
		},
		{
			name: "message with detail",
			body: `{"error":{"message":"WEAK_PASSWORD : Password should be at least 6 characters"}}`,
			want: "WEAK_PASSWORD : Password should be at least 6 characters",
		},
		{
			name: "escaped quote inside message",
			body: `{"error":{"message":"bad \"value\" here"}}`,
			want: `bad \"value\" here`,
		},
		{
			name: "unterminated message runs to end",
			body: `{"error":{"message":"TRUNCATED`,
			want: "TRUNCATED",
		},
		{
			name: "false positive on unrelated error substring",
			body: `{"note":"error","message":"hello"}`,
			want: "hello",
		},
		{
			name: "message before error is not used",
			body: `{"message":"first","error":{"code":1}}`,
			want: UnknownError,
		},
		{name: "no error anchor", body: `{"message":"x"}`, want: UnknownError},
		{name: "error without message", body: `{"error":"Permission denied"}`, want: UnknownError},
		{name: "empty", body: "", want: UnknownError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScrapeErrorMessage([]byte(tt.body)))
		})
	}
}

// ── ErrorMessage ─────────────────────────────────────────────────────────────

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"nested message", `{"error":{"code":400,"message":"EMAIL_EXISTS"}}`, "EMAIL_EXISTS"},
		{"database string error", `{"error":"Permission denied"}`, "Permission denied"},
		{"error object without message", `{"error":{"code":500}}`, UnknownError},
		{"no error member", `{"ok":true}`, UnknownError},
		{"non JSON falls back to scrape", `oops "error" then "message": "from text"`, "from text"},
		{"non JSON without anchors", `<html>bad gateway</html>`, UnknownError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage([]byte(tt.body)))
		})
	}
}

// ── HasField / ContainsText ──────────────────────────────────────────────────

func TestHasField(t *testing.T) {
	assert.True(t, HasField([]byte(`{"email":"a@b.com"}`), "email"))
	assert.True(t, HasField([]byte(`{"email":null}`), "email"))
	assert.False(t, HasField([]byte(`{"kind":"x"}`), "email"))
	assert.False(t, HasField([]byte(`{"error":{"message":"email missing"}}`), "email"))
	assert.False(t, HasField([]byte(`not json "email"`), "email"))
}

func TestContainsText(t *testing.T) {
	body := []byte(`{"users":[{"emailVerified":true}]}`)
	assert.True(t, ContainsText(body, `"emailVerified":true`))
	assert.False(t, ContainsText(body, `"emailVerified":false`))
	assert.True(t, ContainsText([]byte(`{"error":{"message":"email missing"}}`), "email"))
}

func TestRenderValue(t *testing.T) {
	tests := []struct{ body, want string }{
		{body: `"hello"`, want: "hello"},
		{body: ` "a\"b" `, want: `a"b`},
		{body: `42`, want: "42"},
		{body: `true`, want: "true"},
		{body: `null`, want: "null"},
		{body: "{\"a\": 1,\n\"b\":[1, 2]}", want: `{"a":1,"b":[1,2]}`},
	}
	for _, tt := range tests {
		got, err := RenderValue([]byte(tt.body))
		require.NoError(t, err, tt.body)
		assert.Equal(t, tt.want, got, tt.body)
	}

	_, err := RenderValue([]byte(`{"broken"`))
	assert.ErrorIs(t, err, ErrParseFailure)

	_, err = RenderValue(nil)
	assert.ErrorIs(t, err, ErrParseFailure)
}
