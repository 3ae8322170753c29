package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response
// with an explicit Content-Length, so the body is sent with identity framing.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"id_token": "..."}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(jsonData)))
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteChunkedJSON serializes data to JSON and writes it in two flushed
// halves without a Content-Length, which makes net/http frame the body with
// chunked transfer encoding. This mirrors how the identity endpoints answer.
//
// Example usage:
//
//	WriteChunkedJSON(w, map[string]string{"idToken": "..."}, http.StatusOK)
func WriteChunkedJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(statusCode)

	flusher, ok := w.(http.Flusher)
	if !ok {
		return w.Write(jsonData)
	}

	half := len(jsonData) / 2
	n, err := w.Write(jsonData[:half])
	if err != nil {
		return n, err
	}
	flusher.Flush()

	m, err := w.Write(jsonData[half:])
	flusher.Flush()
	return n + m, err
}
