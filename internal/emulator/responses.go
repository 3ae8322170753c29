package emulator

import (
	"net/http"

	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/utils"
)

// errorDetail is one entry of the "errors" array of an identity error.
type errorDetail struct {
	Message string `json:"message"`
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
}

// authErrorBody is the Google API error envelope.
type authErrorBody struct {
	Error struct {
		Code    int           `json:"code"`
		Message string        `json:"message"`
		Errors  []errorDetail `json:"errors"`
	} `json:"error"`
}

func newAuthErrorBody(status int, message string) authErrorBody {
	var body authErrorBody
	body.Error.Code = status
	body.Error.Message = message
	body.Error.Errors = []errorDetail{{Message: message, Domain: "global", Reason: "invalid"}}
	return body
}

// writeAuth answers an identity call with chunked framing.
func writeAuth(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteChunkedJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}

// writeAuthError answers an identity call with a chunked error envelope.
func writeAuthError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if _, err := utils.WriteChunkedJSON(w, newAuthErrorBody(status, message), status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write error response")
	}
}

// writeTokenError answers a token call with a Content-Length framed error.
func writeTokenError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if _, err := utils.WriteJSON(w, newAuthErrorBody(status, message), status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write error response")
	}
}

// writeDatabaseError answers a database call with {"error": message}.
func writeDatabaseError(w http.ResponseWriter, status int, message string) {
	_, _ = utils.WriteJSON(w, map[string]string{"error": message}, status)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeDatabaseError(w, http.StatusNotFound, MsgNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeDatabaseError(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
