package emulator

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a child logger carrying the request's trace id to the
// request context. A trace id sent by the client is reused.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

// withLogging writes one access log entry per request.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.URL.Path).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

// withAPIKey rejects identity and token calls whose ?key= differs from the
// configured API key. An empty configured key accepts any value.
func (h *Handler) withAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.cfg.APIKey != "" && r.URL.Query().Get("key") != h.cfg.APIKey {
			logger.FromRequest(r).Warn().Msg("request with an invalid API key")
			writeAuthError(w, r, http.StatusBadRequest, MsgAPIKeyInvalid)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withDatabaseAuth verifies ?auth= and stores the caller's local id in the
// request context. Without RequireAuth a missing token is accepted, but a
// token that is present must still be valid.
func (h *Handler) withDatabaseAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := r.URL.Query().Get("auth")
		if token == "" {
			if h.cfg.RequireAuth {
				log.Warn().Str("path", r.URL.Path).Msg("database request without auth")
				writeDatabaseError(w, http.StatusUnauthorized, MsgPermissionDenied)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		localID, err := utils.ValidateIDToken(token, h.cfg.TokenSignKey, TokenIssuer)
		if err != nil {
			log.Err(err).Msg("invalid database auth token")
			writeDatabaseError(w, http.StatusUnauthorized, MsgInvalidAuthToken)
			return
		}

		ctx := context.WithValue(r.Context(), utils.LocalIDCtxKey, localID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// responseWriter records the status and body size for the access log.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Flush keeps chunked responses working through the wrapper.
func (w *responseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
