package emulator

import (
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/utils"
	"github.com/MKhiriev/go-firebase-client/internal/validators"
	"github.com/MKhiriev/go-firebase-client/models"
)

const maxDataBody = 16 << 20

// dataSegments maps "/a/b.json" to ["a", "b"], answering 404 for paths
// without the .json suffix and 400 for invalid keys.
func (h *Handler) dataSegments(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	path, ok := strings.CutSuffix(r.URL.Path, ".json")
	if !ok {
		writeDatabaseError(w, http.StatusNotFound, MsgNotFound)
		return nil, false
	}

	if err := h.validator.Validate(r.Context(), models.DataLocation{Path: path}); err != nil {
		logger.FromRequest(r).Err(err).Str("path", path).Msg("invalid database path")
		writeDatabaseError(w, http.StatusBadRequest, MsgInvalidPath)
		return nil, false
	}
	return validators.SplitPath(path), true
}

// readValue decodes the request body as one JSON value.
func readValue(w http.ResponseWriter, r *http.Request) (any, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDataBody))
	if err == nil {
		var value any
		if value, err = decodeValue(body); err == nil {
			return value, true
		}
	}

	logger.FromRequest(r).Err(err).Msg("invalid database payload")
	writeDatabaseError(w, http.StatusBadRequest, MsgInvalidData)
	return nil, false
}

func (h *Handler) getData(w http.ResponseWriter, r *http.Request) {
	segments, ok := h.dataSegments(w, r)
	if !ok {
		return
	}
	_, _ = utils.WriteJSON(w, h.tree.get(segments), http.StatusOK)
}

func (h *Handler) putData(w http.ResponseWriter, r *http.Request) {
	segments, ok := h.dataSegments(w, r)
	if !ok {
		return
	}
	value, ok := readValue(w, r)
	if !ok {
		return
	}

	h.tree.set(segments, value)
	h.logWrite(r, "put", segments)
	_, _ = utils.WriteJSON(w, value, http.StatusOK)
}

func (h *Handler) patchData(w http.ResponseWriter, r *http.Request) {
	segments, ok := h.dataSegments(w, r)
	if !ok {
		return
	}
	value, ok := readValue(w, r)
	if !ok {
		return
	}

	if children, isObject := value.(map[string]any); isObject {
		for key := range children {
			if err := validators.ValidateKey(key); err != nil {
				writeDatabaseError(w, http.StatusBadRequest, MsgInvalidPath)
				return
			}
		}
	}
	if err := h.tree.merge(segments, value); err != nil {
		writeDatabaseError(w, http.StatusBadRequest, MsgInvalidData)
		return
	}

	h.logWrite(r, "patch", segments)
	_, _ = utils.WriteJSON(w, value, http.StatusOK)
}

func (h *Handler) deleteData(w http.ResponseWriter, r *http.Request) {
	segments, ok := h.dataSegments(w, r)
	if !ok {
		return
	}

	h.tree.set(segments, nil)
	h.logWrite(r, "delete", segments)
	_, _ = utils.WriteJSON(w, nil, http.StatusOK)
}

func (h *Handler) logWrite(r *http.Request, op string, segments []string) {
	localID, _ := utils.GetLocalIDFromContext(r.Context())
	logger.FromRequest(r).Debug().
		Str("op", op).
		Str("path", "/"+strings.Join(segments, "/")).
		Str("local_id", localID).
		Send()
}
