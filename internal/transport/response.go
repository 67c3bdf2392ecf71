package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ganot/tasktrack/internal/domain/item"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps domain errors to status codes. Anything unexpected is
// logged and reported as a 500 without the underlying detail.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, item.ErrItemNotFound):
		writeError(w, http.StatusNotFound, item.ErrItemNotFound.Error())
	case errors.Is(err, item.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		LoggerFromContext(r.Context(), s.logger).Error("request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
