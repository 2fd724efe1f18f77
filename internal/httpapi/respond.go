package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jacoagency/productivity/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps the service error taxonomy onto HTTP statuses. Storage
// failures surface as a generic 500 without internal detail.
func writeError(w http.ResponseWriter, logEntry *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		logEntry.WithError(err).Warn("request rejected")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrConflict):
		logEntry.WithError(err).Warn("schedule conflict")
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		logEntry.WithError(err).Warn("record not found")
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	default:
		logEntry.WithError(err).Error("internal error")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
