package apperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"horse-registry/internal/platform/logger"

	"github.com/google/uuid"
)

type errorListResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

type internalErrorResponse struct {
	Message    string `json:"message"`
	IncidentID string `json:"incident_id"`
}

// WriteHTTP traduce un error de dominio al status correspondiente:
// 422 validación, 409 conflicto, 404 not found, 500 todo lo demás.
// Los 500 nunca exponen el detalle; se loguea con un incident_id.
func WriteHTTP(w http.ResponseWriter, log logger.Logger, err error) {
	var verr *ValidationError
	var cerr *ConflictError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorListResponse{Message: verr.Summary, Errors: verr.Errors})
	case errors.As(err, &cerr):
		writeJSON(w, http.StatusConflict, errorListResponse{Message: cerr.Summary, Errors: cerr.Errors})
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		incident := uuid.NewString()
		log.Error("request failed", map[string]any{
			"incident_id": incident,
			"error":       err.Error(),
			"fatal":       errors.Is(err, ErrFatal),
		})
		writeJSON(w, http.StatusInternalServerError, internalErrorResponse{
			Message:    "internal error",
			IncidentID: incident,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
