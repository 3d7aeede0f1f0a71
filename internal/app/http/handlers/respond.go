package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"tailormade/backend/internal/domain/pricing"
	"tailormade/backend/internal/domain/sequence"
	"tailormade/backend/internal/infra/db/postgres"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("respond: encode failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps the domain error taxonomy onto HTTP statuses:
// invalid input is the client's fault, a missing row is 404, and a counter
// store failure is a retryable 503.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pricing.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, postgres.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, sequence.ErrStorageUnavailable):
		log.Printf("handler: %v", err)
		writeError(w, http.StatusServiceUnavailable, "temporarily unable to allocate a code, please retry")
	default:
		log.Printf("handler: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
