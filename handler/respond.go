// Package handler translates HTTP requests into store and geolocator
// calls. No business rule lives here: handlers decode DTOs, delegate,
// and map the resulting errors onto status codes.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"bankledger/bank"
	"bankledger/storage"

	"github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, logger *logrus.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithError(err).Error("failed to write JSON response")
	}
}

// writeStoreError maps store failures to status codes: unknown IDs are
// 404, domain rule violations are 422 with the rule's message, anything
// else is a logged 500.
func writeStoreError(w http.ResponseWriter, logger *logrus.Logger, err error) {
	var verr *bank.ValidationError
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &verr):
		http.Error(w, verr.Reason, http.StatusUnprocessableEntity)
	default:
		logger.WithError(err).Error("unexpected store error")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
