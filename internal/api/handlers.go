package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fabshop-api/service"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// respondServiceError maps service sentinel errors onto HTTP statuses.
// Anything unrecognized is a storage failure.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrProjectRequired),
		errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrFileNameEmpty),
		errors.Is(err, service.ErrEmptyUpload),
		errors.Is(err, service.ErrSignerRequired),
		errors.Is(err, service.ErrInvalidLedgerStatus):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, service.ErrFileNotFound),
		errors.Is(err, service.ErrLedgerEntryNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrProjectExists),
		errors.Is(err, service.ErrLedgerNotSubmitted):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "storage error")
	}
}

// handleHealth returns the readiness of the application
func handleHealth(healthService *HealthService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ready := healthService.IsReady()
		logger.Debug("received health check request", zap.Bool("ready", ready))
		if !ready {
			http.Error(w, "Not ready", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	}
}
