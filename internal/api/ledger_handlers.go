package api

import (
	"net/http"

	"fabshop-api/models"
	"fabshop-api/service"

	"go.uber.org/zap"
)

func handleLedgerCreate(ledger service.LedgerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input service.LedgerCreateInput
		if err := decodeJSON(r, &input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		entry, err := ledger.Create(input)
		if err != nil {
			respondServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)
	}
}

func handleLedgerList(ledger service.LedgerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := ledger.ListByProject(r.URL.Query().Get("project_no"))
		if err != nil {
			respondServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": entries})
	}
}

func handleLedgerGet(ledger service.LedgerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry, err := ledger.Get(r.PathValue("id"))
		if err != nil {
			respondServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, entry)
	}
}

func handleLedgerUpdate(ledger service.LedgerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input service.LedgerUpdateInput
		if err := decodeJSON(r, &input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		entry, err := ledger.Update(r.PathValue("id"), input)
		if err != nil {
			respondServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, entry)
	}
}

type ledgerDecisionRequest struct {
	SignedBy string `json:"signed_by"`
}

func handleLedgerApprove(ledger service.LedgerService, logger *zap.Logger) http.HandlerFunc {
	return ledgerDecisionHandler(ledger.Approve, logger)
}

func handleLedgerReject(ledger service.LedgerService, logger *zap.Logger) http.HandlerFunc {
	return ledgerDecisionHandler(ledger.Reject, logger)
}

func ledgerDecisionHandler(decide func(id, signedBy string) (models.LedgerEntry, error), logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ledgerDecisionRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		entry, err := decide(r.PathValue("id"), req.SignedBy)
		if err != nil {
			respondServiceError(w, logger, err)
			return
		}

		logger.Info("ledger entry decided",
			zap.String("entry_id", entry.ID),
			zap.String("status", entry.Status),
		)
		writeJSON(w, http.StatusOK, entry)
	}
}

func handleLedgerDelete(ledger service.LedgerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if err := ledger.Delete(id); err != nil {
			respondServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
	}
}
