package handler

import (
	"encoding/json"
	"net/http"

	"bankledger/model"
	"bankledger/storage"

	"github.com/sirupsen/logrus"
)

// TransactionHandler holds dependencies for transfer handlers.
type TransactionHandler struct {
	store  storage.Store
	logger *logrus.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(store storage.Store, logger *logrus.Logger) *TransactionHandler {
	return &TransactionHandler{store: store, logger: logger}
}

// CreateTransactionHandler handles the submission of a transfer between
// two accounts. The movement is atomic: a failing precondition leaves
// both balances untouched. Self-transfer, inactive accounts,
// insufficient funds and the business window are all enforced by the
// domain and reported as 422.
//
// Method: POST
// Path: /transactions
// Success: 200 OK
// Error: 400 Bad Request (invalid JSON)
// Error: 404 Not Found (unknown source or destination)
// Error: 422 Unprocessable Entity (rule violation)
func (h *TransactionHandler) CreateTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.store.ExecuteTransfer(r.Context(), req); err != nil {
		writeStoreError(w, h.logger, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"source_account_id":      req.SourceAccountID,
		"destination_account_id": req.DestinationAccountID,
	}).Info("transfer executed")
	w.WriteHeader(http.StatusOK)
}
