package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"bankledger/model"
	"bankledger/storage"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	store  storage.Store
	logger *logrus.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(store storage.Store, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{store: store, logger: logger}
}

// CreateAccountHandler handles the creation of a new bank account.
// It expects a JSON body with "initial_balance".
//
// Method: POST
// Path: /accounts
// Success: 201 Created with the account snapshot
// Error: 400 Bad Request (invalid JSON)
// Error: 422 Unprocessable Entity (negative initial balance)
func (h *AccountHandler) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	acc, err := h.store.CreateAccount(r.Context(), req.InitialBalance)
	if err != nil {
		writeStoreError(w, h.logger, err)
		return
	}

	h.logger.WithField("account_id", acc.AccountID).Info("account created")
	writeJSON(w, h.logger, http.StatusCreated, acc)
}

// GetAccountHandler handles retrieving a specific account's snapshot.
// It expects an "account_id" as a URL path parameter.
//
// Method: GET
// Path: /accounts/{account_id}
// Success: 200 OK
// Error: 404 Not Found (if account does not exist)
func (h *AccountHandler) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["account_id"]

	acc, err := h.store.GetAccount(r.Context(), id)
	if err != nil {
		writeStoreError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, acc)
}

// DepositHandler adds an amount to an account.
//
// Method: POST
// Path: /accounts/{account_id}/deposit
// Success: 200 OK with the updated snapshot
// Error: 400 Bad Request (invalid JSON)
// Error: 404 Not Found / 422 Unprocessable Entity (rule violation)
func (h *AccountHandler) DepositHandler(w http.ResponseWriter, r *http.Request) {
	h.applyAmount(w, r, h.store.Deposit, "deposit")
}

// WithdrawHandler subtracts an amount from an account. A withdrawal
// outside the business window is a 422 like any other rule violation.
//
// Method: POST
// Path: /accounts/{account_id}/withdraw
// Success: 200 OK with the updated snapshot
// Error: 400 Bad Request (invalid JSON)
// Error: 404 Not Found / 422 Unprocessable Entity (rule violation)
func (h *AccountHandler) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	h.applyAmount(w, r, h.store.Withdraw, "withdraw")
}

// DeactivateHandler terminally closes an account.
//
// Method: POST
// Path: /accounts/{account_id}/deactivate
// Success: 200 OK with the closed snapshot
// Error: 404 Not Found / 422 Unprocessable Entity (rule violation)
func (h *AccountHandler) DeactivateHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["account_id"]

	acc, err := h.store.Deactivate(r.Context(), id)
	if err != nil {
		writeStoreError(w, h.logger, err)
		return
	}

	h.logger.WithField("account_id", id).Info("account deactivated")
	writeJSON(w, h.logger, http.StatusOK, acc)
}

type amountOp func(ctx context.Context, id string, amount decimal.Decimal) (*model.Account, error)

func (h *AccountHandler) applyAmount(w http.ResponseWriter, r *http.Request, op amountOp, name string) {
	id := mux.Vars(r)["account_id"]

	var req model.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	acc, err := op(r.Context(), id, req.Amount)
	if err != nil {
		writeStoreError(w, h.logger, err)
		return
	}

	h.logger.WithFields(logrus.Fields{"account_id": id, "operation": name}).Info("balance updated")
	writeJSON(w, h.logger, http.StatusOK, acc)
}
