package handler

import (
	"encoding/json"
	"net/http"

	"bankledger/model"
	"bankledger/storage"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	store  storage.Store
	logger *logrus.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(store storage.Store, logger *logrus.Logger) *UserHandler {
	return &UserHandler{store: store, logger: logger}
}

// CreateUserHandler registers a user. Name and email must be non-blank.
//
// Method: POST
// Path: /users
// Success: 201 Created with the user snapshot
// Error: 400 Bad Request (invalid JSON)
// Error: 422 Unprocessable Entity (blank name or email)
func (h *UserHandler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.store.CreateUser(r.Context(), req.Name, req.Email)
	if err != nil {
		writeStoreError(w, h.logger, err)
		return
	}

	h.logger.WithField("user_id", u.UserID).Info("user created")
	writeJSON(w, h.logger, http.StatusCreated, u)
}

// GetUserHandler returns a user snapshot including the total balance of
// every attached account, recomputed for this request.
//
// Method: GET
// Path: /users/{user_id}
// Success: 200 OK
// Error: 404 Not Found
func (h *UserHandler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["user_id"]

	u, err := h.store.GetUser(r.Context(), id)
	if err != nil {
		writeStoreError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, u)
}

// AttachAccountHandler attaches an existing account to a user.
//
// Method: POST
// Path: /users/{user_id}/accounts
// Success: 200 OK with the updated user snapshot
// Error: 400 Bad Request (invalid JSON)
// Error: 404 Not Found (unknown user or account)
func (h *UserHandler) AttachAccountHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	var req model.AttachAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.store.AttachAccount(r.Context(), userID, req.AccountID)
	if err != nil {
		writeStoreError(w, h.logger, err)
		return
	}

	h.logger.WithFields(logrus.Fields{"user_id": userID, "account_id": req.AccountID}).Info("account attached")
	writeJSON(w, h.logger, http.StatusOK, u)
}
