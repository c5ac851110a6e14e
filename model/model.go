// Package model defines the request and response bodies of the HTTP
// surface. Monetary fields use github.com/shopspring/decimal so amounts
// survive the wire without floating-point drift.
package model

import "github.com/shopspring/decimal"

// Account is the externally visible snapshot of a bank account.
type Account struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
	Active    bool            `json:"active"`
}

// CreateAccountRequest defines the expected JSON body for creating an account.
type CreateAccountRequest struct {
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// AmountRequest carries the amount for a deposit or a withdrawal.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TransferRequest defines the expected JSON body for submitting a transfer.
type TransferRequest struct {
	SourceAccountID      string          `json:"source_account_id"`
	DestinationAccountID string          `json:"destination_account_id"`
	Amount               decimal.Decimal `json:"amount"`
}

// User is the externally visible snapshot of a user and the accounts
// attached to it. TotalBalance is recomputed per request, never cached.
type User struct {
	UserID       string          `json:"user_id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	AccountIDs   []string        `json:"account_ids"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}

// CreateUserRequest defines the expected JSON body for creating a user.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AttachAccountRequest attaches an existing account to a user.
type AttachAccountRequest struct {
	AccountID string `json:"account_id"`
}

// Location is the response body of a geolocation lookup.
type Location struct {
	IP        string  `json:"ip"`
	Country   string  `json:"country"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
