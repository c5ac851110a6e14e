// Package bank holds the core banking domain: the Account entity, the
// User aggregate and the business rules guarding every mutation. It has
// no I/O; callers hold Account references directly and the storage and
// handler layers only translate in and out of it.
package bank

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a bank account entity. The balance never goes negative and
// the active flag only ever transitions from true to false. The zero
// value is not usable; construct through NewAccount.
//
// Amounts are decimal.Decimal rather than float64 so that monetary
// arithmetic stays exact.
type Account struct {
	balance decimal.Decimal
	active  bool
	now     func() time.Time
}

// NewAccount creates an active account holding initial as its balance.
// A negative initial balance is a construction error.
func NewAccount(initial decimal.Decimal) (*Account, error) {
	return NewAccountWithClock(initial, time.Now)
}

// NewAccountWithClock is NewAccount with a substitutable wall clock. The
// clock feeds the business-window check on withdrawals, so tests (and
// stores that need reproducible behavior) inject a fixed one.
func NewAccountWithClock(initial decimal.Decimal, now func() time.Time) (*Account, error) {
	if initial.IsNegative() {
		return nil, ErrNegativeInitialBalance
	}
	if now == nil {
		now = time.Now
	}
	return &Account{balance: initial, active: true, now: now}, nil
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Active reports whether the account still accepts mutations.
func (a *Account) Active() bool {
	return a.active
}

// Deposit adds amount to the balance. It fails on a deactivated account
// or a negative amount, in that order. There is no upper bound.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := a.validateActive(); err != nil {
		return err
	}
	if err := validateAmount(amount); err != nil {
		return err
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw subtracts amount from the balance. Preconditions, in order:
// the account is active, the amount is non-negative, the balance covers
// it, and the clock reads a time inside the business window. No state is
// written before every check has passed.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := a.validateActive(); err != nil {
		return err
	}
	if err := validateAmount(amount); err != nil {
		return err
	}
	if err := a.validateSufficientBalance(amount); err != nil {
		return err
	}
	if err := ValidateBusinessWindow(a.now()); err != nil {
		return err
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// TransferTo moves amount from this account into dest. Both accounts
// must be active and distinct, and the amount must be covered by the
// source balance. The actual movement delegates to Withdraw followed by
// Deposit, which means a transfer is also rejected outside the business
// window; that coupling is intentional. Because Withdraw re-runs its own
// checks and Deposit only runs after Withdraw succeeded, a failure at
// any point leaves both balances untouched and no rollback is needed.
func (a *Account) TransferTo(amount decimal.Decimal, dest *Account) error {
	if err := a.validateActive(); err != nil {
		return err
	}
	if dest == nil {
		return ErrNilDestination
	}
	if dest == a {
		return ErrSameAccount
	}
	if !dest.active {
		return ErrDestinationInactive
	}
	if err := validateAmount(amount); err != nil {
		return err
	}
	if err := a.validateSufficientBalance(amount); err != nil {
		return err
	}
	if err := a.Withdraw(amount); err != nil {
		return err
	}
	return dest.Deposit(amount)
}

// Deactivate closes the account for good. Only an active account with a
// zero balance can be deactivated; the transition is irreversible.
func (a *Account) Deactivate() error {
	if !a.active {
		return ErrAlreadyDeactivated
	}
	if a.balance.IsPositive() {
		return ErrRemainingBalance
	}
	a.active = false
	return nil
}

func (a *Account) validateActive() error {
	if !a.active {
		return ErrAccountDeactivated
	}
	return nil
}

func (a *Account) validateSufficientBalance(amount decimal.Decimal) error {
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientBalance
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}
