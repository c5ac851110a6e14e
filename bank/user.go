package bank

import (
	"strings"

	"github.com/shopspring/decimal"
)

// User aggregates accounts under a name and an email. It references the
// accounts it tracks without owning them: it never mutates a balance and
// only sums what the accounts report. Insertion order is preserved and
// the same account may be added more than once.
type User struct {
	name     string
	email    string
	accounts []*Account
}

// NewUser creates a user. Name and email must both be non-blank; there
// is no format validation beyond that.
func NewUser(name, email string) (*User, error) {
	u := &User{}
	if err := u.SetName(name); err != nil {
		return nil, err
	}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	return u, nil
}

// Name returns the stored name verbatim.
func (u *User) Name() string {
	return u.name
}

// Email returns the stored email verbatim.
func (u *User) Email() string {
	return u.email
}

// SetName replaces the name, rejecting empty or whitespace-only values.
func (u *User) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	u.name = name
	return nil
}

// SetEmail replaces the email, rejecting empty or whitespace-only values.
func (u *User) SetEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrBlankEmail
	}
	u.email = email
	return nil
}

// AddAccount appends a reference to the tracked accounts.
func (u *User) AddAccount(a *Account) error {
	if a == nil {
		return ErrNilAccount
	}
	u.accounts = append(u.accounts, a)
	return nil
}

// Accounts returns the tracked accounts in insertion order. The slice is
// a copy; the elements are the live account references.
func (u *User) Accounts() []*Account {
	out := make([]*Account, len(u.accounts))
	copy(out, u.accounts)
	return out
}

// TotalBalance sums the balances of every tracked account. It is
// recomputed on each call, so mutations made to a tracked account since
// it was added are always reflected.
func (u *User) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range u.accounts {
		total = total.Add(a.Balance())
	}
	return total
}
