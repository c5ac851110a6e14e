// storage/memory.go

package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"bankledger/bank"
	"bankledger/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Custom errors for the storage layer.
var (
	ErrNotFound     = errors.New("account not found")
	ErrUserNotFound = errors.New("user not found")
)

// Store defines the interface for account and user registry operations.
// Domain rule violations pass through as *bank.ValidationError.
type Store interface {
	CreateAccount(ctx context.Context, initialBalance decimal.Decimal) (*model.Account, error)
	GetAccount(ctx context.Context, id string) (*model.Account, error)
	Deposit(ctx context.Context, id string, amount decimal.Decimal) (*model.Account, error)
	Withdraw(ctx context.Context, id string, amount decimal.Decimal) (*model.Account, error)
	Deactivate(ctx context.Context, id string) (*model.Account, error)
	ExecuteTransfer(ctx context.Context, req model.TransferRequest) error
	CreateUser(ctx context.Context, name, email string) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	AttachAccount(ctx context.Context, userID, accountID string) (*model.User, error)
}

// userRecord pairs the aggregate with the registry IDs of the accounts
// attached to it, in insertion order.
type userRecord struct {
	user       *bank.User
	accountIDs []string
}

// MemoryStore implements Store on top of in-process maps. A single mutex
// serializes every operation, so a transfer mutates both accounts inside
// one critical section and no per-account lock ordering is needed.
type MemoryStore struct {
	mu       sync.Mutex
	accounts map[string]*bank.Account
	users    map[string]*userRecord
	now      func() time.Time
}

// NewMemoryStore creates an empty registry on the real wall clock.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(time.Now)
}

// NewMemoryStoreWithClock pins the clock handed to every account it
// creates, so the withdrawal business-window check is deterministic in
// tests.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		accounts: make(map[string]*bank.Account),
		users:    make(map[string]*userRecord),
		now:      now,
	}
}

// CreateAccount registers a new account under a fresh ID.
func (s *MemoryStore) CreateAccount(_ context.Context, initialBalance decimal.Decimal) (*model.Account, error) {
	acc, err := bank.NewAccountWithClock(initialBalance, s.now)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.accounts[id] = acc
	return snapshot(id, acc), nil
}

// GetAccount retrieves a single account snapshot by its ID.
func (s *MemoryStore) GetAccount(_ context.Context, id string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return snapshot(id, acc), nil
}

// Deposit adds amount to the identified account.
func (s *MemoryStore) Deposit(_ context.Context, id string, amount decimal.Decimal) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := acc.Deposit(amount); err != nil {
		return nil, err
	}
	return snapshot(id, acc), nil
}

// Withdraw subtracts amount from the identified account.
func (s *MemoryStore) Withdraw(_ context.Context, id string, amount decimal.Decimal) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := acc.Withdraw(amount); err != nil {
		return nil, err
	}
	return snapshot(id, acc), nil
}

// Deactivate closes the identified account.
func (s *MemoryStore) Deactivate(_ context.Context, id string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := acc.Deactivate(); err != nil {
		return nil, err
	}
	return snapshot(id, acc), nil
}

// ExecuteTransfer moves the amount between two registered accounts. The
// domain entity performs the movement, so either both balances change or
// neither does.
func (s *MemoryStore) ExecuteTransfer(_ context.Context, req model.TransferRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, ok := s.accounts[req.SourceAccountID]
	if !ok {
		return ErrNotFound
	}
	dst, ok := s.accounts[req.DestinationAccountID]
	if !ok {
		return ErrNotFound
	}
	return src.TransferTo(req.Amount, dst)
}

// CreateUser registers a new user under a fresh ID.
func (s *MemoryStore) CreateUser(_ context.Context, name, email string) (*model.User, error) {
	u, err := bank.NewUser(name, email)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	rec := &userRecord{user: u}
	s.users[id] = rec
	return userSnapshot(id, rec), nil
}

// GetUser retrieves a user snapshot, total balance included.
func (s *MemoryStore) GetUser(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return userSnapshot(id, rec), nil
}

// AttachAccount adds an existing account to the user's aggregate. The
// user tracks the live account reference, not a copy, so later balance
// changes show up in the user's total.
func (s *MemoryStore) AttachAccount(_ context.Context, userID, accountID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, ErrNotFound
	}
	if err := rec.user.AddAccount(acc); err != nil {
		return nil, err
	}
	rec.accountIDs = append(rec.accountIDs, accountID)
	return userSnapshot(userID, rec), nil
}

func snapshot(id string, acc *bank.Account) *model.Account {
	return &model.Account{
		AccountID: id,
		Balance:   acc.Balance(),
		Active:    acc.Active(),
	}
}

func userSnapshot(id string, rec *userRecord) *model.User {
	ids := make([]string, len(rec.accountIDs))
	copy(ids, rec.accountIDs)
	return &model.User{
		UserID:       id,
		Name:         rec.user.Name(),
		Email:        rec.user.Email(),
		AccountIDs:   ids,
		TotalBalance: rec.user.TotalBalance(),
	}
}
