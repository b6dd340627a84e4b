// Package memory provides an in-memory account store for tests and local runs.
package memory

import (
	"context"
	"sync"

	"github.com/postitapplications/account-service/internal/services/account/account"
	"github.com/postitapplications/account-service/internal/services/account/storage"
)

// Store keeps account records in a map guarded by a mutex.
//
// It mirrors the observable contract of the SQLite store, including the
// unique-name backstop, so the service behaves identically against either.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]account.Account
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{accounts: make(map[string]account.Account)}
}

// InsertAccount inserts one account record and echoes the stored record back.
func (s *Store) InsertAccount(ctx context.Context, a account.Account) (account.Account, error) {
	if err := ctx.Err(); err != nil {
		return account.Account{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.accounts {
		if existing.Name == a.Name {
			return account.Account{}, storage.ErrNameTaken
		}
	}
	s.accounts[a.ID] = a
	return a, nil
}

// GetAccount returns one account by id.
func (s *Store) GetAccount(ctx context.Context, id string) (account.Account, error) {
	if err := ctx.Err(); err != nil {
		return account.Account{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return account.Account{}, storage.ErrNotFound
	}
	return a, nil
}

// GetAccountByName returns one account by its unique name.
func (s *Store) GetAccountByName(ctx context.Context, name string) (account.Account, error) {
	if err := ctx.Err(); err != nil {
		return account.Account{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.Name == name {
			return a, nil
		}
	}
	return account.Account{}, storage.ErrNotFound
}

// UpdateAccount rewrites the name and password of the record matching the
// account id and reports how many records matched.
func (s *Store) UpdateAccount(ctx context.Context, a account.Account) (storage.UpdateResult, error) {
	if err := ctx.Err(); err != nil {
		return storage.UpdateResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.accounts[a.ID]
	if !ok {
		return storage.UpdateResult{MatchedCount: 0}, nil
	}
	for id, other := range s.accounts {
		if id != a.ID && other.Name == a.Name {
			return storage.UpdateResult{}, storage.ErrNameTaken
		}
	}
	existing.Name = a.Name
	existing.Password = a.Password
	s.accounts[a.ID] = existing
	return storage.UpdateResult{MatchedCount: 1}, nil
}

// DeleteAccount removes the record matching the account id and reports how
// many records were removed.
func (s *Store) DeleteAccount(ctx context.Context, id string) (storage.DeleteResult, error) {
	if err := ctx.Err(); err != nil {
		return storage.DeleteResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return storage.DeleteResult{DeletedCount: 0}, nil
	}
	delete(s.accounts, id)
	return storage.DeleteResult{DeletedCount: 1}, nil
}

var _ storage.AccountStore = (*Store)(nil)
