// Package storage defines the persistence gateway consumed by the account service.
package storage

import (
	"context"

	"github.com/postitapplications/account-service/internal/platform/errors"
	"github.com/postitapplications/account-service/internal/services/account/account"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New(errors.CodeNotFound, "record not found")

// ErrNameTaken indicates an insert hit the unique constraint on the account name.
var ErrNameTaken = errors.New(errors.CodeAccountNameTaken, "account name is already taken")

// UpdateResult reports how many records an update matched.
// A zero matched count is the storage-level signal for an absent record.
type UpdateResult struct {
	MatchedCount int64
}

// DeleteResult reports how many records a delete removed.
type DeleteResult struct {
	DeletedCount int64
}

// AccountStore persists account records.
//
// The store treats the account ID as the unique key and performs no semantic
// validation; all field checks happen in the service layer. InsertAccount
// returns ErrNameTaken when the name uniqueness constraint rejects the write,
// which backstops the service's check-then-insert sequence.
type AccountStore interface {
	InsertAccount(ctx context.Context, a account.Account) (account.Account, error)
	GetAccount(ctx context.Context, id string) (account.Account, error)
	GetAccountByName(ctx context.Context, name string) (account.Account, error)
	UpdateAccount(ctx context.Context, a account.Account) (UpdateResult, error)
	DeleteAccount(ctx context.Context, id string) (DeleteResult, error)
}
