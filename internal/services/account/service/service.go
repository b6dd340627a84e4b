// Package service implements account orchestration between transport and storage.
package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/postitapplications/account-service/internal/platform/errors"
	"github.com/postitapplications/account-service/internal/platform/id"
	"github.com/postitapplications/account-service/internal/services/account/account"
	"github.com/postitapplications/account-service/internal/services/account/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Service validates account operations and maps storage outcomes to domain
// results. It holds no state between calls; the store is the only shared
// resource.
type Service struct {
	store       storage.AccountStore
	idGenerator func() (string, error)
	tracer      trace.Tracer
}

// New creates an account service with production defaults.
func New(store storage.AccountStore) *Service {
	return &Service{
		store:       store,
		idGenerator: id.NewID,
		tracer:      otel.Tracer("account-service/service"),
	}
}

// Create validates the candidate, enforces name uniqueness, assigns an
// identifier when the candidate carries none, and persists the record.
//
// The name lookup and the insert are two separate store calls; the store's
// unique-name constraint backstops the gap, and its conflict error is
// translated to the same name-taken failure the lookup produces.
func (s *Service) Create(ctx context.Context, candidate *account.Account) (account.Account, error) {
	ctx, span := s.tracer.Start(ctx, "account.Create")
	defer span.End()

	if err := account.ValidateAccount(candidate); err != nil {
		return account.Account{}, err
	}

	_, err := s.store.GetAccountByName(ctx, candidate.Name)
	if err == nil {
		return account.Account{}, nameTakenError(candidate.Name)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return account.Account{}, fmt.Errorf("check account name: %w", err)
	}

	record := *candidate
	if record.ID == "" {
		generated, err := s.idGenerator()
		if err != nil {
			return account.Account{}, fmt.Errorf("generate account id: %w", err)
		}
		record.ID = generated
	}

	stored, err := s.store.InsertAccount(ctx, record)
	if err != nil {
		if errors.Is(err, storage.ErrNameTaken) {
			return account.Account{}, nameTakenError(candidate.Name)
		}
		return account.Account{}, err
	}
	return stored, nil
}

// GetByID returns the account stored under the identifier. Absence is passed
// through as storage.ErrNotFound; deciding whether absence is an error belongs
// to the caller.
func (s *Service) GetByID(ctx context.Context, accountID string) (account.Account, error) {
	ctx, span := s.tracer.Start(ctx, "account.GetByID")
	defer span.End()

	if err := account.ValidateID(accountID); err != nil {
		return account.Account{}, err
	}
	return s.store.GetAccount(ctx, accountID)
}

// GetByName returns the account stored under the unique name, with the same
// absence pass-through as GetByID.
func (s *Service) GetByName(ctx context.Context, name string) (account.Account, error) {
	ctx, span := s.tracer.Start(ctx, "account.GetByName")
	defer span.End()

	if err := account.ValidateName(name); err != nil {
		return account.Account{}, err
	}
	return s.store.GetAccountByName(ctx, name)
}

// Update rewrites the name and password of the record addressed by the
// candidate's identifier. The matched count is returned unmodified; zero
// means no such account exists.
func (s *Service) Update(ctx context.Context, candidate *account.Account) (storage.UpdateResult, error) {
	ctx, span := s.tracer.Start(ctx, "account.Update")
	defer span.End()

	if err := account.ValidateAccount(candidate); err != nil {
		return storage.UpdateResult{}, err
	}
	if err := account.ValidateID(candidate.ID); err != nil {
		return storage.UpdateResult{}, err
	}
	return s.store.UpdateAccount(ctx, *candidate)
}

// DeleteByID removes the record addressed by the identifier. The deleted
// count is returned unmodified; zero means no such account exists.
func (s *Service) DeleteByID(ctx context.Context, accountID string) (storage.DeleteResult, error) {
	ctx, span := s.tracer.Start(ctx, "account.DeleteByID")
	defer span.End()

	if err := account.ValidateID(accountID); err != nil {
		return storage.DeleteResult{}, err
	}
	return s.store.DeleteAccount(ctx, accountID)
}

func nameTakenError(name string) error {
	return apperrors.WithMetadata(
		apperrors.CodeAccountNameTaken,
		fmt.Sprintf("Cannot save user as %s is already taken", name),
		map[string]string{"name": name},
	)
}
