// Package account defines the account entity and its field validation rules.
package account

import (
	apperrors "github.com/postitapplications/account-service/internal/platform/errors"
)

var (
	// ErrMissingAccount indicates an absent account record.
	ErrMissingAccount = apperrors.New(apperrors.CodeAccountMissing, "User cannot be null")
	// ErrMissingID indicates an absent account identifier.
	ErrMissingID = apperrors.New(apperrors.CodeAccountIDMissing, "Id cannot be null")
	// ErrEmptyName indicates an absent or empty account name.
	ErrEmptyName = apperrors.New(apperrors.CodeAccountNameEmpty, "User's username cannot be null or empty")
	// ErrEmptyPassword indicates an absent or empty password.
	ErrEmptyPassword = apperrors.New(apperrors.CodeAccountPasswordEmpty, "User's password cannot be null or empty")
)

// Account is a stored user account record.
//
// ID is assigned once on creation and never rewritten. Name is unique across
// the store. Password is stored verbatim; hashing is out of scope for this
// service.
type Account struct {
	ID       string
	Name     string
	Password string
}

// ValidateAccount checks the shape of a candidate account record.
// Name is checked before password so callers see the name failure first
// when both fields are empty.
func ValidateAccount(candidate *Account) error {
	if candidate == nil {
		return ErrMissingAccount
	}
	if err := ValidateName(candidate.Name); err != nil {
		return err
	}
	if candidate.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// ValidateName rejects absent or empty account names.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	return nil
}

// ValidateID rejects absent account identifiers.
func ValidateID(id string) error {
	if id == "" {
		return ErrMissingID
	}
	return nil
}
