package account

import (
	"errors"
	"testing"
)

func TestValidateAccount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		candidate *Account
		wantErr   error
	}{
		{
			name:      "nil account",
			candidate: nil,
			wantErr:   ErrMissingAccount,
		},
		{
			name:      "empty name",
			candidate: &Account{Password: "password"},
			wantErr:   ErrEmptyName,
		},
		{
			name:      "empty password",
			candidate: &Account{Name: "johnSmith123"},
			wantErr:   ErrEmptyPassword,
		},
		{
			name:      "name failure reported before password failure",
			candidate: &Account{},
			wantErr:   ErrEmptyName,
		},
		{
			name:      "valid account without id",
			candidate: &Account{Name: "johnSmith123", Password: "password"},
		},
		{
			name:      "valid account with id",
			candidate: &Account{ID: "acc-1", Name: "johnSmith123", Password: "password"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateAccount(tc.candidate)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateAccountMessages(t *testing.T) {
	t.Parallel()

	if got := ValidateAccount(nil).Error(); got != "User cannot be null" {
		t.Fatalf("nil account message = %q", got)
	}
	if got := ValidateAccount(&Account{Password: "x"}).Error(); got != "User's username cannot be null or empty" {
		t.Fatalf("empty name message = %q", got)
	}
	if got := ValidateAccount(&Account{Name: "x"}).Error(); got != "User's password cannot be null or empty" {
		t.Fatalf("empty password message = %q", got)
	}
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	if err := ValidateName(""); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("empty name error = %v, want %v", err, ErrEmptyName)
	}
	if err := ValidateName("johnSmith123"); err != nil {
		t.Fatalf("valid name error = %v", err)
	}
}

func TestValidateID(t *testing.T) {
	t.Parallel()

	err := ValidateID("")
	if !errors.Is(err, ErrMissingID) {
		t.Fatalf("empty id error = %v, want %v", err, ErrMissingID)
	}
	if got := err.Error(); got != "Id cannot be null" {
		t.Fatalf("empty id message = %q", got)
	}
	if err := ValidateID("acc-1"); err != nil {
		t.Fatalf("valid id error = %v", err)
	}
}
