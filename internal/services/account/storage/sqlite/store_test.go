package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/postitapplications/account-service/internal/services/account/account"
	"github.com/postitapplications/account-service/internal/services/account/storage"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "accounts-test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestInsertGetAccountRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	input := account.Account{ID: "acc-1", Name: "johnSmith123", Password: "password"}

	stored, err := store.InsertAccount(context.Background(), input)
	if err != nil {
		t.Fatalf("insert account: %v", err)
	}
	if stored != input {
		t.Fatalf("stored account = %+v, want %+v", stored, input)
	}

	got, err := store.GetAccount(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if got != input {
		t.Fatalf("account = %+v, want %+v", got, input)
	}
}

func TestGetAccountByName(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	input := account.Account{ID: "acc-1", Name: "johnSmith123", Password: "password"}
	if _, err := store.InsertAccount(context.Background(), input); err != nil {
		t.Fatalf("insert account: %v", err)
	}

	got, err := store.GetAccountByName(context.Background(), "johnSmith123")
	if err != nil {
		t.Fatalf("get account by name: %v", err)
	}
	if got != input {
		t.Fatalf("account = %+v, want %+v", got, input)
	}
}

func TestGetAccountMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)

	if _, err := store.GetAccount(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get account error = %v, want %v", err, storage.ErrNotFound)
	}
	if _, err := store.GetAccountByName(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get account by name error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestInsertAccountReturnsNameTakenOnDuplicateName(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.InsertAccount(context.Background(), account.Account{
		ID: "acc-1", Name: "johnSmith123", Password: "password",
	}); err != nil {
		t.Fatalf("insert first account: %v", err)
	}

	_, err := store.InsertAccount(context.Background(), account.Account{
		ID: "acc-2", Name: "johnSmith123", Password: "other",
	})
	if !errors.Is(err, storage.ErrNameTaken) {
		t.Fatalf("duplicate name error = %v, want %v", err, storage.ErrNameTaken)
	}

	// The conflicting insert must not leave a second record behind.
	if _, err := store.GetAccount(context.Background(), "acc-2"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("conflicting record error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestUpdateAccountRewritesNameAndPassword(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.InsertAccount(context.Background(), account.Account{
		ID: "acc-1", Name: "johnSmith123", Password: "password",
	}); err != nil {
		t.Fatalf("insert account: %v", err)
	}

	result, err := store.UpdateAccount(context.Background(), account.Account{
		ID: "acc-1", Name: "johnSmith456", Password: "password2",
	})
	if err != nil {
		t.Fatalf("update account: %v", err)
	}
	if result.MatchedCount != 1 {
		t.Fatalf("matched count = %d, want 1", result.MatchedCount)
	}

	got, err := store.GetAccount(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if got.Name != "johnSmith456" || got.Password != "password2" {
		t.Fatalf("account after update = %+v", got)
	}
}

func TestUpdateAccountMissingMatchesZero(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	result, err := store.UpdateAccount(context.Background(), account.Account{
		ID: "missing", Name: "johnSmith123", Password: "password",
	})
	if err != nil {
		t.Fatalf("update account: %v", err)
	}
	if result.MatchedCount != 0 {
		t.Fatalf("matched count = %d, want 0", result.MatchedCount)
	}
}

func TestUpdateAccountToTakenNameReturnsNameTaken(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	for _, a := range []account.Account{
		{ID: "acc-1", Name: "first", Password: "password"},
		{ID: "acc-2", Name: "second", Password: "password"},
	} {
		if _, err := store.InsertAccount(context.Background(), a); err != nil {
			t.Fatalf("insert account %s: %v", a.ID, err)
		}
	}

	_, err := store.UpdateAccount(context.Background(), account.Account{
		ID: "acc-2", Name: "first", Password: "password",
	})
	if !errors.Is(err, storage.ErrNameTaken) {
		t.Fatalf("update error = %v, want %v", err, storage.ErrNameTaken)
	}
}

func TestDeleteAccount(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.InsertAccount(context.Background(), account.Account{
		ID: "acc-1", Name: "johnSmith123", Password: "password",
	}); err != nil {
		t.Fatalf("insert account: %v", err)
	}

	result, err := store.DeleteAccount(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("delete account: %v", err)
	}
	if result.DeletedCount != 1 {
		t.Fatalf("deleted count = %d, want 1", result.DeletedCount)
	}

	if _, err := store.GetAccount(context.Background(), "acc-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get deleted account error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestDeleteAccountMissingDeletesZero(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	result, err := store.DeleteAccount(context.Background(), "missing")
	if err != nil {
		t.Fatalf("delete account: %v", err)
	}
	if result.DeletedCount != 0 {
		t.Fatalf("deleted count = %d, want 0", result.DeletedCount)
	}
}

func TestSchemaRejectsEmptyFields(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	testCases := []struct {
		name    string
		account account.Account
	}{
		{
			name:    "empty name",
			account: account.Account{ID: "acc-1", Name: "", Password: "password"},
		},
		{
			name:    "empty password",
			account: account.Account{ID: "acc-2", Name: "someone", Password: ""},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.InsertAccount(context.Background(), tc.account)
			if err == nil {
				t.Fatal("expected constraint error")
			}
		})
	}
}
