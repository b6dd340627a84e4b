// Package sqlite provides a SQLite-backed account storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/postitapplications/account-service/internal/platform/storage/sqlitemigrate"
	"github.com/postitapplications/account-service/internal/services/account/account"
	"github.com/postitapplications/account-service/internal/services/account/storage"
	"github.com/postitapplications/account-service/internal/services/account/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists account records in SQLite.
//
// The accounts table keys records by id and carries a unique index on name,
// which backstops the service's name-uniqueness check for concurrent creates.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// Open opens a SQLite account store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// InsertAccount inserts one account record and echoes the stored record back.
func (s *Store) InsertAccount(ctx context.Context, a account.Account) (account.Account, error) {
	if err := ctx.Err(); err != nil {
		return account.Account{}, err
	}
	if s == nil || s.sqlDB == nil {
		return account.Account{}, fmt.Errorf("storage is not configured")
	}

	now := toMillis(time.Now())
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO accounts (id, name, password, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		a.ID,
		a.Name,
		a.Password,
		now,
		now,
	)
	if err != nil {
		if isAccountNameUniqueViolation(err) {
			return account.Account{}, storage.ErrNameTaken
		}
		return account.Account{}, fmt.Errorf("insert account: %w", err)
	}
	return a, nil
}

// GetAccount returns one account by id.
func (s *Store) GetAccount(ctx context.Context, id string) (account.Account, error) {
	if err := ctx.Err(); err != nil {
		return account.Account{}, err
	}
	if s == nil || s.sqlDB == nil {
		return account.Account{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, password FROM accounts WHERE id = ?`,
		id,
	)
	return scanAccount(row, "get account")
}

// GetAccountByName returns one account by its unique name.
func (s *Store) GetAccountByName(ctx context.Context, name string) (account.Account, error) {
	if err := ctx.Err(); err != nil {
		return account.Account{}, err
	}
	if s == nil || s.sqlDB == nil {
		return account.Account{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, password FROM accounts WHERE name = ?`,
		name,
	)
	return scanAccount(row, "get account by name")
}

// UpdateAccount rewrites the name and password of the record matching the
// account id. The id itself is never rewritten. The matched count reports
// whether such a record existed.
func (s *Store) UpdateAccount(ctx context.Context, a account.Account) (storage.UpdateResult, error) {
	if err := ctx.Err(); err != nil {
		return storage.UpdateResult{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.UpdateResult{}, fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE accounts SET name = ?, password = ?, updated_at = ? WHERE id = ?`,
		a.Name,
		a.Password,
		toMillis(time.Now()),
		a.ID,
	)
	if err != nil {
		if isAccountNameUniqueViolation(err) {
			return storage.UpdateResult{}, storage.ErrNameTaken
		}
		return storage.UpdateResult{}, fmt.Errorf("update account: %w", err)
	}
	matched, err := result.RowsAffected()
	if err != nil {
		return storage.UpdateResult{}, fmt.Errorf("update account rows affected: %w", err)
	}
	return storage.UpdateResult{MatchedCount: matched}, nil
}

// DeleteAccount removes the record matching the account id. The deleted count
// reports whether such a record existed.
func (s *Store) DeleteAccount(ctx context.Context, id string) (storage.DeleteResult, error) {
	if err := ctx.Err(); err != nil {
		return storage.DeleteResult{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.DeleteResult{}, fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return storage.DeleteResult{}, fmt.Errorf("delete account: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return storage.DeleteResult{}, fmt.Errorf("delete account rows affected: %w", err)
	}
	return storage.DeleteResult{DeletedCount: deleted}, nil
}

func scanAccount(row *sql.Row, op string) (account.Account, error) {
	var a account.Account
	if err := row.Scan(&a.ID, &a.Name, &a.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return account.Account{}, storage.ErrNotFound
		}
		return account.Account{}, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

func isAccountNameUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	message := strings.ToLower(err.Error())
	if !strings.Contains(message, "accounts.name") {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE
	}
	return strings.Contains(message, "unique constraint failed")
}

var _ storage.AccountStore = (*Store)(nil)
