package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/ericfisherdev/shopfront/internal/domain/model"
	"github.com/ericfisherdev/shopfront/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*CredentialRepo)(nil)

// CredentialRepo is the SQLite implementation of the CredentialStore port.
// The UNIQUE constraint on email makes the duplicate check and the insert a
// single atomic statement. Passwords are stored as entered.
type CredentialRepo struct {
	db  *DB
	now func() time.Time
}

// NewCredentialRepo creates a new CredentialRepo backed by the given DB.
func NewCredentialRepo(db *DB) *CredentialRepo {
	return &CredentialRepo{db: db, now: time.Now}
}

// Add inserts cred, returning model.ErrDuplicateEmail if the email exists.
func (r *CredentialRepo) Add(ctx context.Context, cred model.Credential) error {
	if cred.ID == "" {
		cred.ID = uuid.NewString()
	}
	if cred.RegisteredAt.IsZero() {
		cred.RegisteredAt = r.now()
	}

	const query = `INSERT INTO credentials (id, email, password, registered_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.Writer.ExecContext(ctx, query, cred.ID, cred.Email, cred.Password, formatTime(cred.RegisteredAt))
	if isUniqueViolation(err) {
		return model.ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("add credential %q: %w", cred.Email, err)
	}
	return nil
}

// FindMatch returns the first record matching email and password exactly, or
// (nil, nil). TEXT comparison uses SQLite's default BINARY collation, so the
// match is case-sensitive.
func (r *CredentialRepo) FindMatch(ctx context.Context, email, password string) (*model.Credential, error) {
	const query = `SELECT id, email, password, registered_at FROM credentials
		WHERE email = ? AND password = ? ORDER BY seq LIMIT 1`

	var cred model.Credential
	var registeredAt string
	err := r.db.Reader.QueryRowContext(ctx, query, email, password).
		Scan(&cred.ID, &cred.Email, &cred.Password, &registeredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find credential %q: %w", email, err)
	}

	cred.RegisteredAt, err = parseTime(registeredAt)
	if err != nil {
		return nil, fmt.Errorf("parse registered_at for credential %q: %w", email, err)
	}
	return &cred, nil
}

// ExistsEmail reports whether email has a record.
func (r *CredentialRepo) ExistsEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT COUNT(*) FROM credentials WHERE email = ?`
	var count int
	if err := r.db.Reader.QueryRowContext(ctx, query, email).Scan(&count); err != nil {
		return false, fmt.Errorf("check credential %q: %w", email, err)
	}
	return count > 0, nil
}

// List returns all records in registration order.
func (r *CredentialRepo) List(ctx context.Context) ([]model.Credential, error) {
	const query = `SELECT id, email, password, registered_at FROM credentials ORDER BY seq`
	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	defer rows.Close()

	var creds []model.Credential
	for rows.Next() {
		var cred model.Credential
		var registeredAt string
		if err := rows.Scan(&cred.ID, &cred.Email, &cred.Password, &registeredAt); err != nil {
			return nil, fmt.Errorf("scan credential: %w", err)
		}

		cred.RegisteredAt, err = parseTime(registeredAt)
		if err != nil {
			return nil, fmt.Errorf("parse registered_at for credential %q: %w", cred.Email, err)
		}

		creds = append(creds, cred)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credentials: %w", err)
	}

	return creds, nil
}

// Count returns the number of records.
func (r *CredentialRepo) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM credentials`
	var count int
	if err := r.db.Reader.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count credentials: %w", err)
	}
	return count, nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE or PRIMARY KEY
// constraint failure. The plain SQLITE_CONSTRAINT code is accepted for
// connections without extended result codes; every column is NOT NULL and
// always bound, so no other constraint can fire.
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
		code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY ||
		code == sqlite3.SQLITE_CONSTRAINT
}
