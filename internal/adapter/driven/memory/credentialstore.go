// Package memory provides process-local implementations of the driven ports.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ericfisherdev/shopfront/internal/domain/model"
	"github.com/ericfisherdev/shopfront/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*CredentialStore)(nil)

// CredentialStore keeps credential records in an ordered slice guarded by a
// RWMutex. Lookups are linear scans; the directory is expected to hold a
// handful of records.
type CredentialStore struct {
	mu      sync.RWMutex
	records []model.Credential
	now     func() time.Time
}

// NewCredentialStore creates an empty store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{now: time.Now}
}

// Add appends cred unless a record with the same email already exists.
func (s *CredentialStore) Add(_ context.Context, cred model.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOfEmailLocked(cred.Email) >= 0 {
		return model.ErrDuplicateEmail
	}

	if cred.ID == "" {
		cred.ID = uuid.NewString()
	}
	if cred.RegisteredAt.IsZero() {
		cred.RegisteredAt = s.now().UTC()
	}
	s.records = append(s.records, cred)
	return nil
}

// FindMatch returns a copy of the first record matching both email and
// password, or (nil, nil).
func (s *CredentialStore) FindMatch(_ context.Context, email, password string) (*model.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.Email == email && rec.Password == password {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

// ExistsEmail reports whether email has a record.
func (s *CredentialStore) ExistsEmail(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOfEmailLocked(email) >= 0, nil
}

// List returns a copy of all records in registration order.
func (s *CredentialStore) List(_ context.Context) ([]model.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Credential, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Count returns the number of records.
func (s *CredentialStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// indexOfEmailLocked must be called with s.mu held.
func (s *CredentialStore) indexOfEmailLocked(email string) int {
	for i, rec := range s.records {
		if rec.Email == email {
			return i
		}
	}
	return -1
}
