package application_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/shopfront/internal/adapter/driven/memory"
	"github.com/ericfisherdev/shopfront/internal/application"
	"github.com/ericfisherdev/shopfront/internal/domain/model"
)

// --- Mock implementations ---

type failingCredentialStore struct {
	err error
}

func (m *failingCredentialStore) Add(_ context.Context, _ model.Credential) error {
	return m.err
}

func (m *failingCredentialStore) FindMatch(_ context.Context, _, _ string) (*model.Credential, error) {
	return nil, m.err
}

func (m *failingCredentialStore) ExistsEmail(_ context.Context, _ string) (bool, error) {
	return false, m.err
}

func (m *failingCredentialStore) List(_ context.Context) ([]model.Credential, error) {
	return nil, m.err
}

func (m *failingCredentialStore) Count(_ context.Context) (int, error) {
	return 0, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDirectory(t *testing.T) (*application.CredentialDirectory, *memory.CredentialStore) {
	t.Helper()
	store := memory.NewCredentialStore()
	return application.NewCredentialDirectory(store, discardLogger()), store
}

func TestCredentialDirectory_EndToEnd(t *testing.T) {
	dir, _ := newTestDirectory(t)
	ctx := context.Background()

	id, err := dir.Register(ctx, model.Registration{Username: "alice", Email: "a@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", id.Name)
	assert.False(t, id.Guest)

	id, err = dir.Authenticate(ctx, "a@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", id.Name)

	_, err = dir.Authenticate(ctx, "a@example.com", "wrong")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = dir.Register(ctx, model.Registration{Username: "bob", Email: "a@example.com", Password: "pw2"})
	assert.ErrorIs(t, err, model.ErrDuplicateEmail)
}

func TestCredentialDirectory_RegisterThenAuthenticateMany(t *testing.T) {
	dir, _ := newTestDirectory(t)
	ctx := context.Background()

	for i := range 10 {
		email := fmt.Sprintf("user%d@example.com", i)
		password := fmt.Sprintf("pw-%d", i)

		id, err := dir.Register(ctx, model.Registration{Username: fmt.Sprintf("user%d", i), Email: email, Password: password})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("user%d", i), id.Name)
	}

	for i := range 10 {
		email := fmt.Sprintf("user%d@example.com", i)
		id, err := dir.Authenticate(ctx, email, fmt.Sprintf("pw-%d", i))
		require.NoError(t, err)
		assert.Equal(t, email, id.Name)
	}

	count, err := dir.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, count)
}

func TestCredentialDirectory_RegisterValidation(t *testing.T) {
	tests := []struct {
		name       string
		reg        model.Registration
		wantFields []string
	}{
		{
			name:       "empty username",
			reg:        model.Registration{Email: "a@example.com", Password: "pw"},
			wantFields: []string{"username"},
		},
		{
			name:       "empty email",
			reg:        model.Registration{Username: "alice", Password: "pw"},
			wantFields: []string{"email"},
		},
		{
			name:       "empty password",
			reg:        model.Registration{Username: "alice", Email: "a@example.com"},
			wantFields: []string{"password"},
		},
		{
			name:       "malformed email",
			reg:        model.Registration{Username: "alice", Email: "not-an-email", Password: "pw"},
			wantFields: []string{"email"},
		},
		{
			name:       "email without dot in domain",
			reg:        model.Registration{Username: "alice", Email: "a@localhost", Password: "pw"},
			wantFields: []string{"email"},
		},
		{
			name:       "all empty",
			reg:        model.Registration{},
			wantFields: []string{"username", "email", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, store := newTestDirectory(t)
			ctx := context.Background()

			_, err := dir.Register(ctx, tt.reg)
			require.ErrorIs(t, err, model.ErrValidation)

			var vErr *model.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantFields, vErr.Fields)

			count, err := store.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, count, "directory must be unchanged")
		})
	}
}

func TestCredentialDirectory_ValidationTakesPrecedenceOverDuplicate(t *testing.T) {
	dir, _ := newTestDirectory(t)
	ctx := context.Background()

	_, err := dir.Register(ctx, model.Registration{Username: "alice", Email: "a@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = dir.Register(ctx, model.Registration{Email: "a@example.com", Password: "pw"})
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.NotErrorIs(t, err, model.ErrDuplicateEmail)
}

func TestCredentialDirectory_DuplicateKeepsSingleRecord(t *testing.T) {
	dir, store := newTestDirectory(t)
	ctx := context.Background()

	_, err := dir.Register(ctx, model.Registration{Username: "alice", Email: "a@example.com", Password: "first"})
	require.NoError(t, err)

	_, err = dir.Register(ctx, model.Registration{Username: "alice2", Email: "a@example.com", Password: "second"})
	require.ErrorIs(t, err, model.ErrDuplicateEmail)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "first", list[0].Password)

	_, err = dir.Authenticate(ctx, "a@example.com", "second")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestCredentialDirectory_AuthenticateEmptyDirectory(t *testing.T) {
	dir, _ := newTestDirectory(t)

	_, err := dir.Authenticate(context.Background(), "a@example.com", "secret")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = dir.Authenticate(context.Background(), "", "")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestCredentialDirectory_FailedAuthenticateDoesNotMutate(t *testing.T) {
	dir, store := newTestDirectory(t)
	ctx := context.Background()

	_, err := dir.Register(ctx, model.Registration{Username: "alice", Email: "a@example.com", Password: "secret"})
	require.NoError(t, err)

	before, err := store.List(ctx)
	require.NoError(t, err)

	for range 25 {
		_, err := dir.Authenticate(ctx, "a@example.com", "wrong")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	}

	after, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCredentialDirectory_GuestAuthenticate(t *testing.T) {
	dir, store := newTestDirectory(t)
	ctx := context.Background()

	id := dir.GuestAuthenticate()
	assert.Equal(t, model.GuestIdentity(), id)
	assert.True(t, id.Guest)

	_, err := dir.Register(ctx, model.Registration{Username: "alice", Email: "a@example.com", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, model.GuestIdentity(), dir.GuestAuthenticate())

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCredentialDirectory_GuestIgnoresBrokenStore(t *testing.T) {
	dir := application.NewCredentialDirectory(&failingCredentialStore{err: errors.New("boom")}, discardLogger())
	assert.Equal(t, model.GuestName, dir.GuestAuthenticate().Name)
}

func TestCredentialDirectory_StoreErrorsAreWrapped(t *testing.T) {
	storeErr := errors.New("disk on fire")
	dir := application.NewCredentialDirectory(&failingCredentialStore{err: storeErr}, discardLogger())
	ctx := context.Background()

	_, err := dir.Register(ctx, model.Registration{Username: "alice", Email: "a@example.com", Password: "pw"})
	require.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, model.ErrDuplicateEmail)

	_, err = dir.Authenticate(ctx, "a@example.com", "pw")
	require.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = dir.Count(ctx)
	assert.ErrorIs(t, err, storeErr)
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"user_name%x@ex-ample.org", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"a@", false},
		{"a@example", false},
		{"a@.example.com", false},
		{"a b@example.com", false},
		{"a@example.com ", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, application.ValidEmail(tt.in))
		})
	}
}

func TestCredentialDirectory_ConcurrentRegistrationSameEmail(t *testing.T) {
	dir, store := newTestDirectory(t)
	ctx := context.Background()

	const attempts = 40
	results := make(chan error, attempts)
	for i := range attempts {
		go func() {
			_, err := dir.Register(ctx, model.Registration{
				Username: fmt.Sprintf("user%d", i),
				Email:    "shared@example.com",
				Password: "pw",
			})
			results <- err
		}()
	}

	var ok, dup int
	for range attempts {
		err := <-results
		switch {
		case err == nil:
			ok++
		case errors.Is(err, model.ErrDuplicateEmail):
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, ok)
	assert.Equal(t, attempts-1, dup)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
