package driven

import (
	"context"

	"github.com/ericfisherdev/shopfront/internal/domain/model"
)

// CredentialStore defines the driven port for the credential directory's
// records. Implementations keep records in registration order and hold them
// only for the lifetime of the process.
type CredentialStore interface {
	// Add appends cred. The duplicate-email check and the append happen as
	// one atomic step: if a record with the same email exists, Add returns
	// model.ErrDuplicateEmail and stores nothing. Add assigns ID and
	// RegisteredAt when they are empty.
	Add(ctx context.Context, cred model.Credential) error

	// FindMatch returns the first record whose email and password both equal
	// the arguments exactly. Returns (nil, nil) if there is none.
	FindMatch(ctx context.Context, email, password string) (*model.Credential, error)

	// ExistsEmail reports whether a record with the given email exists.
	ExistsEmail(ctx context.Context, email string) (bool, error)

	// List returns all records in registration order.
	List(ctx context.Context) ([]model.Credential, error)

	// Count returns the number of records.
	Count(ctx context.Context) (int, error)
}
