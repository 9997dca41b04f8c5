package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/ericfisherdev/shopfront/internal/domain/model"
	"github.com/ericfisherdev/shopfront/internal/domain/port/driven"
)

// emailPattern accepts a local part, "@", a domain label, and at least one
// further ".label". Anchored so the whole input must match.
var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9+._%\-]{1,256}@[a-zA-Z0-9][a-zA-Z0-9\-]{0,64}(\.[a-zA-Z0-9][a-zA-Z0-9\-]{0,25})+$`,
)

// ValidEmail reports whether s has the shape of an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// CredentialDirectory registers and authenticates users against a
// CredentialStore. It holds no session state; the identity it returns is
// owned by the caller. Safe for concurrent use when the store is.
type CredentialDirectory struct {
	store  driven.CredentialStore
	logger *slog.Logger
}

// NewCredentialDirectory creates a CredentialDirectory over store.
func NewCredentialDirectory(store driven.CredentialStore, logger *slog.Logger) *CredentialDirectory {
	return &CredentialDirectory{
		store:  store,
		logger: logger,
	}
}

// Register validates reg and appends its email and password to the store.
// On success the returned identity carries the username. Failures are a
// *model.ValidationError, model.ErrDuplicateEmail, or a wrapped store error;
// in every failure case the store is unchanged.
func (d *CredentialDirectory) Register(ctx context.Context, reg model.Registration) (model.Identity, error) {
	if err := validateRegistration(reg); err != nil {
		d.logger.Debug("registration rejected", "reason", "validation", "error", err)
		return model.Identity{}, err
	}

	err := d.store.Add(ctx, model.Credential{Email: reg.Email, Password: reg.Password})
	if errors.Is(err, model.ErrDuplicateEmail) {
		d.logger.Info("registration rejected", "reason", "duplicate email", "email", reg.Email)
		return model.Identity{}, model.ErrDuplicateEmail
	}
	if err != nil {
		return model.Identity{}, fmt.Errorf("register %q: %w", reg.Email, err)
	}

	d.logger.Info("user registered", "email", reg.Email, "username", reg.Username)
	return model.Identity{Name: reg.Username}, nil
}

// Authenticate looks up the record matching email and password exactly. The
// returned identity is the stored email; the directory keeps no usernames.
func (d *CredentialDirectory) Authenticate(ctx context.Context, email, password string) (model.Identity, error) {
	cred, err := d.store.FindMatch(ctx, email, password)
	if err != nil {
		return model.Identity{}, fmt.Errorf("authenticate %q: %w", email, err)
	}
	if cred == nil {
		d.logger.Info("login failed", "email", email)
		return model.Identity{}, model.ErrInvalidCredentials
	}

	d.logger.Info("login succeeded", "email", cred.Email)
	return model.Identity{Name: cred.Email}, nil
}

// GuestAuthenticate returns the fixed guest identity without consulting the store.
func (d *CredentialDirectory) GuestAuthenticate() model.Identity {
	d.logger.Debug("guest entry")
	return model.GuestIdentity()
}

// Count returns the number of registered records.
func (d *CredentialDirectory) Count(ctx context.Context) (int, error) {
	n, err := d.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count credentials: %w", err)
	}
	return n, nil
}

// validateRegistration checks that every field is non-empty and the email is
// well formed. Whitespace counts as content.
func validateRegistration(reg model.Registration) error {
	var fields []string
	if reg.Username == "" {
		fields = append(fields, "username")
	}
	if reg.Email == "" || !ValidEmail(reg.Email) {
		fields = append(fields, "email")
	}
	if reg.Password == "" {
		fields = append(fields, "password")
	}
	if len(fields) > 0 {
		return &model.ValidationError{Fields: fields}
	}
	return nil
}
