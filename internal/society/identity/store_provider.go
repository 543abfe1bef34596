package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/store"
	"github.com/strataworks/societyd/pkg/cryptox"
	"github.com/strataworks/societyd/pkg/idx"
	"github.com/strataworks/societyd/pkg/slogx"
)

// StoreProvider implements Provider on top of the record store's identities
// collection, hashing passwords with argon2id.
type StoreProvider struct {
	Store store.Store
}

var _ Provider = (*StoreProvider)(nil)

func (p *StoreProvider) CreateIdentity(
	ctx context.Context,
	email, password string,
	meta Metadata,
) (domain.Identity, error) {
	log := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("hash password: %w", err)
	}

	ident := domain.Identity{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		FullName:     meta.FullName,
		CreatedAt:    time.Now().UTC(),
	}

	if err := p.Store.Identities().CreateIdentity(ctx, ident); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Info("identity creation rejected, email taken", slog.String("email", email))
			return domain.Identity{}, ErrEmailTaken
		}
		return domain.Identity{}, fmt.Errorf("create identity: %w", err)
	}

	return ident, nil
}

func (p *StoreProvider) DeleteIdentity(ctx context.Context, id string) error {
	return p.Store.Identities().DeleteIdentity(ctx, id)
}

func (p *StoreProvider) VerifyCredentials(
	ctx context.Context,
	email, password string,
) (domain.Identity, error) {
	ident, err := p.Store.Identities().GetIdentityByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Hash anyway so unknown emails cost the same as bad passwords.
			_ = cryptox.VerifyPassword(password, dummyHash)
			return domain.Identity{}, ErrInvalidCredentials
		}
		return domain.Identity{}, fmt.Errorf("lookup identity: %w", err)
	}

	if cryptox.VerifyPassword(password, ident.PasswordHash) != nil {
		return domain.Identity{}, ErrInvalidCredentials
	}

	return ident, nil
}

// dummyHash keeps VerifyCredentials constant-time-ish for unknown emails.
var dummyHash = func() string {
	h, err := cryptox.HashPassword("timing-equalizer")
	if err != nil {
		panic(err)
	}
	return h
}()
