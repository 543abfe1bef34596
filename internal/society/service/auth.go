package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/identity"
	"github.com/strataworks/societyd/internal/society/store"
	"github.com/strataworks/societyd/pkg/jwtx"
	"github.com/strataworks/societyd/pkg/slogx"
)

type AuthService struct {
	Store    store.Store
	Identity identity.Provider
	Tokens   *jwtx.Codec
}

// Session is a successful login: the minted token plus the profile the role
// was read from.
type Session struct {
	Token   string
	Profile domain.Profile
}

// Login verifies credentials, loads the member's profile for its role, and
// mints a session token. A verified identity without a profile is reported
// as ErrProfileMissing; it means a provisioning saga left the records in a
// state login cannot work with.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	if email == "" || password == "" {
		return Session{}, ErrInvalidRequest
	}

	ident, err := s.Identity.VerifyCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			log.Warn("login failed", slog.String("email", email))
			return Session{}, ErrAuthenticationFailed
		}
		log.Error("credential verification failed", slog.Any("error", err))
		return Session{}, err
	}

	prof, err := s.Store.Profiles().GetProfileByID(ctx, ident.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Error("identity verified but profile record is missing",
				slog.String("identity_id", ident.ID),
			)
			return Session{}, ErrProfileMissing
		}
		log.Error("failed to load profile", slog.Any("error", err))
		return Session{}, err
	}

	token, err := s.Tokens.Sign(prof.ID, prof.Role)
	if err != nil {
		log.Error("failed to mint session token", slog.Any("error", err))
		return Session{}, err
	}

	log.Info("member logged in",
		slog.String("profile_id", prof.ID),
		slog.String("role", prof.Role),
	)
	return Session{Token: token, Profile: prof}, nil
}

// Me returns the profile for an authenticated member id.
func (s *AuthService) Me(ctx context.Context, profileID string) (domain.Profile, error) {
	return s.Store.Profiles().GetProfileByID(ctx, profileID)
}
