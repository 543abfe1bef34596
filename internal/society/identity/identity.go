// Package identity abstracts the credential store consumed by the
// provisioning sagas and login. The coordinator only ever needs three
// capabilities: create an identity, delete it again (compensation), and
// verify credentials.
package identity

import (
	"context"
	"errors"

	"github.com/strataworks/societyd/internal/society/domain"
)

var (
	// ErrEmailTaken is distinguishable so callers can classify it as a
	// conflict rather than an infrastructure failure.
	ErrEmailTaken = errors.New("identity: email already registered")

	ErrInvalidCredentials = errors.New("identity: invalid credentials")
)

// Metadata carried alongside the credentials at creation time.
type Metadata struct {
	FullName string
}

// Provider is the identity collaborator. Implementations must make
// CreateIdentity and DeleteIdentity safe to call from saga forward and
// compensation paths respectively.
type Provider interface {
	CreateIdentity(ctx context.Context, email, password string, meta Metadata) (domain.Identity, error)
	DeleteIdentity(ctx context.Context, id string) error
	VerifyCredentials(ctx context.Context, email, password string) (domain.Identity, error)
}
