package service

import (
	"errors"

	"github.com/strataworks/societyd/internal/society/identity"
	"github.com/strataworks/societyd/internal/society/store"
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidJoinCode = errors.New("join code is malformed")
	ErrUnknownJoinCode = errors.New("join code does not match any society")

	ErrPoolNotFound        = errors.New("emergency service pool not found")
	ErrNoUnitsAvailable    = errors.New("no units available")
	ErrConcurrentUpdate    = errors.New("pool changed concurrently, retry the request")
	ErrReservationNotFound = errors.New("reservation not found")

	ErrAuthenticationFailed = errors.New("invalid email or password")

	// ErrProfileMissing reports an identity whose membership profile is gone.
	// Credentials verified but the profile record does not exist, which a
	// completed provisioning saga should have made impossible.
	ErrProfileMissing = errors.New("identity has no membership profile")
)

// Kind buckets service failures for transport-level mapping. Every error a
// service returns classifies into exactly one kind.
type Kind int

const (
	// KindDependency is the default: a downstream collaborator (store,
	// identity provider) failed and the caller may retry later.
	KindDependency Kind = iota

	KindValidation
	KindNotFound
	KindConflict
	KindUnauthenticated

	// KindAnomaly marks broken cross-record invariants, like a verified
	// identity with no profile. These need operator attention, not a retry.
	KindAnomaly
)

// Classify maps a service error to its Kind. Saga wrappers are transparent
// here because saga.Error unwraps to the forward failure.
func Classify(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidComplaintStatus),
		errors.Is(err, ErrInvalidJoinCode):
		return KindValidation

	case errors.Is(err, ErrUnknownJoinCode),
		errors.Is(err, ErrPoolNotFound),
		errors.Is(err, ErrReservationNotFound),
		errors.Is(err, store.ErrNotFound):
		return KindNotFound

	case errors.Is(err, identity.ErrEmailTaken),
		errors.Is(err, ErrNoUnitsAvailable),
		errors.Is(err, ErrConcurrentUpdate),
		errors.Is(err, store.ErrAlreadyExists),
		errors.Is(err, store.ErrConflict):
		return KindConflict

	case errors.Is(err, ErrAuthenticationFailed):
		return KindUnauthenticated

	case errors.Is(err, ErrProfileMissing):
		return KindAnomaly
	}
	return KindDependency
}
