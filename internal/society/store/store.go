package store

import (
	"context"
	"errors"
	"time"

	"github.com/strataworks/societyd/internal/society/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict reports that a conditional write matched zero rows: the
	// record changed between the caller's read and its write.
	ErrConflict = errors.New("store: conditional write conflict")
)

// Store is the root data access interface. The backing store offers only
// single-record atomic operations: there is intentionally no transaction
// surface here. Multi-record writes are composed by the saga executor, and
// contended counters go through the conditional methods below.
type Store interface {
	Identities() Identities
	Organizations() Organizations
	Profiles() Profiles
	ResidentDetails() ResidentDetails
	StaffDetails() StaffDetails
	EmergencyServices() EmergencyServices
	Reservations() Reservations
	Notices() Notices
	Polls() Polls
	Events() Events
	Amenities() Amenities
	Bookings() Bookings
	Complaints() Complaints

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Identities interface {
	// CreateIdentity inserts a new identity. A duplicate email returns
	// ErrAlreadyExists.
	CreateIdentity(ctx context.Context, ident domain.Identity) error

	GetIdentityByID(ctx context.Context, id string) (domain.Identity, error)
	GetIdentityByEmail(ctx context.Context, email string) (domain.Identity, error)

	// DeleteIdentity removes an identity. Only called as saga compensation.
	DeleteIdentity(ctx context.Context, id string) error
}

type Organizations interface {
	// CreateOrganization inserts a new organization. A join-code collision
	// returns ErrAlreadyExists.
	CreateOrganization(ctx context.Context, org domain.Organization) error

	GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error)

	// GetOrganizationByJoinCode resolves a join code to its organization.
	GetOrganizationByJoinCode(ctx context.Context, code string) (domain.Organization, error)

	DeleteOrganization(ctx context.Context, id string) error
}

type Profiles interface {
	// CreateProfile inserts a membership profile. OrganizationID may be
	// empty (owner flow); SetProfileOrganization backfills it.
	CreateProfile(ctx context.Context, p domain.Profile) error

	GetProfileByID(ctx context.Context, id string) (domain.Profile, error)

	// SetProfileOrganization sets organization_id on an existing profile.
	SetProfileOrganization(ctx context.Context, profileID, organizationID string) error

	DeleteProfile(ctx context.Context, id string) error
}

type ResidentDetails interface {
	CreateResidentDetail(ctx context.Context, d domain.ResidentDetail) error
	GetResidentDetail(ctx context.Context, profileID string) (domain.ResidentDetail, error)
	DeleteResidentDetail(ctx context.Context, profileID string) error
}

type StaffDetails interface {
	CreateStaffDetail(ctx context.Context, d domain.StaffDetail) error
	GetStaffDetail(ctx context.Context, profileID string) (domain.StaffDetail, error)
	DeleteStaffDetail(ctx context.Context, profileID string) error
}

type EmergencyServices interface {
	CreateEmergencyService(ctx context.Context, svc domain.EmergencyService) error
	GetEmergencyServiceByID(ctx context.Context, id string) (domain.EmergencyService, error)
	ListEmergencyServices(ctx context.Context) ([]domain.EmergencyService, error)
	DeleteEmergencyService(ctx context.Context, id string) error

	// DecrementUnitsCAS decrements available_units by one, conditioned on
	// the column still holding observed. Returns the updated row, or
	// ErrConflict when the predicate matched nothing (another requester
	// won the race), or ErrNotFound when the pool does not exist.
	DecrementUnitsCAS(ctx context.Context, id string, observed int) (domain.EmergencyService, error)

	// RestoreUnits writes available_units back to units. Compensation path
	// only; never use it for regular allocation.
	RestoreUnits(ctx context.Context, id string, units int) error

	// IncrementUnits adds one unit back. Increments are commutative so no
	// compare-and-swap is needed.
	IncrementUnits(ctx context.Context, id string) (domain.EmergencyService, error)
}

type Reservations interface {
	CreateReservation(ctx context.Context, r domain.Reservation) error
	GetReservationByID(ctx context.Context, id string) (domain.Reservation, error)
	ListReservationsByPool(ctx context.Context, poolID string) ([]domain.Reservation, error)

	// DeleteReservationReturning deletes the ledger entry by id and returns
	// the deleted row, or ErrNotFound if it was already closed.
	DeleteReservationReturning(ctx context.Context, id string) (domain.Reservation, error)
}

type Notices interface {
	CreateNotice(ctx context.Context, n domain.Notice) error
	GetNoticeByID(ctx context.Context, id string) (domain.Notice, error)
	ListNotices(ctx context.Context) ([]domain.Notice, error)
	UpdateNotice(ctx context.Context, id, title, content string, updatedAt time.Time) error
	DeleteNotice(ctx context.Context, id string) error
}

type Polls interface {
	CreatePoll(ctx context.Context, p domain.Poll) error
	GetPollByID(ctx context.Context, id string) (domain.Poll, error)
	ListPolls(ctx context.Context) ([]domain.Poll, error)
	UpdatePoll(ctx context.Context, id, question string, options []string, updatedAt time.Time) error
	DeletePoll(ctx context.Context, id string) error
}

type Events interface {
	CreateEvent(ctx context.Context, e domain.Event) error
	ListEventsByOrganization(ctx context.Context, organizationID string) ([]domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

type Amenities interface {
	CreateAmenity(ctx context.Context, a domain.Amenity) error
	GetAmenityByID(ctx context.Context, id string) (domain.Amenity, error)
	ListAmenities(ctx context.Context) ([]domain.Amenity, error)
	UpdateAmenity(ctx context.Context, a domain.Amenity) error
	DeleteAmenity(ctx context.Context, id string) error
}

type Bookings interface {
	CreateBooking(ctx context.Context, b domain.Booking) error
	GetBookingByID(ctx context.Context, id string) (domain.Booking, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	UpdateBookingDate(ctx context.Context, id string, requestedDate time.Time) error
	DeleteBooking(ctx context.Context, id string) error
}

type Complaints interface {
	CreateComplaint(ctx context.Context, c domain.Complaint) error
	GetComplaintByID(ctx context.Context, id string) (domain.Complaint, error)
	ListComplaintsByUser(ctx context.Context, userID string) ([]domain.Complaint, error)
	ListComplaintsByAssignee(ctx context.Context, staffID string) ([]domain.Complaint, error)

	// ListComplaints returns all complaints, optionally filtered by status
	// (empty status means no filter).
	ListComplaints(ctx context.Context, status string) ([]domain.Complaint, error)

	AssignComplaint(ctx context.Context, id, staffID string, updatedAt time.Time) error
	UpdateComplaintStatus(ctx context.Context, id, status string, updatedAt time.Time) error
}
