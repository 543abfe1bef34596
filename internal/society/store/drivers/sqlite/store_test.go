package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "society_test.db")
	s, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestIdentities_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ident := domain.Identity{
		ID:           "01IDENT00000000000000000001",
		Email:        "owner@example.com",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		FullName:     "Alice Owner",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, s.Identities().CreateIdentity(ctx, ident))

	dup := ident
	dup.ID = "01IDENT00000000000000000002"
	err := s.Identities().CreateIdentity(ctx, dup)
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	got, err := s.Identities().GetIdentityByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	require.Equal(t, ident.ID, got.ID)
}

func TestOrganizations_JoinCodeLookup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	org := domain.Organization{
		ID:        "01ORG000000000000000000001",
		Name:      "Sunrise Towers",
		Address:   "12 Harbour St",
		OwnerID:   "01IDENT00000000000000000001",
		JoinCode:  "A1B-2C3",
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.Organizations().CreateOrganization(ctx, org))

	got, err := s.Organizations().GetOrganizationByJoinCode(ctx, "A1B-2C3")
	require.NoError(t, err)
	require.Equal(t, org.ID, got.ID)

	_, err = s.Organizations().GetOrganizationByJoinCode(ctx, "ZZZ-ZZZ")
	require.ErrorIs(t, err, store.ErrNotFound)

	dup := org
	dup.ID = "01ORG000000000000000000002"
	err = s.Organizations().CreateOrganization(ctx, dup)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestProfiles_SetOrganization(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := domain.Profile{
		ID:        "01PROF00000000000000000001",
		FullName:  "Alice Owner",
		Role:      domain.RoleOwner,
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.Profiles().CreateProfile(ctx, p))

	require.NoError(t, s.Profiles().SetProfileOrganization(ctx, p.ID, "01ORG000000000000000000001"))

	got, err := s.Profiles().GetProfileByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "01ORG000000000000000000001", got.OrganizationID)

	err = s.Profiles().SetProfileOrganization(ctx, "missing", "x")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestEmergencyServices_DecrementUnitsCAS(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	svc := domain.EmergencyService{
		ID:             "01POOL00000000000000000001",
		ServiceType:    "ambulance",
		Description:    "On-call ambulance fleet",
		AvailableUnits: 2,
	}
	require.NoError(t, s.EmergencyServices().CreateEmergencyService(ctx, svc))

	// Matching observed value decrements and returns the updated row.
	updated, err := s.EmergencyServices().DecrementUnitsCAS(ctx, svc.ID, 2)
	require.NoError(t, err)
	require.Equal(t, 1, updated.AvailableUnits)

	// Stale observed value loses the race.
	_, err = s.EmergencyServices().DecrementUnitsCAS(ctx, svc.ID, 2)
	require.ErrorIs(t, err, store.ErrConflict)

	// Missing pool is a distinct failure.
	_, err = s.EmergencyServices().DecrementUnitsCAS(ctx, "missing", 1)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestEmergencyServices_IncrementAndRestore(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	svc := domain.EmergencyService{
		ID:             "01POOL00000000000000000002",
		ServiceType:    "fire",
		AvailableUnits: 3,
	}
	require.NoError(t, s.EmergencyServices().CreateEmergencyService(ctx, svc))

	updated, err := s.EmergencyServices().IncrementUnits(ctx, svc.ID)
	require.NoError(t, err)
	require.Equal(t, 4, updated.AvailableUnits)

	require.NoError(t, s.EmergencyServices().RestoreUnits(ctx, svc.ID, 3))
	got, err := s.EmergencyServices().GetEmergencyServiceByID(ctx, svc.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.AvailableUnits)
}

func TestReservations_DeleteReturningIsIdempotencyGate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	svc := domain.EmergencyService{ID: "01POOL00000000000000000003", ServiceType: "security", AvailableUnits: 1}
	require.NoError(t, s.EmergencyServices().CreateEmergencyService(ctx, svc))

	res := domain.Reservation{
		ID:          "01RESV00000000000000000001",
		PoolID:      svc.ID,
		RequesterID: "01PROF00000000000000000001",
		OpenedAt:    time.Now(),
	}
	require.NoError(t, s.Reservations().CreateReservation(ctx, res))

	deleted, err := s.Reservations().DeleteReservationReturning(ctx, res.ID)
	require.NoError(t, err)
	require.Equal(t, svc.ID, deleted.PoolID)

	// Second delete of the same reservation reports not found.
	_, err = s.Reservations().DeleteReservationReturning(ctx, res.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPolls_OptionsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := domain.Poll{
		ID:        "01POLL00000000000000000001",
		Question:  "Repaint the lobby?",
		Options:   []string{"yes", "no", "abstain"},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, s.Polls().CreatePoll(ctx, p))

	got, err := s.Polls().GetPollByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.Options, got.Options)

	require.NoError(t, s.Polls().UpdatePoll(ctx, p.ID, "Repaint the lobby in blue?", []string{"yes", "no"}, time.Now()))
	got, err = s.Polls().GetPollByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Options, 2)
}

func TestComplaints_StatusFilterAndAssignment(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	open := domain.Complaint{
		ID: "01CMPL00000000000000000001", UserID: "u1",
		Title: "Leaking tap", Description: "Kitchen tap drips",
		Status: domain.ComplaintOpen, CreatedAt: now, UpdatedAt: now,
	}
	resolved := domain.Complaint{
		ID: "01CMPL00000000000000000002", UserID: "u2",
		Title: "Broken light", Description: "Stairwell light out",
		Status: domain.ComplaintResolved, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, s.Complaints().CreateComplaint(ctx, open))
	require.NoError(t, s.Complaints().CreateComplaint(ctx, resolved))

	all, err := s.Complaints().ListComplaints(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	onlyOpen, err := s.Complaints().ListComplaints(ctx, domain.ComplaintOpen)
	require.NoError(t, err)
	require.Len(t, onlyOpen, 1)
	require.Equal(t, open.ID, onlyOpen[0].ID)

	require.NoError(t, s.Complaints().AssignComplaint(ctx, open.ID, "staff1", time.Now()))
	got, err := s.Complaints().GetComplaintByID(ctx, open.ID)
	require.NoError(t, err)
	require.Equal(t, "staff1", got.AssignedTo)
	require.Equal(t, domain.ComplaintInProgress, got.Status)

	mine, err := s.Complaints().ListComplaintsByAssignee(ctx, "staff1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
}

func TestBookings_UpdateDate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := domain.Amenity{ID: "01AMEN00000000000000000001", Name: "Gym", Category: "fitness"}
	require.NoError(t, s.Amenities().CreateAmenity(ctx, a))

	b := domain.Booking{
		ID:            "01BOOK00000000000000000001",
		UserID:        "u1",
		AmenityID:     a.ID,
		RequestedDate: time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC),
		CreatedAt:     time.Now(),
	}
	require.NoError(t, s.Bookings().CreateBooking(ctx, b))

	newDate := time.Date(2026, 9, 11, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.Bookings().UpdateBookingDate(ctx, b.ID, newDate))

	got, err := s.Bookings().GetBookingByID(ctx, b.ID)
	require.NoError(t, err)
	require.True(t, got.RequestedDate.Equal(newDate))
}
