package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/identity"
	"github.com/strataworks/societyd/internal/society/saga"
	"github.com/strataworks/societyd/internal/society/store"
	"github.com/strataworks/societyd/internal/society/store/memory"
	"github.com/strataworks/societyd/pkg/joincode"
)

// countingProvider wraps a Provider and counts identity creations, so tests
// can assert a flow never reached the identity step.
type countingProvider struct {
	identity.Provider
	createCalls atomic.Int32
}

func (p *countingProvider) CreateIdentity(ctx context.Context, email, password string, meta identity.Metadata) (domain.Identity, error) {
	p.createCalls.Add(1)
	return p.Provider.CreateIdentity(ctx, email, password, meta)
}

func newProvisionService(mem *memory.Store) (*ProvisionService, *countingProvider) {
	provider := &countingProvider{Provider: &identity.StoreProvider{Store: mem}}
	return &ProvisionService{Store: mem, Identity: provider}, provider
}

func TestProvisionOwner_CreatesAllRecords(t *testing.T) {
	mem := memory.New()
	svc, _ := newProvisionService(mem)
	ctx := context.Background()

	got, err := svc.ProvisionOwner(ctx, OwnerInput{
		Email:          "owner@example.com",
		Password:       "correct horse battery",
		FullName:       "Alice Owner",
		Phone:          "0400000001",
		SocietyName:    "Sunrise Towers",
		SocietyAddress: "12 Harbour St",
	})
	require.NoError(t, err)
	require.True(t, joincode.Valid(got.Organization.JoinCode))
	require.Equal(t, got.Identity.ID, got.Profile.ID)
	require.Equal(t, domain.RoleOwner, got.Profile.Role)
	require.Equal(t, got.Organization.ID, got.Profile.OrganizationID)

	// All three records landed and the profile links back to the org.
	_, err = mem.Identities().GetIdentityByEmail(ctx, "owner@example.com")
	require.NoError(t, err)

	org, err := mem.Organizations().GetOrganizationByJoinCode(ctx, got.Organization.JoinCode)
	require.NoError(t, err)
	require.Equal(t, got.Identity.ID, org.OwnerID)

	prof, err := mem.Profiles().GetProfileByID(ctx, got.Identity.ID)
	require.NoError(t, err)
	require.Equal(t, org.ID, prof.OrganizationID)
}

func TestProvisionOwner_ProfileFailureRollsBackIdentity(t *testing.T) {
	mem := memory.New()
	svc, _ := newProvisionService(mem)
	ctx := context.Background()

	boom := errors.New("profile write rejected")
	mem.InjectErr("CreateProfile", boom)

	_, err := svc.ProvisionOwner(ctx, OwnerInput{
		Email:       "owner@example.com",
		Password:    "pw12345678",
		FullName:    "Alice Owner",
		SocietyName: "Sunrise Towers",
	})
	require.ErrorIs(t, err, boom)

	// Identity was compensated away; no orphan survives.
	_, err = mem.Identities().GetIdentityByEmail(ctx, "owner@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestProvisionOwner_OrganizationFailureRollsBackProfileAndIdentity(t *testing.T) {
	mem := memory.New()
	svc, _ := newProvisionService(mem)
	ctx := context.Background()

	boom := errors.New("org write rejected")
	mem.InjectErr("CreateOrganization", boom)

	_, err := svc.ProvisionOwner(ctx, OwnerInput{
		Email:       "owner@example.com",
		Password:    "pw12345678",
		FullName:    "Alice Owner",
		SocietyName: "Sunrise Towers",
	})
	require.ErrorIs(t, err, boom)

	// Identity and profile were both compensated away. A retry with the
	// same email must start from a clean slate.
	_, err = mem.Identities().GetIdentityByEmail(ctx, "owner@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	retried, err := svc.ProvisionOwner(ctx, OwnerInput{
		Email:       "owner@example.com",
		Password:    "pw12345678",
		FullName:    "Alice Owner",
		SocietyName: "Sunrise Towers",
	})
	require.Error(t, err) // injection still active
	require.Empty(t, retried.Organization.ID)

	mem.ClearErr("CreateOrganization")
	_, err = svc.ProvisionOwner(ctx, OwnerInput{
		Email:       "owner@example.com",
		Password:    "pw12345678",
		FullName:    "Alice Owner",
		SocietyName: "Sunrise Towers",
	})
	require.NoError(t, err)
}

func TestProvisionOwner_CompensationFailureReportsPartialRollback(t *testing.T) {
	mem := memory.New()
	svc, _ := newProvisionService(mem)
	ctx := context.Background()

	boom := errors.New("org write rejected")
	mem.InjectErr("CreateOrganization", boom)
	mem.InjectErr("DeleteIdentity", errors.New("store unreachable"))

	_, err := svc.ProvisionOwner(ctx, OwnerInput{
		Email:       "owner@example.com",
		Password:    "pw12345678",
		FullName:    "Alice Owner",
		SocietyName: "Sunrise Towers",
	})

	// The original forward failure stays primary; the undo failure is
	// carried as a diagnostic on the saga error.
	require.ErrorIs(t, err, boom)
	var sagaErr *saga.Error
	require.ErrorAs(t, err, &sagaErr)
	require.True(t, sagaErr.PartialRollback())
}

func TestProvisionOwner_DuplicateEmail(t *testing.T) {
	mem := memory.New()
	svc, _ := newProvisionService(mem)
	ctx := context.Background()

	in := OwnerInput{
		Email:       "owner@example.com",
		Password:    "pw12345678",
		FullName:    "Alice Owner",
		SocietyName: "Sunrise Towers",
	}
	_, err := svc.ProvisionOwner(ctx, in)
	require.NoError(t, err)

	in.SocietyName = "Second Society"
	_, err = svc.ProvisionOwner(ctx, in)
	require.ErrorIs(t, err, identity.ErrEmailTaken)
	require.Equal(t, KindConflict, Classify(err))
}

func TestProvisionResident_JoinCodeResolvesBeforeIdentityCreation(t *testing.T) {
	mem := memory.New()
	svc, provider := newProvisionService(mem)
	ctx := context.Background()

	// Malformed code: rejected without touching the provider.
	_, err := svc.ProvisionResident(ctx, ResidentInput{
		Email: "r@example.com", Password: "pw12345678", FullName: "Bob",
		JoinCode: "not-a-code", FlatNo: "4B",
	})
	require.ErrorIs(t, err, ErrInvalidJoinCode)
	require.Zero(t, provider.createCalls.Load())

	// Well-formed but unknown code: still no identity call.
	_, err = svc.ProvisionResident(ctx, ResidentInput{
		Email: "r@example.com", Password: "pw12345678", FullName: "Bob",
		JoinCode: "ZZZ-999", FlatNo: "4B",
	})
	require.ErrorIs(t, err, ErrUnknownJoinCode)
	require.Zero(t, provider.createCalls.Load())
}

func TestProvisionResident_CreatesMemberRecords(t *testing.T) {
	mem := memory.New()
	svc, _ := newProvisionService(mem)
	ctx := context.Background()

	owner, err := svc.ProvisionOwner(ctx, OwnerInput{
		Email: "owner@example.com", Password: "pw12345678",
		FullName: "Alice Owner", SocietyName: "Sunrise Towers",
	})
	require.NoError(t, err)

	moveIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	got, err := svc.ProvisionResident(ctx, ResidentInput{
		Email: "bob@example.com", Password: "pw12345678", FullName: "Bob Resident",
		JoinCode: owner.Organization.JoinCode, FlatNo: "4B", MoveInDate: moveIn,
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleResident, got.Profile.Role)
	require.Equal(t, owner.Organization.ID, got.Profile.OrganizationID)

	detail, err := mem.ResidentDetails().GetResidentDetail(ctx, got.Profile.ID)
	require.NoError(t, err)
	require.Equal(t, "4B", detail.FlatNo)
	require.True(t, detail.MoveInDate.Equal(moveIn))
}

func TestProvisionResident_DetailFailureRollsBackEverything(t *testing.T) {
	mem := memory.New()
	svc, _ := newProvisionService(mem)
	ctx := context.Background()

	owner, err := svc.ProvisionOwner(ctx, OwnerInput{
		Email: "owner@example.com", Password: "pw12345678",
		FullName: "Alice Owner", SocietyName: "Sunrise Towers",
	})
	require.NoError(t, err)

	boom := errors.New("detail write rejected")
	mem.InjectErr("CreateResidentDetail", boom)

	_, err = svc.ProvisionResident(ctx, ResidentInput{
		Email: "bob@example.com", Password: "pw12345678", FullName: "Bob Resident",
		JoinCode: owner.Organization.JoinCode, FlatNo: "4B",
	})
	require.ErrorIs(t, err, boom)

	_, err = mem.Identities().GetIdentityByEmail(ctx, "bob@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestProvisionStaff_CreatesMemberRecords(t *testing.T) {
	mem := memory.New()
	svc, _ := newProvisionService(mem)
	ctx := context.Background()

	owner, err := svc.ProvisionOwner(ctx, OwnerInput{
		Email: "owner@example.com", Password: "pw12345678",
		FullName: "Alice Owner", SocietyName: "Sunrise Towers",
	})
	require.NoError(t, err)

	got, err := svc.ProvisionStaff(ctx, StaffInput{
		Email: "carol@example.com", Password: "pw12345678", FullName: "Carol Staff",
		JoinCode: owner.Organization.JoinCode, Department: "maintenance", Title: "Electrician",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleStaff, got.Profile.Role)

	detail, err := mem.StaffDetails().GetStaffDetail(ctx, got.Profile.ID)
	require.NoError(t, err)
	require.Equal(t, "maintenance", detail.Department)
}

func TestProvisionOwner_RejectsMissingFields(t *testing.T) {
	mem := memory.New()
	svc, provider := newProvisionService(mem)

	_, err := svc.ProvisionOwner(context.Background(), OwnerInput{Email: "a@b.c"})
	require.ErrorIs(t, err, ErrInvalidRequest)
	require.Zero(t, provider.createCalls.Load())
}
