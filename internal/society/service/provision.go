package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/identity"
	"github.com/strataworks/societyd/internal/society/saga"
	"github.com/strataworks/societyd/internal/society/store"
	"github.com/strataworks/societyd/pkg/idx"
	"github.com/strataworks/societyd/pkg/joincode"
	"github.com/strataworks/societyd/pkg/slogx"
)

// ProvisionService onboards new members. Each flow writes several records
// through a store that is only atomic per record, so the writes run as a
// saga: any forward failure rolls back what already landed and surfaces the
// original error.
type ProvisionService struct {
	Store    store.Store
	Identity identity.Provider
}

type ProvisionResult struct {
	Identity     domain.Identity
	Profile      domain.Profile
	Organization domain.Organization
}

type OwnerInput struct {
	Email          string
	Password       string
	FullName       string
	Phone          string
	SocietyName    string
	SocietyAddress string
}

// ProvisionOwner registers a society owner: identity, a fresh organization
// with a generated join code, and an owner profile linked to both.
func (s *ProvisionService) ProvisionOwner(ctx context.Context, in OwnerInput) (ProvisionResult, error) {
	log := slogx.FromContext(ctx)

	if in.Email == "" || in.Password == "" || in.FullName == "" || in.SocietyName == "" {
		return ProvisionResult{}, ErrInvalidRequest
	}

	code, err := joincode.New()
	if err != nil {
		log.Error("failed to generate join code", slog.Any("error", err))
		return ProvisionResult{}, err
	}

	var (
		ident domain.Identity
		org   domain.Organization
		prof  domain.Profile
	)
	now := time.Now()

	steps := []saga.Step{
		{
			Name: "create identity",
			Forward: func(ctx context.Context) (any, error) {
				var err error
				ident, err = s.Identity.CreateIdentity(ctx, in.Email, in.Password, identity.Metadata{FullName: in.FullName})
				return ident.ID, err
			},
			Compensate: func(ctx context.Context, out any) error {
				return s.Identity.DeleteIdentity(ctx, out.(string))
			},
		},
		{
			// The profile starts unlinked; the organization does not exist
			// yet and the last step fills the reference in.
			Name: "create profile",
			Forward: func(ctx context.Context) (any, error) {
				prof = domain.Profile{
					ID:        ident.ID,
					FullName:  in.FullName,
					Role:      domain.RoleOwner,
					Phone:     in.Phone,
					CreatedAt: now,
				}
				return prof.ID, s.Store.Profiles().CreateProfile(ctx, prof)
			},
			Compensate: func(ctx context.Context, out any) error {
				return s.Store.Profiles().DeleteProfile(ctx, out.(string))
			},
		},
		{
			Name: "create organization",
			Forward: func(ctx context.Context) (any, error) {
				org = domain.Organization{
					ID:        idx.New().String(),
					Name:      in.SocietyName,
					Address:   in.SocietyAddress,
					OwnerID:   ident.ID,
					JoinCode:  code,
					CreatedAt: now,
				}
				return org.ID, s.Store.Organizations().CreateOrganization(ctx, org)
			},
			Compensate: func(ctx context.Context, out any) error {
				return s.Store.Organizations().DeleteOrganization(ctx, out.(string))
			},
		},
		{
			Name: "link profile to organization",
			Forward: func(ctx context.Context) (any, error) {
				prof.OrganizationID = org.ID
				return nil, s.Store.Profiles().SetProfileOrganization(ctx, prof.ID, org.ID)
			},
			// Deleting the profile during rollback already discards the link.
			Compensate: nil,
		},
	}

	if _, err := saga.Run(ctx, steps); err != nil {
		return ProvisionResult{}, err
	}

	log.Info("owner provisioned",
		slog.String("profile_id", prof.ID),
		slog.String("organization_id", org.ID),
	)
	return ProvisionResult{Identity: ident, Profile: prof, Organization: org}, nil
}

type ResidentInput struct {
	Email      string
	Password   string
	FullName   string
	Phone      string
	JoinCode   string
	FlatNo     string
	MoveInDate time.Time
}

// ProvisionResident registers a resident into an existing society. The join
// code resolves before any record is written, so a bad code never touches
// the identity provider.
func (s *ProvisionService) ProvisionResident(ctx context.Context, in ResidentInput) (ProvisionResult, error) {
	if in.Email == "" || in.Password == "" || in.FullName == "" || in.FlatNo == "" {
		return ProvisionResult{}, ErrInvalidRequest
	}

	org, err := s.resolveJoinCode(ctx, in.JoinCode)
	if err != nil {
		return ProvisionResult{}, err
	}

	return s.provisionMember(ctx, org, memberInput{
		email:      in.Email,
		password:   in.Password,
		fullName:   in.FullName,
		phone:      in.Phone,
		role:       domain.RoleResident,
		detailName: "create resident detail",
		createDetail: func(ctx context.Context, profileID string) error {
			return s.Store.ResidentDetails().CreateResidentDetail(ctx, domain.ResidentDetail{
				ProfileID:  profileID,
				FlatNo:     in.FlatNo,
				MoveInDate: in.MoveInDate,
			})
		},
		deleteDetail: func(ctx context.Context, profileID string) error {
			return s.Store.ResidentDetails().DeleteResidentDetail(ctx, profileID)
		},
	})
}

type StaffInput struct {
	Email      string
	Password   string
	FullName   string
	Phone      string
	JoinCode   string
	Department string
	Title      string
}

// ProvisionStaff registers a staff member into an existing society.
func (s *ProvisionService) ProvisionStaff(ctx context.Context, in StaffInput) (ProvisionResult, error) {
	if in.Email == "" || in.Password == "" || in.FullName == "" || in.Department == "" {
		return ProvisionResult{}, ErrInvalidRequest
	}

	org, err := s.resolveJoinCode(ctx, in.JoinCode)
	if err != nil {
		return ProvisionResult{}, err
	}

	return s.provisionMember(ctx, org, memberInput{
		email:      in.Email,
		password:   in.Password,
		fullName:   in.FullName,
		phone:      in.Phone,
		role:       domain.RoleStaff,
		detailName: "create staff detail",
		createDetail: func(ctx context.Context, profileID string) error {
			return s.Store.StaffDetails().CreateStaffDetail(ctx, domain.StaffDetail{
				ProfileID:  profileID,
				Department: in.Department,
				Title:      in.Title,
			})
		},
		deleteDetail: func(ctx context.Context, profileID string) error {
			return s.Store.StaffDetails().DeleteStaffDetail(ctx, profileID)
		},
	})
}

func (s *ProvisionService) resolveJoinCode(ctx context.Context, code string) (domain.Organization, error) {
	log := slogx.FromContext(ctx)

	if !joincode.Valid(code) {
		return domain.Organization{}, ErrInvalidJoinCode
	}

	org, err := s.Store.Organizations().GetOrganizationByJoinCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("provisioning attempted with unknown join code",
				slog.String("join_code", code),
			)
			return domain.Organization{}, ErrUnknownJoinCode
		}
		log.Error("failed to resolve join code", slog.Any("error", err))
		return domain.Organization{}, err
	}
	return org, nil
}

type memberInput struct {
	email        string
	password     string
	fullName     string
	phone        string
	role         string
	detailName   string
	createDetail func(ctx context.Context, profileID string) error
	deleteDetail func(ctx context.Context, profileID string) error
}

// provisionMember is the shared resident/staff saga: identity, profile in
// the resolved organization, then the role-specific detail record.
func (s *ProvisionService) provisionMember(ctx context.Context, org domain.Organization, in memberInput) (ProvisionResult, error) {
	log := slogx.FromContext(ctx)

	var (
		ident domain.Identity
		prof  domain.Profile
	)
	now := time.Now()

	steps := []saga.Step{
		{
			Name: "create identity",
			Forward: func(ctx context.Context) (any, error) {
				var err error
				ident, err = s.Identity.CreateIdentity(ctx, in.email, in.password, identity.Metadata{FullName: in.fullName})
				return ident.ID, err
			},
			Compensate: func(ctx context.Context, out any) error {
				return s.Identity.DeleteIdentity(ctx, out.(string))
			},
		},
		{
			Name: "create profile",
			Forward: func(ctx context.Context) (any, error) {
				prof = domain.Profile{
					ID:             ident.ID,
					FullName:       in.fullName,
					Role:           in.role,
					OrganizationID: org.ID,
					Phone:          in.phone,
					CreatedAt:      now,
				}
				return prof.ID, s.Store.Profiles().CreateProfile(ctx, prof)
			},
			Compensate: func(ctx context.Context, out any) error {
				return s.Store.Profiles().DeleteProfile(ctx, out.(string))
			},
		},
		{
			Name: in.detailName,
			Forward: func(ctx context.Context) (any, error) {
				return ident.ID, in.createDetail(ctx, ident.ID)
			},
			Compensate: func(ctx context.Context, out any) error {
				return in.deleteDetail(ctx, out.(string))
			},
		},
	}

	if _, err := saga.Run(ctx, steps); err != nil {
		return ProvisionResult{}, err
	}

	log.Info("member provisioned",
		slog.String("profile_id", prof.ID),
		slog.String("organization_id", org.ID),
		slog.String("role", in.role),
	)
	return ProvisionResult{Identity: ident, Profile: prof, Organization: org}, nil
}
