package sqlite

import (
	"context"
	"database/sql"

	"github.com/strataworks/societyd/internal/society/domain"
)

type profilesRepo struct {
	db *sql.DB
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, full_name, role, organization_id, phone, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.FullName, p.Role, mapStringNull(p.OrganizationID), p.Phone, formatTime(p.CreatedAt),
	)
	return mapUnique(err)
}

func (r *profilesRepo) GetProfileByID(ctx context.Context, id string) (domain.Profile, error) {
	var p domain.Profile
	var orgID sql.NullString
	var createdAt string

	err := r.db.QueryRowContext(ctx, `
		SELECT id, full_name, role, organization_id, phone, created_at
		FROM profiles WHERE id = ?`, id,
	).Scan(&p.ID, &p.FullName, &p.Role, &orgID, &p.Phone, &createdAt)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}

	p.OrganizationID = mapNullString(orgID)
	p.CreatedAt = parseTime(createdAt)
	return p, nil
}

func (r *profilesRepo) SetProfileOrganization(ctx context.Context, profileID, organizationID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE profiles SET organization_id = ? WHERE id = ?`,
		organizationID, profileID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *profilesRepo) DeleteProfile(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
