package sqlite

import (
	"context"
	"database/sql"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/store"
)

type organizationsRepo struct {
	db *sql.DB
}

func (r *organizationsRepo) CreateOrganization(ctx context.Context, org domain.Organization) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO organizations (id, name, address, owner_id, join_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		org.ID, org.Name, org.Address, org.OwnerID, org.JoinCode, formatTime(org.CreatedAt),
	)
	return mapUnique(err)
}

func (r *organizationsRepo) GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, name, address, owner_id, join_code, created_at
		FROM organizations WHERE id = ?`, id))
}

func (r *organizationsRepo) GetOrganizationByJoinCode(ctx context.Context, code string) (domain.Organization, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, name, address, owner_id, join_code, created_at
		FROM organizations WHERE join_code = ?`, code))
}

func (r *organizationsRepo) DeleteOrganization(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM organizations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *organizationsRepo) scanOne(row *sql.Row) (domain.Organization, error) {
	var org domain.Organization
	var createdAt string

	err := row.Scan(&org.ID, &org.Name, &org.Address, &org.OwnerID, &org.JoinCode, &createdAt)
	if err != nil {
		return domain.Organization{}, mapNotFound(err)
	}

	org.CreatedAt = parseTime(createdAt)
	return org, nil
}

// requireAffected turns a zero-row write into store.ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
