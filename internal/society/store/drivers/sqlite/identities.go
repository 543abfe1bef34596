package sqlite

import (
	"context"
	"database/sql"

	"github.com/strataworks/societyd/internal/society/domain"
)

type identitiesRepo struct {
	db *sql.DB
}

func (r *identitiesRepo) CreateIdentity(ctx context.Context, ident domain.Identity) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO identities (id, email, password_hash, full_name, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		ident.ID, ident.Email, ident.PasswordHash, ident.FullName, formatTime(ident.CreatedAt),
	)
	return mapUnique(err)
}

func (r *identitiesRepo) GetIdentityByID(ctx context.Context, id string) (domain.Identity, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, full_name, created_at
		FROM identities WHERE id = ?`, id))
}

func (r *identitiesRepo) GetIdentityByEmail(ctx context.Context, email string) (domain.Identity, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, full_name, created_at
		FROM identities WHERE email = ?`, email))
}

func (r *identitiesRepo) DeleteIdentity(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM identities WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *identitiesRepo) scanOne(row *sql.Row) (domain.Identity, error) {
	var ident domain.Identity
	var createdAt string

	err := row.Scan(&ident.ID, &ident.Email, &ident.PasswordHash, &ident.FullName, &createdAt)
	if err != nil {
		return domain.Identity{}, mapNotFound(err)
	}

	ident.CreatedAt = parseTime(createdAt)
	return ident, nil
}
