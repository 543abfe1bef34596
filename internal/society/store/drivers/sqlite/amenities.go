package sqlite

import (
	"context"
	"database/sql"

	"github.com/strataworks/societyd/internal/society/domain"
)

type amenitiesRepo struct {
	db *sql.DB
}

func (r *amenitiesRepo) CreateAmenity(ctx context.Context, a domain.Amenity) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO amenities (id, name, description, category)
		VALUES (?, ?, ?, ?)`,
		a.ID, a.Name, a.Description, a.Category,
	)
	return mapUnique(err)
}

func (r *amenitiesRepo) GetAmenityByID(ctx context.Context, id string) (domain.Amenity, error) {
	var a domain.Amenity
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, category
		FROM amenities WHERE id = ?`, id,
	).Scan(&a.ID, &a.Name, &a.Description, &a.Category)
	if err != nil {
		return domain.Amenity{}, mapNotFound(err)
	}
	return a, nil
}

func (r *amenitiesRepo) ListAmenities(ctx context.Context) ([]domain.Amenity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, category
		FROM amenities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Amenity
	for rows.Next() {
		var a domain.Amenity
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Category); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *amenitiesRepo) UpdateAmenity(ctx context.Context, a domain.Amenity) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE amenities SET name = ?, description = ?, category = ? WHERE id = ?`,
		a.Name, a.Description, a.Category, a.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *amenitiesRepo) DeleteAmenity(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM amenities WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
