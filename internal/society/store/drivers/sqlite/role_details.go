package sqlite

import (
	"context"
	"database/sql"

	"github.com/strataworks/societyd/internal/society/domain"
)

type residentDetailsRepo struct {
	db *sql.DB
}

func (r *residentDetailsRepo) CreateResidentDetail(ctx context.Context, d domain.ResidentDetail) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO resident_details (profile_id, flat_no, move_in_date)
		VALUES (?, ?, ?)`,
		d.ProfileID, d.FlatNo, formatTime(d.MoveInDate),
	)
	return mapUnique(err)
}

func (r *residentDetailsRepo) GetResidentDetail(ctx context.Context, profileID string) (domain.ResidentDetail, error) {
	var d domain.ResidentDetail
	var moveIn string

	err := r.db.QueryRowContext(ctx, `
		SELECT profile_id, flat_no, move_in_date
		FROM resident_details WHERE profile_id = ?`, profileID,
	).Scan(&d.ProfileID, &d.FlatNo, &moveIn)
	if err != nil {
		return domain.ResidentDetail{}, mapNotFound(err)
	}

	d.MoveInDate = parseTime(moveIn)
	return d, nil
}

func (r *residentDetailsRepo) DeleteResidentDetail(ctx context.Context, profileID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM resident_details WHERE profile_id = ?`, profileID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

type staffDetailsRepo struct {
	db *sql.DB
}

func (r *staffDetailsRepo) CreateStaffDetail(ctx context.Context, d domain.StaffDetail) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO staff_details (profile_id, department, title)
		VALUES (?, ?, ?)`,
		d.ProfileID, d.Department, d.Title,
	)
	return mapUnique(err)
}

func (r *staffDetailsRepo) GetStaffDetail(ctx context.Context, profileID string) (domain.StaffDetail, error) {
	var d domain.StaffDetail

	err := r.db.QueryRowContext(ctx, `
		SELECT profile_id, department, title
		FROM staff_details WHERE profile_id = ?`, profileID,
	).Scan(&d.ProfileID, &d.Department, &d.Title)
	if err != nil {
		return domain.StaffDetail{}, mapNotFound(err)
	}

	return d, nil
}

func (r *staffDetailsRepo) DeleteStaffDetail(ctx context.Context, profileID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM staff_details WHERE profile_id = ?`, profileID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
