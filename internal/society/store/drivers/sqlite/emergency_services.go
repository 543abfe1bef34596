package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/store"
)

type emergencyServicesRepo struct {
	db *sql.DB
}

func (r *emergencyServicesRepo) CreateEmergencyService(ctx context.Context, svc domain.EmergencyService) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO emergency_services (id, service_type, description, available_units)
		VALUES (?, ?, ?, ?)`,
		svc.ID, svc.ServiceType, svc.Description, svc.AvailableUnits,
	)
	return mapUnique(err)
}

func (r *emergencyServicesRepo) GetEmergencyServiceByID(ctx context.Context, id string) (domain.EmergencyService, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, service_type, description, available_units
		FROM emergency_services WHERE id = ?`, id))
}

func (r *emergencyServicesRepo) ListEmergencyServices(ctx context.Context) ([]domain.EmergencyService, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, service_type, description, available_units
		FROM emergency_services ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.EmergencyService
	for rows.Next() {
		var svc domain.EmergencyService
		if err := rows.Scan(&svc.ID, &svc.ServiceType, &svc.Description, &svc.AvailableUnits); err != nil {
			return nil, err
		}
		out = append(out, svc)
	}
	return out, rows.Err()
}

func (r *emergencyServicesRepo) DeleteEmergencyService(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM emergency_services WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// DecrementUnitsCAS is the compare-and-swap allocation write: the decrement
// only applies while available_units still equals the value the caller
// observed. Zero rows updated means another requester got there first.
func (r *emergencyServicesRepo) DecrementUnitsCAS(ctx context.Context, id string, observed int) (domain.EmergencyService, error) {
	svc, err := r.scanOne(r.db.QueryRowContext(ctx, `
		UPDATE emergency_services
		SET available_units = available_units - 1
		WHERE id = ? AND available_units = ?
		RETURNING id, service_type, description, available_units`,
		id, observed,
	))
	if err == nil {
		return svc, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.EmergencyService{}, err
	}

	// Predicate matched nothing: distinguish a missing pool from a lost race.
	var one int
	probe := r.db.QueryRowContext(ctx, `SELECT 1 FROM emergency_services WHERE id = ?`, id).Scan(&one)
	if errors.Is(probe, sql.ErrNoRows) {
		return domain.EmergencyService{}, store.ErrNotFound
	}
	if probe != nil {
		return domain.EmergencyService{}, probe
	}
	return domain.EmergencyService{}, store.ErrConflict
}

func (r *emergencyServicesRepo) RestoreUnits(ctx context.Context, id string, units int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE emergency_services SET available_units = ? WHERE id = ?`,
		units, id,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *emergencyServicesRepo) IncrementUnits(ctx context.Context, id string) (domain.EmergencyService, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		UPDATE emergency_services
		SET available_units = available_units + 1
		WHERE id = ?
		RETURNING id, service_type, description, available_units`,
		id,
	))
}

func (r *emergencyServicesRepo) scanOne(row *sql.Row) (domain.EmergencyService, error) {
	var svc domain.EmergencyService
	err := row.Scan(&svc.ID, &svc.ServiceType, &svc.Description, &svc.AvailableUnits)
	if err != nil {
		return domain.EmergencyService{}, mapNotFound(err)
	}
	return svc, nil
}
