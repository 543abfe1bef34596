package sqlite

import (
	"context"
	"database/sql"

	"github.com/strataworks/societyd/internal/society/domain"
)

type reservationsRepo struct {
	db *sql.DB
}

func (r *reservationsRepo) CreateReservation(ctx context.Context, res domain.Reservation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reservations (id, pool_id, requester_id, opened_at)
		VALUES (?, ?, ?, ?)`,
		res.ID, res.PoolID, res.RequesterID, formatTime(res.OpenedAt),
	)
	return mapUnique(err)
}

func (r *reservationsRepo) GetReservationByID(ctx context.Context, id string) (domain.Reservation, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, pool_id, requester_id, opened_at
		FROM reservations WHERE id = ?`, id))
}

func (r *reservationsRepo) ListReservationsByPool(ctx context.Context, poolID string) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pool_id, requester_id, opened_at
		FROM reservations WHERE pool_id = ? ORDER BY id`, poolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		var openedAt string
		if err := rows.Scan(&res.ID, &res.PoolID, &res.RequesterID, &openedAt); err != nil {
			return nil, err
		}
		res.OpenedAt = parseTime(openedAt)
		out = append(out, res)
	}
	return out, rows.Err()
}

// DeleteReservationReturning atomically deletes the ledger entry and hands
// back the deleted row, so the caller learns which pool to credit. A second
// delete of the same id sees store.ErrNotFound.
func (r *reservationsRepo) DeleteReservationReturning(ctx context.Context, id string) (domain.Reservation, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		DELETE FROM reservations WHERE id = ?
		RETURNING id, pool_id, requester_id, opened_at`, id))
}

func (r *reservationsRepo) scanOne(row *sql.Row) (domain.Reservation, error) {
	var res domain.Reservation
	var openedAt string

	err := row.Scan(&res.ID, &res.PoolID, &res.RequesterID, &openedAt)
	if err != nil {
		return domain.Reservation{}, mapNotFound(err)
	}

	res.OpenedAt = parseTime(openedAt)
	return res, nil
}
