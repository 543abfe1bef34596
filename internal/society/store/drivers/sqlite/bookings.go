package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/strataworks/societyd/internal/society/domain"
)

type bookingsRepo struct {
	db *sql.DB
}

func (r *bookingsRepo) CreateBooking(ctx context.Context, b domain.Booking) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bookings (id, user_id, amenity_id, requested_date, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.UserID, b.AmenityID, formatTime(b.RequestedDate), formatTime(b.CreatedAt),
	)
	return mapUnique(err)
}

func (r *bookingsRepo) GetBookingByID(ctx context.Context, id string) (domain.Booking, error) {
	var b domain.Booking
	var requestedDate, createdAt string

	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, amenity_id, requested_date, created_at
		FROM bookings WHERE id = ?`, id,
	).Scan(&b.ID, &b.UserID, &b.AmenityID, &requestedDate, &createdAt)
	if err != nil {
		return domain.Booking{}, mapNotFound(err)
	}

	b.RequestedDate, b.CreatedAt = parseTime(requestedDate), parseTime(createdAt)
	return b, nil
}

func (r *bookingsRepo) ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, amenity_id, requested_date, created_at
		FROM bookings WHERE user_id = ? ORDER BY requested_date`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		var b domain.Booking
		var requestedDate, createdAt string
		if err := rows.Scan(&b.ID, &b.UserID, &b.AmenityID, &requestedDate, &createdAt); err != nil {
			return nil, err
		}
		b.RequestedDate, b.CreatedAt = parseTime(requestedDate), parseTime(createdAt)
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *bookingsRepo) UpdateBookingDate(ctx context.Context, id string, requestedDate time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bookings SET requested_date = ? WHERE id = ?`,
		formatTime(requestedDate), id,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *bookingsRepo) DeleteBooking(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
