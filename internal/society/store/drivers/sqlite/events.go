package sqlite

import (
	"context"
	"database/sql"

	"github.com/strataworks/societyd/internal/society/domain"
)

type eventsRepo struct {
	db *sql.DB
}

func (r *eventsRepo) CreateEvent(ctx context.Context, e domain.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (id, organization_id, title, description, event_date)
		VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.OrganizationID, e.Title, e.Description, formatTime(e.EventDate),
	)
	return mapUnique(err)
}

func (r *eventsRepo) ListEventsByOrganization(ctx context.Context, organizationID string) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, organization_id, title, description, event_date
		FROM events WHERE organization_id = ? ORDER BY event_date`, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		var e domain.Event
		var eventDate string
		if err := rows.Scan(&e.ID, &e.OrganizationID, &e.Title, &e.Description, &eventDate); err != nil {
			return nil, err
		}
		e.EventDate = parseTime(eventDate)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventsRepo) DeleteEvent(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
