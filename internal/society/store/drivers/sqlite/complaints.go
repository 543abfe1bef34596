package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/strataworks/societyd/internal/society/domain"
)

type complaintsRepo struct {
	db *sql.DB
}

const complaintColumns = `id, user_id, title, description, image_url, status, assigned_to, created_at, updated_at`

func (r *complaintsRepo) CreateComplaint(ctx context.Context, c domain.Complaint) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO complaints (id, user_id, title, description, image_url, status, assigned_to, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Title, c.Description, mapStringNull(c.ImageURL), c.Status,
		mapStringNull(c.AssignedTo), formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
	)
	return mapUnique(err)
}

func (r *complaintsRepo) GetComplaintByID(ctx context.Context, id string) (domain.Complaint, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+complaintColumns+` FROM complaints WHERE id = ?`, id)

	var c domain.Complaint
	var imageURL, assignedTo sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.Description, &imageURL, &c.Status, &assignedTo, &createdAt, &updatedAt)
	if err != nil {
		return domain.Complaint{}, mapNotFound(err)
	}

	c.ImageURL, c.AssignedTo = mapNullString(imageURL), mapNullString(assignedTo)
	c.CreatedAt, c.UpdatedAt = parseTime(createdAt), parseTime(updatedAt)
	return c, nil
}

func (r *complaintsRepo) ListComplaintsByUser(ctx context.Context, userID string) ([]domain.Complaint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+complaintColumns+` FROM complaints WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return r.scanList(rows)
}

func (r *complaintsRepo) ListComplaintsByAssignee(ctx context.Context, staffID string) ([]domain.Complaint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+complaintColumns+` FROM complaints WHERE assigned_to = ? ORDER BY created_at DESC`, staffID)
	if err != nil {
		return nil, err
	}
	return r.scanList(rows)
}

func (r *complaintsRepo) ListComplaints(ctx context.Context, status string) ([]domain.Complaint, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status == "" {
		rows, err = r.db.QueryContext(ctx, `
			SELECT `+complaintColumns+` FROM complaints ORDER BY created_at DESC`)
	} else {
		rows, err = r.db.QueryContext(ctx, `
			SELECT `+complaintColumns+` FROM complaints WHERE status = ? ORDER BY created_at DESC`, status)
	}
	if err != nil {
		return nil, err
	}
	return r.scanList(rows)
}

func (r *complaintsRepo) AssignComplaint(ctx context.Context, id, staffID string, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE complaints SET assigned_to = ?, status = ?, updated_at = ? WHERE id = ?`,
		staffID, domain.ComplaintInProgress, formatTime(updatedAt), id,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *complaintsRepo) UpdateComplaintStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE complaints SET status = ?, updated_at = ? WHERE id = ?`,
		status, formatTime(updatedAt), id,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *complaintsRepo) scanList(rows *sql.Rows) ([]domain.Complaint, error) {
	defer rows.Close()

	var out []domain.Complaint
	for rows.Next() {
		var c domain.Complaint
		var imageURL, assignedTo sql.NullString
		var createdAt, updatedAt string
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.Description, &imageURL, &c.Status, &assignedTo, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		c.ImageURL, c.AssignedTo = mapNullString(imageURL), mapNullString(assignedTo)
		c.CreatedAt, c.UpdatedAt = parseTime(createdAt), parseTime(updatedAt)
		out = append(out, c)
	}
	return out, rows.Err()
}
