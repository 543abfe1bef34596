package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/strataworks/societyd/internal/society/domain"
)

type noticesRepo struct {
	db *sql.DB
}

func (r *noticesRepo) CreateNotice(ctx context.Context, n domain.Notice) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notices (id, title, content, author_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		n.ID, n.Title, n.Content, n.AuthorID, formatTime(n.CreatedAt), formatTime(n.UpdatedAt),
	)
	return mapUnique(err)
}

func (r *noticesRepo) GetNoticeByID(ctx context.Context, id string) (domain.Notice, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM notices WHERE id = ?`, id))
}

func (r *noticesRepo) ListNotices(ctx context.Context) ([]domain.Notice, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM notices ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Notice
	for rows.Next() {
		var n domain.Notice
		var createdAt, updatedAt string
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.AuthorID, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		n.CreatedAt, n.UpdatedAt = parseTime(createdAt), parseTime(updatedAt)
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *noticesRepo) UpdateNotice(ctx context.Context, id, title, content string, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notices SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		title, content, formatTime(updatedAt), id,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *noticesRepo) DeleteNotice(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notices WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *noticesRepo) scanOne(row *sql.Row) (domain.Notice, error) {
	var n domain.Notice
	var createdAt, updatedAt string

	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.AuthorID, &createdAt, &updatedAt)
	if err != nil {
		return domain.Notice{}, mapNotFound(err)
	}

	n.CreatedAt, n.UpdatedAt = parseTime(createdAt), parseTime(updatedAt)
	return n, nil
}
