package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/strataworks/societyd/internal/society/domain"
)

type pollsRepo struct {
	db *sql.DB
}

func (r *pollsRepo) CreatePoll(ctx context.Context, p domain.Poll) error {
	options, err := json.Marshal(p.Options)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO polls (id, question, options, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Question, string(options), formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
	)
	return mapUnique(err)
}

func (r *pollsRepo) GetPollByID(ctx context.Context, id string) (domain.Poll, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, question, options, created_at, updated_at
		FROM polls WHERE id = ?`, id))
}

func (r *pollsRepo) ListPolls(ctx context.Context) ([]domain.Poll, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, question, options, created_at, updated_at
		FROM polls ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Poll
	for rows.Next() {
		var p domain.Poll
		var options, createdAt, updatedAt string
		if err := rows.Scan(&p.ID, &p.Question, &options, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(options), &p.Options); err != nil {
			return nil, err
		}
		p.CreatedAt, p.UpdatedAt = parseTime(createdAt), parseTime(updatedAt)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *pollsRepo) UpdatePoll(ctx context.Context, id, question string, options []string, updatedAt time.Time) error {
	encoded, err := json.Marshal(options)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE polls SET question = ?, options = ?, updated_at = ? WHERE id = ?`,
		question, string(encoded), formatTime(updatedAt), id,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *pollsRepo) DeletePoll(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM polls WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *pollsRepo) scanOne(row *sql.Row) (domain.Poll, error) {
	var p domain.Poll
	var options, createdAt, updatedAt string

	err := row.Scan(&p.ID, &p.Question, &options, &createdAt, &updatedAt)
	if err != nil {
		return domain.Poll{}, mapNotFound(err)
	}

	if err := json.Unmarshal([]byte(options), &p.Options); err != nil {
		return domain.Poll{}, err
	}
	p.CreatedAt, p.UpdatedAt = parseTime(createdAt), parseTime(updatedAt)
	return p, nil
}
