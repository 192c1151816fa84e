package applications

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, app Application) error {
	const query = `
INSERT INTO applications (id, user_id, job_id, status, notes, applied_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		app.ID,
		app.UserID,
		app.JobID,
		app.Status,
		nullableString(app.Notes),
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, appID string) (Application, error) {
	const query = `
SELECT id, user_id, job_id, status, notes, applied_at, updated_at
FROM applications
WHERE id = $1
LIMIT 1`
	var app Application
	var notes sql.NullString
	err := r.DB.QueryRowContext(ctx, query, appID).Scan(
		&app.ID,
		&app.UserID,
		&app.JobID,
		&app.Status,
		&notes,
		&app.AppliedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	app.Notes = notes.String
	return app, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Application, error) {
	const query = `
SELECT id, user_id, job_id, status, notes, applied_at, updated_at
FROM applications
WHERE user_id = $1
ORDER BY applied_at DESC, id`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Application, 0)
	for rows.Next() {
		var app Application
		var notes sql.NullString
		if err := rows.Scan(&app.ID, &app.UserID, &app.JobID, &app.Status, &notes, &app.AppliedAt, &app.UpdatedAt); err != nil {
			return nil, err
		}
		app.Notes = notes.String
		out = append(out, app)
	}
	return out, rows.Err()
}

func (r *PGRepo) ListJobIDsByUser(ctx context.Context, userID string) ([]string, error) {
	const query = `SELECT job_id FROM applications WHERE user_id = $1`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, appID, userID, status string) error {
	const query = `
UPDATE applications
SET status = $3, updated_at = now()
WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, appID, userID, status)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
