package documents

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

const docColumns = `
SELECT id, user_id, file_name, storage_key, size_bytes, mime_type,
       status, extracted_text, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (id, user_id, file_name, storage_key, size_bytes, mime_type, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		doc.ID,
		doc.UserID,
		doc.FileName,
		doc.StorageKey,
		doc.SizeBytes,
		doc.MimeType,
		doc.Status,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, docID string) (Document, error) {
	const query = docColumns + `
FROM documents
WHERE id = $1
LIMIT 1`
	return scanDocument(r.DB.QueryRowContext(ctx, query, docID))
}

func (r *PGRepo) GetCurrent(ctx context.Context, userID string) (Document, error) {
	const query = docColumns + `
FROM documents
WHERE user_id = $1
ORDER BY created_at DESC, id
LIMIT 1`
	return scanDocument(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Document, error) {
	const query = docColumns + `
FROM documents
WHERE user_id = $1
ORDER BY created_at DESC, id`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func (r *PGRepo) SetExtractedText(ctx context.Context, docID, text, status string) error {
	const query = `
UPDATE documents
SET extracted_text = $2, status = $3, updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, docID, text, status)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	var extracted sql.NullString
	err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.FileName,
		&doc.StorageKey,
		&doc.SizeBytes,
		&doc.MimeType,
		&doc.Status,
		&extracted,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	doc.ExtractedText = extracted.String
	return doc, nil
}
