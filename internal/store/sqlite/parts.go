package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/behruz-py/audiokitob-islom-bot/internal/domain"
)

// partColumns is the ordered list of columns selected in part queries.
// Must match the scan order in scanPart.
const partColumns = `id, book_id, title, audio_ref`

// scanPart scans a sql.Row (or sql.Rows via its Scan method) into a domain.Part.
func scanPart(scanner interface{ Scan(dest ...any) error }) (*domain.Part, error) {
	var p domain.Part
	if err := scanner.Scan(&p.ID, &p.BookID, &p.Title, &p.AudioRef); err != nil {
		return nil, err
	}
	return &p, nil
}

// AddPart appends a part to a book and returns the stored row.
// The owning book must exist; the foreign key rejects orphan parts.
func (s *Store) AddPart(ctx context.Context, bookID, title, audioRef string) (*domain.Part, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO parts (book_id, title, audio_ref) VALUES (?, ?, ?)`,
		bookID, title, audioRef,
	)
	if err != nil {
		return nil, fmt.Errorf("insert part: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.Part{ID: id, BookID: bookID, Title: title, AudioRef: audioRef}, nil
}

// ListParts returns a book's parts ordered by ascending id. The slice
// position is the zero-based part index exposed to listeners.
func (s *Store) ListParts(ctx context.Context, bookID string) ([]*domain.Part, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+partColumns+` FROM parts WHERE book_id = ? ORDER BY id ASC`, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parts []*domain.Part
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return parts, nil
}

// DeletePartByIndex deletes the part at the zero-based position among the
// book's parts in ascending-id order. Out-of-range indices are a no-op.
// Indices are view-time positions: they shift after every deletion, so
// callers re-fetch the part list before issuing another index operation.
func (s *Store) DeletePartByIndex(ctx context.Context, bookID string, index int) error {
	if index < 0 {
		return nil
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id FROM parts WHERE book_id = ? ORDER BY id ASC LIMIT 1 OFFSET ?`,
		bookID, index)

	var id int64
	err := row.Scan(&id)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `DELETE FROM parts WHERE id = ?`, id)
	return err
}
