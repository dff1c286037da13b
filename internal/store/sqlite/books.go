package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/behruz-py/audiokitob-islom-bot/internal/domain"
	"github.com/behruz-py/audiokitob-islom-bot/internal/store"
)

// bookColumns is the ordered list of columns selected in book queries.
// Must match the scan order in scanBook.
const bookColumns = `id, title`

// scanBook scans a sql.Row (or sql.Rows via its Scan method) into a domain.Book.
func scanBook(scanner interface{ Scan(dest ...any) error }) (*domain.Book, error) {
	var b domain.Book
	if err := scanner.Scan(&b.ID, &b.Title); err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBook allocates the next dense numeric id and inserts the book.
// Allocation and insert happen in one statement, so two concurrent admins
// can never be assigned the same id.
func (s *Store) CreateBook(ctx context.Context, title string) (*domain.Book, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO books (id, title)
		SELECT CAST(COALESCE(MAX(CAST(id AS INTEGER)), 0) + 1 AS TEXT), ?
		FROM books
		RETURNING id`,
		title,
	)

	var id string
	if err := row.Scan(&id); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return &domain.Book{ID: id, Title: title}, nil
}

// NextBookID reports the id CreateBook would assign right now. Display only:
// a concurrent CreateBook invalidates the answer before it can be used.
func (s *Store) NextBookID(ctx context.Context) (string, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT CAST(COALESCE(MAX(CAST(id AS INTEGER)), 0) + 1 AS TEXT) FROM books`)

	var id string
	if err := row.Scan(&id); err != nil {
		return "", fmt.Errorf("next book id: %w", err)
	}
	return id, nil
}

// AddBook inserts a book under an explicit id. An existing id is a no-op.
func (s *Store) AddBook(ctx context.Context, id, title string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO books (id, title) VALUES (?, ?)
		ON CONFLICT (id) DO NOTHING`,
		id, title,
	)
	return err
}

// GetBook retrieves a book by id.
// Returns store.ErrNotFound if the book does not exist.
func (s *Store) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = ?`, id)

	b, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetBookByTitle retrieves a book by exact title match.
// Returns store.ErrNotFound if no book carries the title.
func (s *Store) GetBookByTitle(ctx context.Context, title string) (*domain.Book, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE title = ?`, title)

	b, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ListBooks returns all books ordered by numeric id ascending.
func (s *Store) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+bookColumns+` FROM books ORDER BY CAST(id AS INTEGER) ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*domain.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// UpdateBookTitle renames a book. The historical view counter stays keyed by
// the old title; that matches how the counter has always behaved.
// Returns store.ErrNotFound if the book does not exist.
func (s *Store) UpdateBookTitle(ctx context.Context, id, title string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE books SET title = ? WHERE id = ?`, title, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteBook removes a book; parts and genre links cascade away with it.
// Deleting an absent id is a no-op.
func (s *Store) DeleteBook(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	return err
}
