package sqlite

import (
	"context"
	"fmt"

	"github.com/behruz-py/audiokitob-islom-bot/internal/domain"
)

// genreColumns is the ordered list of columns selected in genre queries.
// Must match the scan order in scanGenre.
const genreColumns = `id, name`

// scanGenre scans a sql.Row (or sql.Rows via its Scan method) into a domain.Genre.
func scanGenre(scanner interface{ Scan(dest ...any) error }) (*domain.Genre, error) {
	var g domain.Genre
	if err := scanner.Scan(&g.ID, &g.Name); err != nil {
		return nil, err
	}
	return &g, nil
}

// AddGenre inserts a genre by unique name and returns the stored row.
// Adding a name that already exists returns the existing genre unchanged;
// duplicate names are steady-state occurrences, not errors.
func (s *Store) AddGenre(ctx context.Context, name string) (*domain.Genre, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO genres (name) VALUES (?)
		ON CONFLICT (name) DO NOTHING`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("insert genre: %w", err)
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+genreColumns+` FROM genres WHERE name = ?`, name)
	return scanGenre(row)
}

// ListGenres returns all genres ordered by name.
func (s *Store) ListGenres(ctx context.Context) ([]*domain.Genre, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+genreColumns+` FROM genres ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []*domain.Genre
	for rows.Next() {
		g, err := scanGenre(rows)
		if err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return genres, nil
}

// DeleteGenre removes a genre. Its book_genres rows cascade away; the books
// referenced by those links are untouched. Absent ids are a no-op.
func (s *Store) DeleteGenre(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM genres WHERE id = ?`, id)
	return err
}

// LinkBookGenre adds a single book-genre link. Re-linking an existing pair
// is a no-op.
func (s *Store) LinkBookGenre(ctx context.Context, bookID string, genreID int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO book_genres (book_id, genre_id) VALUES (?, ?)
		ON CONFLICT (book_id, genre_id) DO NOTHING`,
		bookID, genreID,
	)
	return err
}

// ClearBookGenres removes every genre link for a book.
func (s *Store) ClearBookGenres(ctx context.Context, bookID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM book_genres WHERE book_id = ?`, bookID)
	return err
}

// SetBookGenres replaces the full link set for a book in one transaction:
// delete everything, insert the given set. Duplicate ids within the input
// collapse to one link. Either the whole new set commits or nothing changes.
func (s *Store) SetBookGenres(ctx context.Context, bookID string, genreIDs []int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM book_genres WHERE book_id = ?`, bookID); err != nil {
		return fmt.Errorf("delete book_genres: %w", err)
	}

	for _, genreID := range genreIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO book_genres (book_id, genre_id) VALUES (?, ?)
			ON CONFLICT (book_id, genre_id) DO NOTHING`,
			bookID, genreID,
		)
		if err != nil {
			return fmt.Errorf("insert book_genres: %w", err)
		}
	}

	return tx.Commit()
}

// GetGenresForBook returns the book's genres ordered by genre name.
func (s *Store) GetGenresForBook(ctx context.Context, bookID string) ([]*domain.Genre, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.id, g.name FROM genres g
		JOIN book_genres bg ON g.id = bg.genre_id
		WHERE bg.book_id = ?
		ORDER BY g.name ASC`, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []*domain.Genre
	for rows.Next() {
		g, err := scanGenre(rows)
		if err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return genres, nil
}

// GetBooksByGenre returns the genre's books ordered by numeric book id.
func (s *Store) GetBooksByGenre(ctx context.Context, genreID int64) ([]*domain.Book, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, b.title FROM books b
		JOIN book_genres bg ON b.id = bg.book_id
		WHERE bg.genre_id = ?
		ORDER BY CAST(b.id AS INTEGER) ASC`, genreID)
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
