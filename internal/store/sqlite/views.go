package sqlite

import (
	"context"

	"github.com/behruz-py/audiokitob-islom-bot/internal/domain"
)

// IncrementBookView upserts the popularity counter for a title: absent
// titles start at 1, existing ones increment in place. The conflict clause
// makes the increment atomic, so concurrent opens of the same book never
// lose updates.
func (s *Store) IncrementBookView(ctx context.Context, bookName string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO book_views (book_name, count) VALUES (?, 1)
		ON CONFLICT (book_name) DO UPDATE SET count = count + 1`,
		bookName,
	)
	return err
}

// ListBookViews returns all counters ordered by count descending.
func (s *Store) ListBookViews(ctx context.Context) ([]*domain.BookView, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT book_name, count FROM book_views ORDER BY count DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []*domain.BookView
	for rows.Next() {
		var v domain.BookView
		if err := rows.Scan(&v.BookName, &v.Count); err != nil {
			return nil, err
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}
