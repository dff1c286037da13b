// Package store defines the persistence contract for the audiokitob bot.
//
// The interface is deliberately dialect-free: every conflict-tolerant write
// is specified as an atomic insert-or-ignore / insert-or-update operation so
// that any backing engine with conflict-resolution semantics can implement
// it without client-side read-then-write races.
package store

import (
	"context"

	"github.com/behruz-py/audiokitob-islom-bot/internal/domain"
)

// Store is the full persistence surface consumed by the services and,
// through them, by the conversational menu handlers.
type Store interface {
	BookStore
	PartStore
	GenreStore
	UserStore
	AdminStore
	FeedbackStore
	ViewStore

	// Close releases the underlying connections.
	Close() error
}

// BookStore manages the book catalog.
type BookStore interface {
	// CreateBook allocates the next dense numeric id and inserts the book
	// as a single atomic step, returning the stored book.
	CreateBook(ctx context.Context, title string) (*domain.Book, error)

	// NextBookID reports the id CreateBook would assign right now. It is a
	// plain read: a concurrent CreateBook can invalidate the answer, so it
	// is for display only, never for allocation.
	NextBookID(ctx context.Context) (string, error)

	// AddBook inserts a book under an explicit id. Inserting an id that
	// already exists is a no-op, not an error.
	AddBook(ctx context.Context, id, title string) error

	GetBook(ctx context.Context, id string) (*domain.Book, error)
	GetBookByTitle(ctx context.Context, title string) (*domain.Book, error)

	// ListBooks returns all books ordered by numeric id ascending.
	ListBooks(ctx context.Context) ([]*domain.Book, error)

	UpdateBookTitle(ctx context.Context, id, title string) error

	// DeleteBook removes the book and cascades to its parts and genre
	// links. Deleting an absent id is a no-op.
	DeleteBook(ctx context.Context, id string) error
}

// PartStore manages the audio parts of a book.
type PartStore interface {
	AddPart(ctx context.Context, bookID, title, audioRef string) (*domain.Part, error)

	// ListParts returns a book's parts ordered by ascending id; the slice
	// position is the part index exposed to listeners.
	ListParts(ctx context.Context, bookID string) ([]*domain.Part, error)

	// DeletePartByIndex resolves the row at the zero-based position among
	// the book's parts in ascending-id order and deletes exactly that row.
	// An out-of-range index is a no-op. Indices shift after deletion, so
	// callers must re-fetch the list before further index operations.
	DeletePartByIndex(ctx context.Context, bookID string, index int) error
}

// GenreStore manages the genre taxonomy and the book-genre link set.
type GenreStore interface {
	// AddGenre inserts a genre by unique name, returning the stored row.
	// Adding an existing name returns the existing genre unchanged.
	AddGenre(ctx context.Context, name string) (*domain.Genre, error)

	// ListGenres returns all genres ordered by name.
	ListGenres(ctx context.Context) ([]*domain.Genre, error)

	// DeleteGenre removes the genre and its link rows; books referenced by
	// those links are untouched. Deleting an absent id is a no-op.
	DeleteGenre(ctx context.Context, id int64) error

	// LinkBookGenre adds one link; re-linking an existing pair is a no-op.
	LinkBookGenre(ctx context.Context, bookID string, genreID int64) error

	ClearBookGenres(ctx context.Context, bookID string) error

	// SetBookGenres atomically replaces the full link set for a book:
	// either the whole new set is applied or nothing changes. Duplicate
	// ids in the input are collapsed.
	SetBookGenres(ctx context.Context, bookID string, genreIDs []int64) error

	// GetGenresForBook returns the book's genres ordered by genre name.
	GetGenresForBook(ctx context.Context, bookID string) ([]*domain.Genre, error)

	// GetBooksByGenre returns the genre's books ordered by numeric book id.
	GetBooksByGenre(ctx context.Context, genreID int64) ([]*domain.Book, error)
}

// UserStore manages known chat users.
type UserStore interface {
	// UpsertUser records a user; an existing id is left unchanged.
	UpsertUser(ctx context.Context, id int64, name string) error
	ListUsers(ctx context.Context) ([]*domain.User, error)
	CountUsers(ctx context.Context) (int64, error)
}

// AdminStore manages the mutable database-backed admin set.
type AdminStore interface {
	// UpsertAdmin records an admin; an existing id is left unchanged.
	UpsertAdmin(ctx context.Context, id int64, name string) error
	ListAdmins(ctx context.Context) ([]*domain.Admin, error)

	// DeleteAdmin removes the entry; an absent id is a no-op.
	DeleteAdmin(ctx context.Context, id int64) error
}

// FeedbackStore enforces the feedback-integrity rules on write and exposes
// the batch retention dedup.
type FeedbackStore interface {
	// AddFeedback trims the text and inserts a row timestamped now.
	// Empty text after trimming is a silent no-op, as is a resubmission of
	// the same (user, trimmed text) pair within the trailing 24 hours.
	// After the window elapses the same text stores again.
	AddFeedback(ctx context.Context, userID int64, name, username, text string) error

	// ListFeedback returns the most recent rows, newest first; rows with
	// equal timestamps order by reverse insertion. A non-positive limit
	// falls back to 10.
	ListFeedback(ctx context.Context, limit int) ([]*domain.Feedback, error)

	// DeduplicateFeedback collapses all historical duplicates: per
	// (user id, trimmed text) group only the most recent row survives,
	// ties broken by the most recently inserted row. Returns the number
	// of rows removed; running it again removes zero.
	DeduplicateFeedback(ctx context.Context) (int64, error)
}

// ViewStore tracks per-title popularity counters.
type ViewStore interface {
	// IncrementBookView upserts the counter: absent titles start at 1,
	// existing ones increment atomically (no lost updates under
	// concurrent callers).
	IncrementBookView(ctx context.Context, bookName string) error

	// ListBookViews returns all counters ordered by count descending.
	ListBookViews(ctx context.Context) ([]*domain.BookView, error)
}
