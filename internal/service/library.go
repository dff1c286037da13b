package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/behruz-py/audiokitob-islom-bot/internal/domain"
	"github.com/behruz-py/audiokitob-islom-bot/internal/normalize"
	"github.com/behruz-py/audiokitob-islom-bot/internal/store"
	"github.com/behruz-py/audiokitob-islom-bot/internal/validation"
)

// LibraryService manages the book catalog: books, parts, genres, and the
// popularity counters behind the stats view.
type LibraryService struct {
	store     store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewLibraryService creates a new library service.
func NewLibraryService(store store.Store, validator *validation.Validator, logger *slog.Logger) *LibraryService {
	return &LibraryService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// CreateBookInput names a new book.
type CreateBookInput struct {
	Title string `json:"title" validate:"required,min=1,max=256"`
}

// CreateBook allocates the next id and stores the book in one step.
func (s *LibraryService) CreateBook(ctx context.Context, in CreateBookInput) (*domain.Book, error) {
	in.Title = normalize.Text(in.Title)
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	book, err := s.store.CreateBook(ctx, in.Title)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	s.logger.Info("book created", "book_id", book.ID, "title", book.Title)
	return book, nil
}

// Books returns the catalog in id order.
func (s *LibraryService) Books(ctx context.Context) ([]*domain.Book, error) {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// Book returns one book by id.
func (s *LibraryService) Book(ctx context.Context, bookID string) (*domain.Book, error) {
	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

// RenameBook updates a book title in place.
func (s *LibraryService) RenameBook(ctx context.Context, bookID, title string) error {
	title = normalize.Text(title)
	if err := s.validator.Validate(CreateBookInput{Title: title}); err != nil {
		return err
	}
	if err := s.store.UpdateBookTitle(ctx, bookID, title); err != nil {
		return fmt.Errorf("rename book: %w", err)
	}
	s.logger.Info("book renamed", "book_id", bookID, "title", title)
	return nil
}

// DeleteBook removes a book and, through the schema, its parts and genre
// links. Deleting an absent id is a no-op.
func (s *LibraryService) DeleteBook(ctx context.Context, bookID string) error {
	if err := s.store.DeleteBook(ctx, bookID); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	s.logger.Info("book deleted", "book_id", bookID)
	return nil
}

// AddPartInput appends one audio part to a book.
type AddPartInput struct {
	BookID   string `json:"book_id" validate:"required"`
	Title    string `json:"title" validate:"required,min=1,max=256"`
	AudioRef string `json:"audio_ref" validate:"required"`
}

// AddPart appends a part at the end of the book's part list.
func (s *LibraryService) AddPart(ctx context.Context, in AddPartInput) (*domain.Part, error) {
	in.Title = normalize.Text(in.Title)
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	part, err := s.store.AddPart(ctx, in.BookID, in.Title, in.AudioRef)
	if err != nil {
		return nil, fmt.Errorf("add part: %w", err)
	}
	return part, nil
}

// BookParts returns a book's parts in play order.
func (s *LibraryService) BookParts(ctx context.Context, bookID string) ([]*domain.Part, error) {
	parts, err := s.store.ListParts(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	return parts, nil
}

// RemovePartAt deletes the part at the given zero-based position in the
// book's current part list. Later parts shift down one position. An
// out-of-range index is a no-op.
func (s *LibraryService) RemovePartAt(ctx context.Context, bookID string, index int) error {
	if err := s.store.DeletePartByIndex(ctx, bookID, index); err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	return nil
}

// AddGenre creates a genre, or returns the existing one with that name.
func (s *LibraryService) AddGenre(ctx context.Context, name string) (*domain.Genre, error) {
	name = normalize.Text(name)
	if err := s.validator.Validate(CreateBookInput{Title: name}); err != nil {
		return nil, err
	}

	genre, err := s.store.AddGenre(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("add genre: %w", err)
	}
	return genre, nil
}

// Genres returns all genres in name order.
func (s *LibraryService) Genres(ctx context.Context) ([]*domain.Genre, error) {
	genres, err := s.store.ListGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genres, nil
}

// DeleteGenre removes a genre and its links, leaving books untouched.
func (s *LibraryService) DeleteGenre(ctx context.Context, genreID int64) error {
	if err := s.store.DeleteGenre(ctx, genreID); err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}
	return nil
}

// SetGenres replaces a book's genre links with exactly the given set.
func (s *LibraryService) SetGenres(ctx context.Context, bookID string, genreIDs []int64) error {
	if err := s.store.SetBookGenres(ctx, bookID, genreIDs); err != nil {
		return fmt.Errorf("set book genres: %w", err)
	}
	return nil
}

// GenresForBook returns a book's genres in name order.
func (s *LibraryService) GenresForBook(ctx context.Context, bookID string) ([]*domain.Genre, error) {
	genres, err := s.store.GetGenresForBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("get genres for book: %w", err)
	}
	return genres, nil
}

// BooksByGenre returns the books linked to a genre in id order.
func (s *LibraryService) BooksByGenre(ctx context.Context, genreID int64) ([]*domain.Book, error) {
	books, err := s.store.GetBooksByGenre(ctx, genreID)
	if err != nil {
		return nil, fmt.Errorf("get books by genre: %w", err)
	}
	return books, nil
}

// RegisterUser records that a user has interacted with the bot.
func (s *LibraryService) RegisterUser(ctx context.Context, userID int64, name string) error {
	if err := s.store.UpsertUser(ctx, userID, normalize.Text(name)); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// RecordView bumps the popularity counter when a user opens a book. The
// counter is keyed by title, so a missing book means nothing to count.
func (s *LibraryService) RecordView(ctx context.Context, bookID string) error {
	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		return fmt.Errorf("get book: %w", err)
	}
	if err := s.store.IncrementBookView(ctx, book.Title); err != nil {
		return fmt.Errorf("increment book view: %w", err)
	}
	return nil
}

// Stats is the admin statistics view.
type Stats struct {
	UserCount int64              `json:"user_count"`
	TopBooks  []*domain.BookView `json:"top_books"`
}

// Stats returns the user count and the view counters, most viewed first.
func (s *LibraryService) Stats(ctx context.Context) (*Stats, error) {
	count, err := s.store.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	views, err := s.store.ListBookViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("list book views: %w", err)
	}
	return &Stats{UserCount: count, TopBooks: views}, nil
}
