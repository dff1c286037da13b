package sqlite

import (
	"context"
	"testing"
)

func TestAddGenre_DuplicateNameReturnsExisting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	g1, err := s.AddGenre(ctx, "Aqida")
	if err != nil {
		t.Fatalf("AddGenre: %v", err)
	}
	if g1.ID == 0 {
		t.Error("expected non-zero genre id")
	}

	g2, err := s.AddGenre(ctx, "Aqida")
	if err != nil {
		t.Fatalf("AddGenre duplicate: %v", err)
	}
	if g2.ID != g1.ID {
		t.Errorf("duplicate add: got id %d, want %d", g2.ID, g1.ID)
	}

	genres, err := s.ListGenres(ctx)
	if err != nil {
		t.Fatalf("ListGenres: %v", err)
	}
	if len(genres) != 1 {
		t.Errorf("expected 1 genre, got %d", len(genres))
	}
}

func TestListGenres_NameOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Tarix", "Aqida", "Siyrat"} {
		if _, err := s.AddGenre(ctx, name); err != nil {
			t.Fatalf("AddGenre(%s): %v", name, err)
		}
	}

	genres, err := s.ListGenres(ctx)
	if err != nil {
		t.Fatalf("ListGenres: %v", err)
	}

	want := []string{"Aqida", "Siyrat", "Tarix"}
	if len(genres) != len(want) {
		t.Fatalf("expected %d genres, got %d", len(want), len(genres))
	}
	for i, name := range want {
		if genres[i].Name != name {
			t.Errorf("item %d: got %q, want %q", i, genres[i].Name, name)
		}
	}
}

func TestSetBookGenres_ReplacesAndIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	b, err := s.CreateBook(ctx, "Janrli kitob")
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	g1, _ := s.AddGenre(ctx, "Aqida")
	g2, _ := s.AddGenre(ctx, "Tarix")
	g3, _ := s.AddGenre(ctx, "Siyrat")

	// Pre-existing link that the set call must wipe out.
	if err := s.LinkBookGenre(ctx, b.ID, g3.ID); err != nil {
		t.Fatalf("LinkBookGenre: %v", err)
	}

	// Duplicate input ids collapse to one link.
	if err := s.SetBookGenres(ctx, b.ID, []int64{g1.ID, g2.ID, g1.ID}); err != nil {
		t.Fatalf("SetBookGenres: %v", err)
	}

	genres, err := s.GetGenresForBook(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetGenresForBook: %v", err)
	}
	if len(genres) != 2 {
		t.Fatalf("expected exactly 2 genres, got %d", len(genres))
	}
	if genres[0].Name != "Aqida" || genres[1].Name != "Tarix" {
		t.Errorf("got %q/%q, want Aqida/Tarix", genres[0].Name, genres[1].Name)
	}

	// Same set again is a no-op.
	if err := s.SetBookGenres(ctx, b.ID, []int64{g1.ID, g2.ID}); err != nil {
		t.Fatalf("SetBookGenres (repeat): %v", err)
	}
	genres, err = s.GetGenresForBook(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetGenresForBook after repeat: %v", err)
	}
	if len(genres) != 2 {
		t.Errorf("repeat call changed the link set: got %d genres", len(genres))
	}
}

func TestLinkBookGenre_RelinkIsNoop(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	b, err := s.CreateBook(ctx, "Kitob")
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	g, err := s.AddGenre(ctx, "Tafsir")
	if err != nil {
		t.Fatalf("AddGenre: %v", err)
	}

	if err := s.LinkBookGenre(ctx, b.ID, g.ID); err != nil {
		t.Fatalf("LinkBookGenre: %v", err)
	}
	if err := s.LinkBookGenre(ctx, b.ID, g.ID); err != nil {
		t.Fatalf("LinkBookGenre relink: %v", err)
	}

	genres, err := s.GetGenresForBook(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetGenresForBook: %v", err)
	}
	if len(genres) != 1 {
		t.Errorf("expected a single link, got %d", len(genres))
	}
}

func TestDeleteGenre_KeepsBooks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	b, err := s.CreateBook(ctx, "Saqlanadigan kitob")
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	g, err := s.AddGenre(ctx, "Vaqtinchalik")
	if err != nil {
		t.Fatalf("AddGenre: %v", err)
	}
	if err := s.LinkBookGenre(ctx, b.ID, g.ID); err != nil {
		t.Fatalf("LinkBookGenre: %v", err)
	}

	if err := s.DeleteGenre(ctx, g.ID); err != nil {
		t.Fatalf("DeleteGenre: %v", err)
	}

	// The link is gone, the book is not.
	genres, err := s.GetGenresForBook(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetGenresForBook: %v", err)
	}
	if len(genres) != 0 {
		t.Errorf("expected no genre links, got %d", len(genres))
	}

	got, err := s.GetBook(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetBook after genre delete: %v", err)
	}
	if got.Title != "Saqlanadigan kitob" {
		t.Errorf("book changed: got %q", got.Title)
	}

	// Deleting an absent genre is a no-op.
	if err := s.DeleteGenre(ctx, 9999); err != nil {
		t.Fatalf("DeleteGenre absent: %v", err)
	}
}

func TestGetBooksByGenre_NumericBookOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	g, err := s.AddGenre(ctx, "Hadis")
	if err != nil {
		t.Fatalf("AddGenre: %v", err)
	}

	for _, b := range []struct{ id, title string }{
		{"12", "O'n ikkinchi"},
		{"3", "Uchinchi"},
		{"1", "Birinchi"},
	} {
		if err := s.AddBook(ctx, b.id, b.title); err != nil {
			t.Fatalf("AddBook(%s): %v", b.id, err)
		}
		if err := s.LinkBookGenre(ctx, b.id, g.ID); err != nil {
			t.Fatalf("LinkBookGenre(%s): %v", b.id, err)
		}
	}

	books, err := s.GetBooksByGenre(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetBooksByGenre: %v", err)
	}

	want := []string{"1", "3", "12"}
	if len(books) != len(want) {
		t.Fatalf("expected %d books, got %d", len(want), len(books))
	}
	for i, id := range want {
		if books[i].ID != id {
			t.Errorf("item %d: got id %q, want %q", i, books[i].ID, id)
		}
	}
}

func TestClearBookGenres(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	b, err := s.CreateBook(ctx, "Kitob")
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	g1, _ := s.AddGenre(ctx, "Aqida")
	g2, _ := s.AddGenre(ctx, "Tarix")
	if err := s.SetBookGenres(ctx, b.ID, []int64{g1.ID, g2.ID}); err != nil {
		t.Fatalf("SetBookGenres: %v", err)
	}

	if err := s.ClearBookGenres(ctx, b.ID); err != nil {
		t.Fatalf("ClearBookGenres: %v", err)
	}

	genres, err := s.GetGenresForBook(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetGenresForBook: %v", err)
	}
	if len(genres) != 0 {
		t.Errorf("expected no links after clear, got %d", len(genres))
	}
}
