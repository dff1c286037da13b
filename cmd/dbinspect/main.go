// Package main provides a read-only inspection tool for the bot database.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/behruz-py/audiokitob-islom-bot/internal/store/sqlite"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "bot.db"
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := sqlite.Open(dbPath, logger)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer st.Close()

	ctx := context.Background()

	fmt.Println("=== Database Inspection ===")
	fmt.Println()

	books, err := st.ListBooks(ctx)
	if err != nil {
		log.Fatalf("Failed to list books: %v", err)
	}
	fmt.Printf("Books: %d\n", len(books))
	for _, b := range books {
		parts, err := st.ListParts(ctx, b.ID)
		if err != nil {
			log.Fatalf("Failed to list parts for %s: %v", b.ID, err)
		}
		genres, err := st.GetGenresForBook(ctx, b.ID)
		if err != nil {
			log.Fatalf("Failed to get genres for %s: %v", b.ID, err)
		}
		fmt.Printf("  [%s] %s — %d parts, %d genres\n", b.ID, b.Title, len(parts), len(genres))
	}
	fmt.Println()

	genres, err := st.ListGenres(ctx)
	if err != nil {
		log.Fatalf("Failed to list genres: %v", err)
	}
	fmt.Printf("Genres: %d\n", len(genres))
	for _, g := range genres {
		fmt.Printf("  [%d] %s\n", g.ID, g.Name)
	}
	fmt.Println()

	userCount, err := st.CountUsers(ctx)
	if err != nil {
		log.Fatalf("Failed to count users: %v", err)
	}
	fmt.Printf("Users: %d\n", userCount)

	admins, err := st.ListAdmins(ctx)
	if err != nil {
		log.Fatalf("Failed to list admins: %v", err)
	}
	fmt.Printf("Admins (database set): %d\n", len(admins))
	for _, a := range admins {
		fmt.Printf("  %d %s\n", a.ID, a.Name)
	}
	fmt.Println()

	feedback, err := st.ListFeedback(ctx, 10)
	if err != nil {
		log.Fatalf("Failed to list feedback: %v", err)
	}
	fmt.Printf("Recent feedback: %d\n", len(feedback))
	for _, f := range feedback {
		fmt.Printf("  %s %d(@%s): %s\n", f.CreatedAt.Format("2006-01-02 15:04"), f.UserID, f.Username, f.Text)
	}
	fmt.Println()

	views, err := st.ListBookViews(ctx)
	if err != nil {
		log.Fatalf("Failed to list book views: %v", err)
	}
	fmt.Printf("View counters: %d\n", len(views))
	for _, v := range views {
		fmt.Printf("  %6d  %s\n", v.Count, v.BookName)
	}
}
