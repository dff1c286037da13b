// Package main provides a tool to seed the database with demo catalog data.
//
// Usage:
//
//	DB_PATH=./bot.db go run ./cmd/seed
//	DB_PATH=./bot.db go run ./cmd/seed --with-views  # Also fake popularity data
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand"
	"os"

	"github.com/behruz-py/audiokitob-islom-bot/internal/service"
	"github.com/behruz-py/audiokitob-islom-bot/internal/store/sqlite"
	"github.com/behruz-py/audiokitob-islom-bot/internal/validation"
)

var withViews = flag.Bool("with-views", false, "Record random view counts for the seeded books")

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "bot.db"
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := sqlite.Open(dbPath, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	ctx := context.Background()
	library := service.NewLibraryService(st, validation.New(), logger)

	genres := map[string]int64{}
	for _, name := range []string{"Aqida", "Siyrat", "Tarix", "Tafsir"} {
		g, err := library.AddGenre(ctx, name)
		if err != nil {
			log.Fatalf("Failed to add genre %q: %v", name, err)
		}
		genres[name] = g.ID
	}

	books := []struct {
		title  string
		parts  int
		genres []string
	}{
		{"Riyozus solihin", 4, []string{"Aqida"}},
		{"Zabur qissasi", 2, []string{"Siyrat", "Tarix"}},
		{"Payg'ambarlar tarixi", 6, []string{"Tarix"}},
		{"Tafsiri hilol", 8, []string{"Tafsir"}},
	}

	for _, b := range books {
		book, err := library.CreateBook(ctx, service.CreateBookInput{Title: b.title})
		if err != nil {
			log.Fatalf("Failed to create book %q: %v", b.title, err)
		}

		for i := 1; i <= b.parts; i++ {
			_, err := library.AddPart(ctx, service.AddPartInput{
				BookID:   book.ID,
				Title:    fmt.Sprintf("%d-qism", i),
				AudioRef: fmt.Sprintf("seed:%s:%d", book.ID, i),
			})
			if err != nil {
				log.Fatalf("Failed to add part to %q: %v", b.title, err)
			}
		}

		var ids []int64
		for _, name := range b.genres {
			ids = append(ids, genres[name])
		}
		if err := library.SetGenres(ctx, book.ID, ids); err != nil {
			log.Fatalf("Failed to set genres for %q: %v", b.title, err)
		}

		if *withViews {
			for i := rand.Intn(20); i > 0; i-- {
				if err := library.RecordView(ctx, book.ID); err != nil {
					log.Fatalf("Failed to record view for %q: %v", b.title, err)
				}
			}
		}

		fmt.Printf("Seeded book %s: %s (%d parts)\n", book.ID, book.Title, b.parts)
	}

	fmt.Println("Done.")
}
