// Command generate_demo creates a demo database with a sample reading log.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/akupelikilinc/TalhaBookLib/internal/database"
	"github.com/akupelikilinc/TalhaBookLib/internal/database/books"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	repo := books.NewRepository(db.DB)

	for _, input := range sampleBooks() {
		book, err := repo.Create(input)
		if err != nil {
			log.Printf("Failed to save book %s: %v", input.Title, err)
			continue
		}
		log.Printf("Saved: %s (id %d)", book.Title, book.ID)
	}

	log.Println("Demo database generated successfully!")
}

func sampleBooks() []books.Input {
	return []books.Input{
		{
			Title:        "Küçük Prens",
			Author:       ptr("Antoine de Saint-Exupéry"),
			Category:     ptr("Klasik"),
			Level:        ptr("4. sınıf"),
			Pages:        intPtr(112),
			Rating:       floatPtr(5),
			Mood:         ptr("😊"),
			Notes:        ptr("Tilki ile olan bölüm çok güzeldi."),
			FinishedDate: datePtr(2025, time.February, 12),
		},
		{
			Title:        "Şeker Portakalı",
			Author:       ptr("José Mauro de Vasconcelos"),
			Category:     ptr("Roman"),
			Level:        ptr("5. sınıf"),
			Pages:        intPtr(182),
			Rating:       floatPtr(4.5),
			Mood:         ptr("😢"),
			FinishedDate: datePtr(2025, time.March, 3),
		},
		{
			Title:        "Charlie'nin Çikolata Fabrikası",
			Author:       ptr("Roald Dahl"),
			Category:     ptr("Macera"),
			Level:        ptr("4. sınıf"),
			Pages:        intPtr(208),
			Rating:       floatPtr(4),
			Mood:         ptr("😄"),
			FinishedDate: datePtr(2025, time.April, 20),
		},
		{
			Title:    "Momo",
			Author:   ptr("Michael Ende"),
			Category: ptr("Fantastik"),
			Level:    ptr("5. sınıf"),
			Pages:    intPtr(304),
			// Still reading, no rating or finished date yet
		},
		{
			Title:        "Martı Jonathan Livingston",
			Author:       ptr("Richard Bach"),
			Category:     ptr("Roman"),
			Level:        ptr("6. sınıf"),
			Pages:        intPtr(96),
			Rating:       floatPtr(3.5),
			FinishedDate: datePtr(2025, time.May, 7),
		},
		{
			Title:        "İnsan Ne İle Yaşar",
			Author:       ptr("Lev Tolstoy"),
			Category:     ptr("Klasik"),
			Level:        ptr("6. sınıf"),
			Pages:        intPtr(88),
			Rating:       floatPtr(4.5),
			Notes:        ptr("Kısa ama etkileyici."),
			FinishedDate: datePtr(2025, time.June, 15),
		},
	}
}

func ptr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
