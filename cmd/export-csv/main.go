package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"phonehub/internal/phones"
	"phonehub/pkg/database"
	"phonehub/pkg/models"
)

func main() {
	out := flag.String("out", "data/phones.csv", "output CSV path")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	repo := phones.NewRepo(db)
	stored, err := repo.ListAll(ctx)
	if err != nil {
		log.Fatalf("list phones failed: %v", err)
	}

	if err := writeCSV(*out, stored); err != nil {
		log.Fatalf("export failed: %v", err)
	}

	log.Printf("✅ exported %d phones to %s", len(stored), *out)
}

func writeCSV(outPath string, stored []models.StoredPhone) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	cols := models.SpecColumns()

	header := make([]string, 0, len(cols)+4)
	header = append(header, "id", "slug")
	header = append(header, cols...)
	header = append(header, "created_at", "updated_at")

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, len(header))
	for _, p := range stored {
		row = row[:0]
		row = append(row, strconv.FormatInt(p.ID, 10), p.Slug)
		for _, c := range cols {
			row = append(row, p.Fields[c])
		}
		row = append(row, p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339))
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
