package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"phonehub/internal/phones"
	"phonehub/internal/scraper"
	"phonehub/pkg/database"
	"phonehub/pkg/utils"
)

func main() {
	brand := flag.String("brand", "", "brand slug to scrape, e.g. samsung-phones-9")
	flag.Parse()

	if *brand == "" {
		log.Fatal("usage: scraper -brand <brand-slug>")
	}

	// Ctrl-C cancels between items; rows already stored stay stored.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	repo := phones.NewRepo(db)
	client := scraper.NewClient(utils.LoadScraperConfig())

	res, err := client.BulkInsert(ctx, *brand, repo.Upsert, scraper.SinkFunc(logEvent))
	if err != nil {
		log.Fatalf("bulk scrape failed: %v", err)
	}

	log.Printf("✅ %d/%d phones stored for %s", res.TotalInserted, res.TotalModels, *brand)
}

func logEvent(e scraper.Event) {
	switch e.Type {
	case scraper.EventItemOK:
		log.Printf("[bulk] page %d #%d ok: %s (%d total)", e.Page, e.IndexOnPage, e.Title, e.TotalInserted)
	case scraper.EventItemError:
		log.Printf("[bulk] page %d #%d FAILED: %s: %s", e.Page, e.IndexOnPage, e.Title, e.Error)
	case scraper.EventFatal:
		log.Printf("[bulk] fatal: %s", e.Error)
	}
}
