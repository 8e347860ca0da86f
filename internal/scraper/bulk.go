package scraper

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"phonehub/pkg/models"
)

// PersistFunc stores one resolved phone keyed by its slug. It is called at
// most once per item and must be idempotent with respect to final state.
type PersistFunc func(ctx context.Context, slug string, rec models.PhoneRecord) error

// BulkResult is the final tally of a bulk run. TotalModels counts every
// listing entry seen, including ones that failed to resolve.
type BulkResult struct {
	TotalInserted int `json:"total_inserted"`
	TotalModels   int `json:"total_models"`
}

// BulkInsert walks every listing page of a brand and resolves and persists
// each phone, strictly sequentially. It reports progress to sink in
// processing order.
//
// Failure policy: a listing-page fetch failure kills the run (pagination
// cannot continue without it) and surfaces as a fatal event; a per-item
// resolve or persist failure only produces an item_error event and the run
// moves on. Cancellation via ctx is honored between pages and between
// items; rows already persisted stay persisted.
func (c *Client) BulkInsert(ctx context.Context, brandSlug string, persist PersistFunc, sink Sink) (BulkResult, error) {
	var res BulkResult

	jobID := uuid.NewString()
	log.Printf("[scraper] bulk %s: brand %s started", jobID, brandSlug)
	sink.Emit(startedEvent(jobID, brandSlug))

	page := 1
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		pr, err := c.BrandModels(ctx, brandSlug, page)
		if err != nil {
			err = fmt.Errorf("bulk %s: %w", brandSlug, err)
			log.Printf("[scraper] bulk %s: fatal: %v", jobID, err)
			sink.Emit(FatalEvent(jobID, err))
			return res, err
		}
		res.TotalModels += len(pr.Models)

		for i, m := range pr.Models {
			if err := ctx.Err(); err != nil {
				return res, err
			}

			rec, err := c.PhoneDetails(ctx, m.Slug)
			if err == nil {
				err = persist(ctx, m.Slug, rec)
			}
			if err != nil {
				sink.Emit(itemErrorEvent(page, i+1, m.Slug, m.Title, err))
			} else {
				res.TotalInserted++
				sink.Emit(itemOKEvent(page, i+1, res.TotalInserted, m.Slug, m.Title))
			}

			sleep(ctx, c.ItemDelay)
		}

		if !pr.HasNext {
			break
		}
		if pr.NextPage > page {
			page = pr.NextPage
		} else {
			page++
		}
		sleep(ctx, c.PageDelay)
	}

	log.Printf("[scraper] bulk %s: done, %d/%d inserted", jobID, res.TotalInserted, res.TotalModels)
	sink.Emit(doneEvent(jobID, res))
	return res, nil
}
