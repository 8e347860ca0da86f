package scraper

import (
	"context"
	"fmt"
	"strings"

	"phonehub/pkg/models"
)

// PhoneDetails fetches one phone's detail page and maps it into the fixed
// schema. Brand is the first whitespace-delimited token of the page title
// and model is the full title; that splits wrong for multi-word makers,
// but it is what the stored schema documents, so it stays.
func (c *Client) PhoneDetails(ctx context.Context, phoneSlug string) (models.PhoneRecord, error) {
	doc, err := c.Fetcher.Fetch(ctx, c.absURL(phoneSlug))
	if err != nil {
		return nil, fmt.Errorf("phone %s: %w", phoneSlug, err)
	}

	rec := MapRecord(ParseSections(doc))

	title := trimmed(doc.Find("h1.specs-phone-name-title").First().Text())
	if title != "" {
		rec[models.ColModel] = title
		rec[models.ColBrand] = strings.Fields(title)[0]
	}

	if src, ok := doc.Find("#specs-cp img").First().Attr("src"); ok && src != "" {
		rec[models.ColImageURL] = c.absURL(src)
	}

	return rec, nil
}
