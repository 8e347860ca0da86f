package scraper

import (
	"strings"
	"time"

	"phonehub/pkg/utils"
)

// Client knows how to walk the phone catalog: brand discovery, listing
// pages and per-phone detail pages. It does no persistence of its own.
type Client struct {
	Fetcher   Fetcher
	BaseURL   string
	PageDelay time.Duration // between listing pages in a bulk run
	ItemDelay time.Duration // between items in a bulk run
}

func NewClient(cfg utils.ScraperConfig) *Client {
	return &Client{
		Fetcher:   NewHTTPFetcher(cfg),
		BaseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		PageDelay: cfg.FetchDelay,
		ItemDelay: cfg.BulkDelay,
	}
}

// absURL resolves a catalog-relative href against the base URL. Already
// absolute hrefs pass through untouched.
func (c *Client) absURL(href string) string {
	if href == "" || strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return c.BaseURL + "/" + strings.TrimLeft(href, "/")
}
