package scraper

import (
	"context"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"phonehub/pkg/utils"
)

// Fetcher retrieves one URL and returns the parsed document. Implementations
// fail with *FetchError on network/status problems and *ParseError on
// unreadable content.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (*goquery.Document, error)
}

// HTTPFetcher fetches pages with browser-like headers and pauses after every
// request so the source never sees a burst. Each value owns its own client;
// there is no shared crawl session between fetchers.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	delay     time.Duration
}

func NewHTTPFetcher(cfg utils.ScraperConfig) *HTTPFetcher {
	return &HTTPFetcher{
		client:    &http.Client{Timeout: cfg.FetchTimeout},
		userAgent: cfg.UserAgent,
		delay:     cfg.FetchDelay,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	// a benign cookie sometimes helps avoid first-visit walls
	req.Header.Set("Cookie", "visited=1;")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()
	// bad statuses and unparseable bodies pay the delay too, so retries
	// after a failure stay just as polite
	defer sleep(ctx, f.delay)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: pageURL, Status: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &ParseError{URL: pageURL, Err: err}
	}

	return doc, nil
}

// sleep waits for d or until ctx is canceled, whichever comes first.
func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
