package scraper_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonehub/internal/scraper"
	"phonehub/pkg/utils"
)

func newDelayedFetcher(srv *httptest.Server, delay time.Duration) *scraper.HTTPFetcher {
	return scraper.NewHTTPFetcher(utils.ScraperConfig{
		BaseURL:      srv.URL,
		UserAgent:    "phonehub-test/1.0",
		FetchTimeout: 5 * time.Second,
		FetchDelay:   delay,
	})
}

// A failed status still costs the politeness delay, so a retrying caller
// cannot hammer the source faster than a succeeding one.
func TestFetchDelaysAfterBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	const delay = 60 * time.Millisecond
	f := newDelayedFetcher(srv, delay)

	start := time.Now()
	_, err := f.Fetch(context.Background(), srv.URL+"/acme-phones-42.php")
	elapsed := time.Since(start)

	var fe *scraper.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusInternalServerError, fe.Status)
	assert.GreaterOrEqual(t, elapsed, delay)
}

func TestFetchDelaysAfterSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<!DOCTYPE html><html><body></body></html>`))
	}))
	defer srv.Close()

	const delay = 60 * time.Millisecond
	f := newDelayedFetcher(srv, delay)

	start := time.Now()
	_, err := f.Fetch(context.Background(), srv.URL+"/acme-phones-42.php")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), delay)
}
