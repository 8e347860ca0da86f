package phones_test

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonehub/internal/phones"
	"phonehub/internal/scraper"
	"phonehub/pkg/utils"
)

func streamListingHTML(slugs ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><div class="general-menu"><ul>`)
	for i, slug := range slugs {
		fmt.Fprintf(&b, `<li><a href="%s"><strong><span>Acme %d</span></strong></a></li>`, slug, i+1)
	}
	b.WriteString(`</ul></div></body></html>`)
	return b.String()
}

func streamDetailHTML(title string) string {
	return fmt.Sprintf(`<html><body>
<h1 class="specs-phone-name-title">%s</h1>
<div id="specs-list">
  <table><tr><th>Launch</th><td class="ttl">Announced</td><td class="nfo">2023, March</td></tr></table>
</div>
</body></html>`, title)
}

// newStreamServer serves the router over a real listener so the response can
// stream and the client can disconnect mid-flight; the recorder can do
// neither.
func newStreamServer(t *testing.T, source http.HandlerFunc, keepalive time.Duration) (*httptest.Server, *phones.Repo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	src := httptest.NewServer(source)
	t.Cleanup(src.Close)

	client := scraper.NewClient(utils.ScraperConfig{
		BaseURL:      src.URL,
		UserAgent:    "phonehub-test/1.0",
		FetchTimeout: 5 * time.Second,
	})

	repo := newTestRepo(t)
	router := gin.New()
	phones.NewHandler(repo, client, nil, keepalive).RegisterRoutes(router)

	api := httptest.NewServer(router)
	t.Cleanup(api.Close)
	return api, repo
}

// readEvents decodes data lines off an SSE body until EOF or the body errors
// out from a client-side cancel.
func readEvents(t *testing.T, body *bufio.Scanner, each func(scraper.Event) bool) []scraper.Event {
	t.Helper()
	var events []scraper.Event
	for body.Scan() {
		line := body.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		var e scraper.Event
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data:")), &e))
		events = append(events, e)
		if each != nil && !each(e) {
			break
		}
	}
	return events
}

func eventTypes(events []scraper.Event) []string {
	types := make([]string, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}

func TestBulkStreamKeepaliveWhileIdle(t *testing.T) {
	listing := streamListingHTML("acme_one-101.php")
	api, _ := newStreamServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/acme-phones-42.php":
			_, _ = w.Write([]byte(listing))
		default:
			// a slow detail page leaves the stream idle long enough for
			// several heartbeat intervals to pass
			time.Sleep(250 * time.Millisecond)
			_, _ = w.Write([]byte(streamDetailHTML("Acme One")))
		}
	}, 40*time.Millisecond)

	resp, err := http.Get(api.URL + "/brands/acme-phones-42/bulk/stream")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events := readEvents(t, bufio.NewScanner(resp.Body), nil)
	types := eventTypes(events)

	require.NotEmpty(t, types)
	assert.Equal(t, scraper.EventStarted, types[0])
	assert.Contains(t, types, scraper.EventKeepalive)
	assert.Contains(t, types, scraper.EventItemOK)
	assert.Equal(t, scraper.EventDone, types[len(types)-1])
}

func TestBulkStreamClientDisconnectStopsPersistence(t *testing.T) {
	listing := streamListingHTML(
		"acme_one-101.php", "acme_two-102.php", "acme_three-103.php", "acme_four-104.php",
	)
	api, repo := newStreamServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/acme-phones-42.php":
			_, _ = w.Write([]byte(listing))
		default:
			time.Sleep(150 * time.Millisecond)
			_, _ = w.Write([]byte(streamDetailHTML("Acme Phone")))
		}
	}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api.URL+"/brands/acme-phones-42/bulk/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	inserted := 0
	readEvents(t, bufio.NewScanner(resp.Body), func(e scraper.Event) bool {
		if e.Type != scraper.EventItemOK {
			return true
		}
		inserted++
		if inserted == 2 {
			// hanging up mid-run cancels the job through the request context
			cancel()
			return false
		}
		return true
	})
	require.Equal(t, 2, inserted)

	// give a torn-down job time to misbehave before counting rows
	time.Sleep(400 * time.Millisecond)
	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n, "rows persisted before the hang-up stay, nothing lands after")
}
