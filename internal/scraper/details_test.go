package scraper_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonehub/pkg/models"
)

func TestPhoneDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acme_alpha_5g-201.php", r.URL.Path)
		_, _ = w.Write([]byte(specsHTML))
	}))
	defer srv.Close()

	rec, err := newTestClient(srv).PhoneDetails(context.Background(), "acme_alpha_5g-201.php")
	require.NoError(t, err)

	// model is the full title, brand its first token
	assert.Equal(t, "Acme Alpha 5G", rec[models.ColModel])
	assert.Equal(t, "Acme", rec[models.ColBrand])
	assert.Equal(t, "2023", rec[models.ColYear])
	assert.Equal(t, srv.URL+"/bigpic/acme-alpha.jpg", rec[models.ColImageURL])
	assert.Equal(t, "GSM / HSPA / LTE / 5G", rec["network_technology"])
}

func TestPhoneDetailsUntitledPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div id="specs-list"></div></body></html>`))
	}))
	defer srv.Close()

	// a page without a recognizable title degrades to absent fields
	rec, err := newTestClient(srv).PhoneDetails(context.Background(), "mystery-1.php")
	require.NoError(t, err)
	_, ok := rec[models.ColBrand]
	assert.False(t, ok)
	_, ok = rec[models.ColModel]
	assert.False(t, ok)
}
