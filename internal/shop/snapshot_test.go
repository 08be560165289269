package shop_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/neperme-a11y/brand-reputation-monitor/internal/models"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/shop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeSite() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, `<html><body><main>
				<div><a href="/product/11">Cozy Wool Sweater</a><span>79.99</span></div>
			</main></body></html>`)
			return
		}
		fmt.Fprint(w, emptyListingPage)
	})
	mux.HandleFunc("/api/testimonials", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Secret-Token") != "secret123" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		fmt.Fprint(w, `<html><body><main>
			<blockquote>The sweater kept its shape after a dozen washes.</blockquote>
		</main></body></html>`)
	})
	mux.HandleFunc("/api/reviews", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, `{"reviews":[{"text":"Warm and true to size","date":"2023-10-12","rating":5}]}`)
			return
		}
		fmt.Fprint(w, `{"reviews":[]}`)
	})
	return mux
}

func TestBuildSnapshot(t *testing.T) {
	ts := httptest.NewServer(fakeSite())
	defer ts.Close()

	s := newTestScraper(t, ts, shop.Options{
		Categories:  []string{"apparel"},
		TargetYear:  2023,
		SecretToken: "secret123",
		CSRFToken:   "tok",
	})

	snap, err := s.BuildSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ts.URL, snap.Meta.Source)
	_, perr := time.Parse(time.RFC3339, snap.Meta.ScrapedAtUTC)
	assert.NoError(t, perr, "scraped_at_utc must be an RFC 3339 instant")

	require.Len(t, snap.Products, 1)
	assert.Equal(t, "Cozy Wool Sweater", snap.Products[0].Name)
	assert.Equal(t, "79.99", snap.Products[0].Price)

	require.Len(t, snap.Testimonials, 1)
	require.Len(t, snap.Reviews, 1)
	assert.Equal(t, models.SourceAPI, snap.Reviews[0].Source)
	assert.Equal(t, "2023-10-12", snap.Reviews[0].Date)
}

func TestWriteAndLoadSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	missing, err := shop.LoadSnapshot(path)
	require.NoError(t, err, "no snapshot yet is a valid state")
	assert.Nil(t, missing)

	snap := &models.Snapshot{
		Meta: models.Meta{Source: "https://example.test", ScrapedAtUTC: "2023-06-01T00:00:00Z"},
		Products: []models.Product{
			{ID: "1", Name: "Thing", Price: "9.99", URL: "https://example.test/product/1"},
		},
		Testimonials: []models.Testimonial{},
		Reviews:      []models.Review{},
	}
	require.NoError(t, shop.WriteSnapshot(path, snap))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"testimonials": []`, "empty sections serialize as empty arrays, never null")
	assert.Contains(t, string(data), `"reviews": []`)

	loaded, err := shop.LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}
