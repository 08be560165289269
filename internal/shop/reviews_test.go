package shop_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neperme-a11y/brand-reputation-monitor/internal/models"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/shop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectReviewsAPITier(t *testing.T) {
	var csrf string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/reviews", func(w http.ResponseWriter, r *http.Request) {
		csrf = r.Header.Get("X-Csrf-Token")
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, `{"reviews":[
				{"text":"Exactly as described","date":"2023-03-01","rating":5,"author":"Dana","product_id":"9"},
				{"body":"Too old to count","created_at":"2022-11-02"},
				{"date":"2023-04-01"}
			]}`)
			return
		}
		fmt.Fprint(w, `{"reviews":[]}`)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	s := newTestScraper(t, ts, shop.Options{TargetYear: 2023, CSRFToken: "csrf-tok"})

	got, err := s.CollectReviews(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "csrf-tok", csrf)
	require.Len(t, got, 1, "the off-year and the textless item must be dropped")
	r := got[0]
	assert.Equal(t, models.SourceAPI, r.Source)
	assert.Equal(t, "9", r.ProductID)
	assert.Equal(t, "2023-03-01", r.Date)
	assert.Equal(t, "Exactly as described", r.Text)
	assert.Equal(t, float64(5), r.Rating)
	assert.Equal(t, "Dana", r.Author)
}

const productDetailPage = `<html><body>
<h1>Dragon Energy Potion</h1>
<script>window.__PRODUCT__ = {"id": 7, "reviews": [
  {"text": "Keeps me going all night", "date": "2023-05-20", "stars": 4},
  {"text": "Keeps me going all night", "date": "2023-05-20"},
  {"text": "Bought these in 2021", "timestamp": 1640995200}
]};</script>
<script>var recent = [{"date": 1680000000000, "comment": "Fizzy and strong, would buy again"}];</script>
</body></html>`

func TestCollectReviewsFallsBackToProductPages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/reviews", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/product/7", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, productDetailPage)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	s := newTestScraper(t, ts, shop.Options{TargetYear: 2023})
	raw := []models.RawProduct{
		{ID: "7", Name: "Dragon Energy Potion", URL: ts.URL + "/product/7", Category: "consumables"},
	}

	got, err := s.CollectReviews(context.Background(), raw)
	require.NoError(t, err)

	require.Len(t, got, 2, "the repeated review and the off-year review must be dropped")
	for _, r := range got {
		assert.Equal(t, models.SourceProductPage, r.Source)
		assert.Equal(t, "7", r.ProductID)
	}
	assert.Equal(t, "2023-05-20", got[0].Date)
	assert.Equal(t, "Keeps me going all night", got[0].Text)
	assert.Equal(t, "2023-03-28", got[1].Date, "millisecond epochs normalize to the same calendar date")
	assert.Equal(t, "Fizzy and strong, would buy again", got[1].Text)
}

func TestCollectReviewsDiscardsPartialAPIOutput(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/reviews", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, `{"reviews":[{"text":"First page looked fine","date":"2023-02-02"}]}`)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	s := newTestScraper(t, ts, shop.Options{TargetYear: 2023})

	got, err := s.CollectReviews(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got, "a mid-pagination failure invalidates everything the tier produced")
}

func TestCollectReviewsBoundsProductPagePrefix(t *testing.T) {
	var detailFetches int
	mux := http.NewServeMux()
	mux.HandleFunc("/api/reviews", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/product/", func(w http.ResponseWriter, r *http.Request) {
		detailFetches++
		fmt.Fprint(w, "<html><body>no embedded data</body></html>")
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	s := newTestScraper(t, ts, shop.Options{TargetYear: 2023, MaxReviewProducts: 2})
	raw := []models.RawProduct{
		{ID: "1", Name: "A", URL: ts.URL + "/product/1"},
		{ID: "2", Name: "B", URL: ts.URL + "/product/2"},
		{ID: "3", Name: "C", URL: ts.URL + "/product/3"},
	}

	got, err := s.CollectReviews(context.Background(), raw)
	require.NoError(t, err)

	assert.Empty(t, got)
	assert.Equal(t, 2, detailFetches, "only the configured prefix of products is scanned")
}

func TestCollectReviewsBothTiersEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/reviews", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"reviews":[]}`)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	s := newTestScraper(t, ts, shop.Options{TargetYear: 2023})

	got, err := s.CollectReviews(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, got, "no reviews anywhere is a valid outcome, not an error")
	assert.Empty(t, got)
}
