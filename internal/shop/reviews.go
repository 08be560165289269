package shop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/neperme-a11y/brand-reputation-monitor/internal/dates"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/jsonblob"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/models"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/pipeline"
)

// Conventional field names, consulted first-match-wins. The source never
// settled on one shape, so every lookup goes through these lists.
var (
	reviewTextKeys   = []string{"text", "body", "comment", "review"}
	reviewDateKeys   = []string{"date", "created_at", "createdAt", "timestamp"}
	reviewAuthorKeys = []string{"author", "user", "name"}
	reviewRatingKeys = []string{"rating", "stars", "score"}
	reviewListKeys   = []string{"reviews", "items", "results", "data"}
	blobReviewKeys   = []string{"reviews", "review", "customerReviews"}
	productIDKeys    = []string{"product_id", "productId"}
)

// CollectReviews runs the review tier chain: the dedicated API first, then
// the product-page JSON-blob scan over the raw product list. Both tiers
// coming up empty is a valid outcome.
func (s *Scraper) CollectReviews(ctx context.Context, rawProducts []models.RawProduct) ([]models.Review, error) {
	return pipeline.CollectFirst(ctx,
		&apiReviewTier{scraper: s},
		&productPageReviewTier{scraper: s, products: rawProducts},
	)
}

// apiReviewTier pages the reviews API with the fixed CSRF-style header.
// A non-200 on any page marks the whole tier unusable and discards any
// partial output; an empty item list is the normal end of data.
type apiReviewTier struct {
	scraper *Scraper
}

func (t *apiReviewTier) Name() string { return "api" }

func (t *apiReviewTier) Collect(ctx context.Context) ([]models.Review, error) {
	s := t.scraper
	log := s.log.With("collector", "reviews", "tier", t.Name())

	headers := http.Header{}
	headers.Set("X-Csrf-Token", s.opts.CSRFToken)

	out := make([]models.Review, 0)
	for page := 1; page <= s.opts.MaxPages; page++ {
		params := url.Values{"page": {strconv.Itoa(page)}}
		body, status, err := s.client.Fetch(ctx, "/api/reviews", params, headers)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			log.Warn("reviews api unusable", "page", page, "status", status)
			return nil, nil
		}

		var payload any
		if err := json.Unmarshal([]byte(body), &payload); err != nil {
			log.Warn("reviews api returned a non-json body", "page", page)
			return nil, nil
		}

		items := itemList(payload)
		if len(items) == 0 {
			break
		}

		added := 0
		for _, item := range items {
			rec, ok := item.(map[string]any)
			if !ok {
				continue
			}
			review, ok := s.normalizeReview(rec, firstString(rec, productIDKeys), models.SourceAPI)
			if !ok {
				continue
			}
			review.Rating = firstScalar(rec, reviewRatingKeys)
			review.Author = firstString(rec, reviewAuthorKeys)
			out = append(out, review)
			added++
		}

		log.Info("reviews api page scanned", "page", page, "added", added, "total", len(out))
		pipeline.ReportProgress(ctx, fmt.Sprintf(
			"Reviews api page %d: +%d (total %d)", page, added, len(out)))

		if err := s.delay.Wait(ctx); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// productPageReviewTier fetches a bounded prefix of the raw (pre-dedup)
// product list and scans each detail page's raw body for embedded review
// JSON. Product-detail fetches are strict: a transport failure here aborts
// the run.
type productPageReviewTier struct {
	scraper  *Scraper
	products []models.RawProduct
}

func (t *productPageReviewTier) Name() string { return "product_page" }

func (t *productPageReviewTier) Collect(ctx context.Context) ([]models.Review, error) {
	s := t.scraper
	log := s.log.With("collector", "reviews", "tier", t.Name())

	prods := t.products
	if len(prods) > s.opts.MaxReviewProducts {
		prods = prods[:s.opts.MaxReviewProducts]
	}

	type reviewKey struct {
		productID, date, text string
	}
	out := make([]models.Review, 0)
	seen := make(map[reviewKey]struct{})

	for _, p := range prods {
		pid := strings.TrimSpace(p.ID)
		if pid == "" || p.URL == "" {
			continue
		}

		body, err := s.client.FetchStrict(ctx, p.URL, nil, nil)
		if err != nil {
			return nil, err
		}

		found := 0
		for _, blob := range jsonblob.Scan(body) {
			for _, rec := range reviewRecords(blob) {
				review, ok := s.normalizeReview(rec, pid, models.SourceProductPage)
				if !ok {
					continue
				}
				k := reviewKey{review.ProductID, review.Date, review.Text}
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				out = append(out, review)
				found++
			}
		}

		log.Info("product page scanned", "product_id", pid, "reviews", found)
		pipeline.ReportProgress(ctx, fmt.Sprintf(
			"Product %s: %d embedded reviews", pid, found))

		if err := s.delay.Wait(ctx); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// normalizeReview applies the shared field conventions and the date/year
// filter. Items without usable text or an in-year date are dropped whole,
// never stored with blank fields.
func (s *Scraper) normalizeReview(rec map[string]any, productID, source string) (models.Review, bool) {
	text := firstString(rec, reviewTextKeys)
	if text == "" {
		return models.Review{}, false
	}

	raw, ok := firstValue(rec, reviewDateKeys)
	if !ok {
		return models.Review{}, false
	}
	t, ok := dates.Parse(raw)
	if !ok {
		return models.Review{}, false
	}
	t, ok = dates.RestrictToYear(t, s.opts.TargetYear)
	if !ok {
		return models.Review{}, false
	}

	return models.Review{
		ProductID: productID,
		Date:      t.Format("2006-01-02"),
		Text:      text,
		Source:    source,
	}, true
}

// itemList pulls the review list out of a decoded API payload: the top
// level is either the list itself or an object holding it under one of the
// conventional keys.
func itemList(payload any) []any {
	switch v := payload.(type) {
	case []any:
		return v
	case map[string]any:
		for _, key := range reviewListKeys {
			if list, ok := v[key].([]any); ok {
				return list
			}
		}
	}
	return nil
}

// reviewRecords extracts candidate review objects from one decoded blob:
// objects carrying a review list under a conventional key, or bare lists
// whose first element already looks review-shaped (a date-like field and a
// text-like field).
func reviewRecords(blob any) []map[string]any {
	var recs []map[string]any
	switch v := blob.(type) {
	case map[string]any:
		for _, key := range blobReviewKeys {
			list, ok := v[key].([]any)
			if !ok {
				continue
			}
			for _, item := range list {
				if rec, ok := item.(map[string]any); ok {
					recs = append(recs, rec)
				}
			}
		}
	case []any:
		if len(v) == 0 {
			return nil
		}
		first, ok := v[0].(map[string]any)
		if !ok {
			return nil
		}
		if !hasAnyKey(first, reviewDateKeys) || !hasAnyKey(first, reviewTextKeys) {
			return nil
		}
		for _, item := range v {
			if rec, ok := item.(map[string]any); ok {
				recs = append(recs, rec)
			}
		}
	}
	return recs
}

func hasAnyKey(rec map[string]any, names []string) bool {
	for _, n := range names {
		if _, ok := rec[n]; ok {
			return true
		}
	}
	return false
}

// firstString returns the first non-empty trimmed string among names.
func firstString(rec map[string]any, names []string) string {
	for _, n := range names {
		if s, ok := rec[n].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

// firstValue returns the first present, non-nil, non-blank value among
// names, whatever its type.
func firstValue(rec map[string]any, names []string) (any, bool) {
	for _, n := range names {
		v, ok := rec[n]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

// firstScalar returns the first usable scalar among names. Nested
// structures are never ratings.
func firstScalar(rec map[string]any, names []string) any {
	for _, n := range names {
		switch v := rec[n].(type) {
		case float64:
			if v != 0 {
				return v
			}
		case string:
			if strings.TrimSpace(v) != "" {
				return v
			}
		case bool:
			if v {
				return v
			}
		}
	}
	return nil
}
