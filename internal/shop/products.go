package shop

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/markup"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/models"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/pipeline"
)

// priceRe matches a decimal price literal with two fraction digits.
var priceRe = regexp.MustCompile(`\b\d{1,5}\.\d{2}\b`)

// How many ancestor levels the price discovery walks up from an anchor.
const priceAncestorLevels = 6

// CollectProducts pages the category listings and flattens every
// product-detail anchor into a raw product. Ids already seen earlier in
// the run are skipped, and a category's pagination ends on the first page
// that yields zero new ids.
func (s *Scraper) CollectProducts(ctx context.Context) ([]models.RawProduct, error) {
	log := s.log.With("collector", "products")

	var all []models.RawProduct
	seen := make(map[string]struct{})

	for _, category := range s.opts.Categories {
		for page := 1; page <= s.opts.MaxPages; page++ {
			params := url.Values{
				"category": {category},
				"page":     {strconv.Itoa(page)},
			}
			body, err := s.client.FetchStrict(ctx, "/products", params, nil)
			if err != nil {
				return nil, err
			}
			doc, err := markup.Parse(body)
			if err != nil {
				return nil, fmt.Errorf("parse listing page: %w", err)
			}

			pageItems := 0
			doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
				href := strings.TrimSpace(a.AttrOr("href", ""))
				m := s.productIDRe.FindStringSubmatch(href)
				if m == nil {
					return
				}
				id := m[1]
				if _, dup := seen[id]; dup {
					return
				}
				name := markup.Text(a)
				if name == "" {
					return
				}

				all = append(all, models.RawProduct{
					ID:       id,
					Name:     name,
					Price:    discoverPrice(a),
					URL:      s.client.Resolve(href),
					Category: category,
				})
				seen[id] = struct{}{}
				pageItems++
			})

			log.Info("listing page scanned",
				"category", category, "page", page, "new", pageItems, "total", len(all))
			pipeline.ReportProgress(ctx, fmt.Sprintf(
				"Products %s page %d: +%d (total %d)", category, page, pageItems, len(all)))

			if pageItems == 0 {
				break
			}
			if err := s.delay.Wait(ctx); err != nil {
				return nil, err
			}
		}
	}

	return all, nil
}

// discoverPrice walks up from the anchor through the bounded ancestor
// levels and, at the first level whose text contains any price-looking
// substring, returns the last match in that text. The heuristic mirrors
// the site's listing markup, where the price trails the anchor inside a
// shared card container.
func discoverPrice(a *goquery.Selection) string {
	for _, text := range markup.AncestorTexts(a, priceAncestorLevels) {
		if m := priceRe.FindAllString(text, -1); len(m) > 0 {
			return m[len(m)-1]
		}
	}
	return ""
}

// DedupeProducts collapses raw products by (lowercased trimmed name,
// trimmed price), keeping the first occurrence of each group and dropping
// the category tag. Source pagination can repeat ids with entity drift, so
// the stable id is deliberately not the dedup key.
func DedupeProducts(raw []models.RawProduct) []models.Product {
	type key struct {
		name  string
		price string
	}

	out := make([]models.Product, 0, len(raw))
	seen := make(map[key]struct{})
	for _, p := range raw {
		name := strings.TrimSpace(p.Name)
		price := strings.TrimSpace(p.Price)
		k := key{strings.ToLower(name), price}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, models.Product{
			ID:    p.ID,
			Name:  name,
			Price: price,
			URL:   p.URL,
		})
	}
	return out
}
