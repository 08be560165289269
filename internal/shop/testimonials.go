package shop

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/markup"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/models"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/pipeline"
)

// Shorter fragments are navigation noise, not testimonials.
const minTestimonialLength = 20

// Markup the testimonials API wraps quotes in, across its layout variants.
const testimonialSelector = "p, blockquote, li, .testimonial, .testimonial-text"

// CollectTestimonials pages the testimonials API. The endpoint sometimes
// answers 401/403 until the step-up token is presented, so each page gets
// exactly one retry with the elevated header. Any other non-200 ends
// pagination, as does a page that contributes nothing new.
func (s *Scraper) CollectTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	log := s.log.With("collector", "testimonials")
	referer := s.client.Resolve("/testimonials")

	out := make([]models.Testimonial, 0)
	seen := make(map[string]struct{})

	for page := 1; page <= s.opts.MaxPages; page++ {
		params := url.Values{"page": {strconv.Itoa(page)}}
		headers := http.Header{}
		headers.Set("Referer", referer)

		body, status, err := s.client.Fetch(ctx, "/api/testimonials", params, headers)
		if err != nil {
			return nil, err
		}
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			headers.Set("X-Secret-Token", s.opts.SecretToken)
			body, status, err = s.client.Fetch(ctx, "/api/testimonials", params, headers)
			if err != nil {
				return nil, err
			}
		}
		if status != http.StatusOK {
			log.Info("testimonials endpoint closed", "page", page, "status", status)
			break
		}

		doc, err := markup.Parse(body)
		if err != nil {
			return nil, fmt.Errorf("parse testimonials page: %w", err)
		}

		added := 0
		markup.Root(doc).Find(testimonialSelector).Each(func(_ int, el *goquery.Selection) {
			text := markup.Text(el)
			if utf8.RuneCountInString(text) < minTestimonialLength {
				return
			}
			if _, dup := seen[text]; dup {
				return
			}
			seen[text] = struct{}{}
			out = append(out, models.Testimonial{Comment: text})
			added++
		})

		log.Info("testimonials page scanned", "page", page, "added", added, "total", len(out))
		pipeline.ReportProgress(ctx, fmt.Sprintf(
			"Testimonials page %d: +%d (total %d)", page, added, len(out)))

		if added == 0 {
			break
		}
		if err := s.delay.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return out, nil
}
