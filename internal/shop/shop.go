// Package shop acquires brand content (catalog, testimonials, reviews)
// from the target site and assembles the run snapshot.
package shop

import (
	"log/slog"
	"regexp"

	"github.com/neperme-a11y/brand-reputation-monitor/internal/stealth"
)

// Options bound and parameterize one collector run.
type Options struct {
	Categories        []string
	MaxPages          int // hard upper bound per paginated loop
	MaxReviewProducts int // product-page prefix scanned by the review fallback
	TargetYear        int // reviews outside this year are dropped
	SecretToken       string // step-up credential for the testimonials API
	CSRFToken         string // fixed header for the reviews API
}

// Scraper runs the collectors sequentially against one site. Dedup state
// is scoped to a single collector invocation; the only shared run state is
// the HTTP session.
type Scraper struct {
	client      *Client
	opts        Options
	delay       *stealth.HumanDelay
	log         *slog.Logger
	productIDRe *regexp.Regexp
}

// NewScraper wires a scraper. A nil delay disables the politeness pause
// between paginated fetches (tests rely on this).
func NewScraper(client *Client, opts Options, delay *stealth.HumanDelay) *Scraper {
	if opts.MaxPages <= 0 {
		opts.MaxPages = 200
	}
	if opts.MaxReviewProducts <= 0 {
		opts.MaxReviewProducts = 60
	}
	return &Scraper{
		client: client,
		opts:   opts,
		delay:  delay,
		log:    slog.Default().With("component", "shop"),
		// Product-detail hrefs are /product/<digits>, optionally prefixed
		// with the site origin.
		productIDRe: regexp.MustCompile(`(?i)(?:` + regexp.QuoteMeta(client.Origin()) + `)?/product/(\d+)`),
	}
}
