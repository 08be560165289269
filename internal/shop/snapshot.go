package shop

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/neperme-a11y/brand-reputation-monitor/internal/models"
)

// BuildSnapshot runs the collectors in order — products first, because the
// review fallback walks the raw product list — and assembles the single
// document of the run. A transport failure in any collector aborts the
// build; nothing partial is returned.
func (s *Scraper) BuildSnapshot(ctx context.Context) (*models.Snapshot, error) {
	rawProducts, err := s.CollectProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect products: %w", err)
	}
	products := DedupeProducts(rawProducts)

	testimonials, err := s.CollectTestimonials(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect testimonials: %w", err)
	}

	reviews, err := s.CollectReviews(ctx, rawProducts)
	if err != nil {
		return nil, fmt.Errorf("collect reviews: %w", err)
	}

	return &models.Snapshot{
		Meta: models.Meta{
			Source:       s.client.BaseURL(),
			ScrapedAtUTC: time.Now().UTC().Format(time.RFC3339),
		},
		Products:     products,
		Testimonials: testimonials,
		Reviews:      reviews,
	}, nil
}

// WriteSnapshot persists the document in one shot. There are no partial or
// incremental writes: an aborted run leaves no snapshot behind.
func WriteSnapshot(path string, snap *models.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a previously written snapshot. A missing file is
// reported as (nil, nil): "no data yet" is a valid state, not an error.
func LoadSnapshot(path string) (*models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}
