// Package pipeline holds the ordered fallback chain used by the review
// collector and the progress-reporting context plumbing shared by all
// collectors.
package pipeline

import (
	"context"
	"fmt"

	"github.com/neperme-a11y/brand-reputation-monitor/internal/models"
)

// ReviewStrategy is one tier of the review acquisition chain. Collect
// returns an empty slice to signal "try the next tier"; a non-nil error is
// a transport failure and aborts the whole chain.
type ReviewStrategy interface {
	Name() string
	Collect(ctx context.Context) ([]models.Review, error)
}

// CollectFirst runs the strategies in order and returns the first
// non-empty result. All tiers coming up empty is a valid outcome: the
// returned slice is empty, not nil, and the error is nil.
func CollectFirst(ctx context.Context, strategies ...ReviewStrategy) ([]models.Review, error) {
	for _, s := range strategies {
		reviews, err := s.Collect(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s tier: %w", s.Name(), err)
		}
		if len(reviews) > 0 {
			ReportProgress(ctx, fmt.Sprintf("Collected %d reviews via %s", len(reviews), s.Name()))
			return reviews, nil
		}
		ReportProgress(ctx, fmt.Sprintf("Tier %s yielded nothing, trying next...", s.Name()))
	}
	return []models.Review{}, nil
}
