package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/neperme-a11y/brand-reputation-monitor/internal/models"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTier struct {
	name    string
	reviews []models.Review
	err     error
	calls   int
}

func (s *stubTier) Name() string { return s.name }

func (s *stubTier) Collect(ctx context.Context) ([]models.Review, error) {
	s.calls++
	return s.reviews, s.err
}

func TestCollectFirstStopsAtFirstNonEmpty(t *testing.T) {
	first := &stubTier{name: "api", reviews: []models.Review{{Text: "good", Source: "api"}}}
	second := &stubTier{name: "product_page"}

	got, err := pipeline.CollectFirst(context.Background(), first, second)
	require.NoError(t, err)

	assert.Len(t, got, 1)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "later tiers must not run once one has produced output")
}

func TestCollectFirstFallsThroughEmptyTiers(t *testing.T) {
	first := &stubTier{name: "api"}
	second := &stubTier{name: "product_page", reviews: []models.Review{{Text: "ok"}}}

	got, err := pipeline.CollectFirst(context.Background(), first, second)
	require.NoError(t, err)

	assert.Len(t, got, 1)
	assert.Equal(t, 1, second.calls)
}

func TestCollectFirstErrorAbortsChain(t *testing.T) {
	boom := errors.New("connection reset")
	first := &stubTier{name: "api", err: boom}
	second := &stubTier{name: "product_page", reviews: []models.Review{{Text: "never seen"}}}

	_, err := pipeline.CollectFirst(context.Background(), first, second)
	require.Error(t, err)

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "api tier")
	assert.Equal(t, 0, second.calls, "a transport failure is not a fallback trigger")
}

func TestCollectFirstAllEmpty(t *testing.T) {
	got, err := pipeline.CollectFirst(context.Background(),
		&stubTier{name: "api"}, &stubTier{name: "product_page"})
	require.NoError(t, err)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
