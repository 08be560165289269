package stealth

import (
	"context"
	"math/rand/v2"
	"time"
)

// DelayProfile defines a named politeness delay configuration.
type DelayProfile string

const (
	ProfileCautious   DelayProfile = "cautious"
	ProfileNormal     DelayProfile = "normal"
	ProfileAggressive DelayProfile = "aggressive"
)

// HumanDelay produces the jittered pause applied after each paginated
// fetch. It is a throttle, not a correctness mechanism: collectors accept
// a nil *HumanDelay and skip the pause entirely (tests do this).
type HumanDelay struct {
	MinDelay time.Duration
	MaxDelay time.Duration
}

// NewHumanDelay creates a delay generator for the given profile.
func NewHumanDelay(profile DelayProfile) *HumanDelay {
	switch profile {
	case ProfileCautious:
		return &HumanDelay{MinDelay: 1 * time.Second, MaxDelay: 3 * time.Second}
	case ProfileAggressive:
		return &HumanDelay{MinDelay: 50 * time.Millisecond, MaxDelay: 150 * time.Millisecond}
	default: // normal
		return &HumanDelay{MinDelay: 150 * time.Millisecond, MaxDelay: 400 * time.Millisecond}
	}
}

// Wait sleeps for a random duration within the configured range. A nil
// receiver returns immediately.
func (h *HumanDelay) Wait(ctx context.Context) error {
	if h == nil {
		return nil
	}
	d := h.MinDelay
	if h.MaxDelay > h.MinDelay {
		d += time.Duration(rand.Int64N(int64(h.MaxDelay - h.MinDelay)))
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
