package campaign

import (
	"github.com/dhababook/restro-backend/internal/models"
)

// Engagement ratio bounds observed from real delivery providers: failures
// are a small constant tail rather than a percentage, click-through lands in
// [0.25, 0.70) of delivered and engagement in [0.50, 0.80) of clicks.
const (
	maxSimulatedFailures = 2
	clickRatioMin        = 0.25
	clickRatioSpan       = 0.45
	engagedRatioMin      = 0.50
	engagedRatioSpan     = 0.30
)

// SynthesizeMetrics produces aggregate delivery counters for a send of n
// recipients. The exact values are randomized; the invariants
// failed <= min(2, n), delivered+failed <= sent, clicks <= delivered and
// engaged <= clicks hold on every call.
func SynthesizeMetrics(n int, rng RandomSource) models.Metrics {
	if n <= 0 {
		return models.Metrics{}
	}

	failedBound := maxSimulatedFailures
	if n < failedBound {
		failedBound = n
	}
	failed := rng.Intn(failedBound)

	delivered := n - failed
	if delivered < 0 {
		delivered = 0
	}

	m := models.Metrics{
		Sent:      n,
		Failed:    failed,
		Delivered: delivered,
	}

	if delivered > 0 {
		m.Clicks = int(float64(delivered) * (clickRatioMin + rng.Float64()*clickRatioSpan))
		if m.Clicks > delivered {
			m.Clicks = delivered
		}
	}
	if m.Clicks > 0 {
		m.Engaged = int(float64(m.Clicks) * (engagedRatioMin + rng.Float64()*engagedRatioSpan))
		if m.Engaged > m.Clicks {
			m.Engaged = m.Clicks
		}
	}
	return m
}
