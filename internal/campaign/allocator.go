package campaign

import (
	"fmt"
	"time"

	"github.com/dhababook/restro-backend/internal/models"
)

// AllocateStatuses distributes the aggregate counters across individual
// recipients and returns a new slice; the input is not mutated.
//
// Exactly metrics.Failed recipients end up failed, exactly metrics.Delivered
// other recipients end up in the delivered bucket, and the first
// min(metrics.Clicks, metrics.Delivered) of that bucket are upgraded to
// clicked with ClickedAt set to now. Recipients not covered by the counters
// stay pending. Bucket membership comes from a uniform permutation of
// indices so the outcome never correlates with list position.
//
// When failed+delivered exceeds the recipient count the allocation is
// clamped to the available recipients and ErrAllocationOverflow is returned
// alongside the clamped result, so the contract breach surfaces instead of
// hiding behind a silent truncation.
func AllocateStatuses(recipients []models.Recipient, metrics models.Metrics, now time.Time, rng RandomSource) ([]models.Recipient, error) {
	out := make([]models.Recipient, len(recipients))
	copy(out, recipients)

	if metrics.Sent == 0 {
		return out, nil
	}

	var err error
	failed := metrics.Failed
	delivered := metrics.Delivered
	if failed+delivered > len(out) {
		err = fmt.Errorf("%w: failed=%d delivered=%d recipients=%d",
			ErrAllocationOverflow, failed, delivered, len(out))
		if failed > len(out) {
			failed = len(out)
		}
		delivered = len(out) - failed
	}

	clicks := metrics.Clicks
	if clicks > delivered {
		clicks = delivered
	}

	perm := rng.Perm(len(out))
	for i := 0; i < failed; i++ {
		out[perm[i]].Status = models.RecipientStatusFailed
	}
	for i := 0; i < delivered; i++ {
		idx := perm[failed+i]
		if i < clicks {
			clickedAt := now
			out[idx].Status = models.RecipientStatusClicked
			out[idx].ClickedAt = &clickedAt
		} else {
			out[idx].Status = models.RecipientStatusDelivered
		}
	}

	return out, err
}
