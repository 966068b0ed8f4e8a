package campaign

import (
	"github.com/dhababook/restro-backend/internal/models"
)

// ResolveAudience turns the customer directory and an audience selector into
// the concrete ordered list of target customers.
//
// A non-empty manualIDs list overrides the segment entirely; the segment
// value is retained on the campaign record for display only and is not
// reapplied on top of the manual selection. Duplicate IDs in manualIDs select
// a customer once. An empty directory or an empty effective selection yields
// an empty list, not an error.
func ResolveAudience(customers []models.Customer, manualIDs []string, segment models.AudienceSegment) []models.Customer {
	targets := make([]models.Customer, 0, len(customers))

	if len(manualIDs) > 0 {
		selected := make(map[string]bool, len(manualIDs))
		for _, id := range manualIDs {
			selected[id] = true
		}
		for _, c := range customers {
			if selected[c.ID.Hex()] {
				targets = append(targets, c)
			}
		}
		return targets
	}

	for i := range customers {
		if segment.Matches(&customers[i]) {
			targets = append(targets, customers[i])
		}
	}
	return targets
}
