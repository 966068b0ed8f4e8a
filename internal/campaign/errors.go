package campaign

import "errors"

// Validation errors are raised before any engine work begins and never
// partial-apply; the caller can re-prompt and retry.
var (
	ErrEmptyName           = errors.New("campaign name must not be empty")
	ErrNameTooLong         = errors.New("campaign name exceeds 100 characters")
	ErrEmptyMessage        = errors.New("campaign message must not be empty")
	ErrMessageTooLong      = errors.New("campaign message exceeds 500 characters")
	ErrMissingScheduleDate = errors.New("schedule date is required")
	ErrInvalidScheduleTime = errors.New("schedule time must be in the future")
)

// ErrAllocationOverflow indicates a synthesizer/allocator contract breach:
// the requested failed+delivered count exceeds the recipient count. The
// allocator clamps defensively but reports the breach so it is never
// mistaken for a valid outcome.
var ErrAllocationOverflow = errors.New("allocation overflow: failed+delivered exceeds recipient count")
