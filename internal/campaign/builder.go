package campaign

import (
	"time"
	"unicode/utf8"

	"github.com/dhababook/restro-backend/internal/models"
)

// Field length limits, in characters, enforced before any engine work begins
const (
	maxNameLength    = 100
	maxMessageLength = 500
)

// Engine assembles campaign sends. The clock, the random source and the
// per-recipient unit price are injected so builds are deterministic under
// test. Every build is an independent, stateless, in-memory transformation.
type Engine struct {
	now       func() time.Time
	rng       RandomSource
	unitPrice float64
}

// NewEngine creates a new Engine
func NewEngine(now func() time.Time, rng RandomSource, unitPrice float64) *Engine {
	return &Engine{
		now:       now,
		rng:       rng,
		unitPrice: unitPrice,
	}
}

// BuildImmediate resolves the audience, materializes recipients, synthesizes
// aggregate metrics and allocates them down to individual recipients. The
// resulting send is final: completed when nothing failed, failed otherwise.
func (e *Engine) BuildImmediate(form models.CampaignForm, customers []models.Customer, manualIDs []string) (*models.CampaignSend, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}

	targets := ResolveAudience(customers, manualIDs, form.Audience)
	recipients := MaterializeRecipients(targets)
	metrics := SynthesizeMetrics(len(recipients), e.rng)

	now := e.now()
	allocated, err := AllocateStatuses(recipients, metrics, now, e.rng)
	if err != nil {
		return nil, err
	}

	status := models.CampaignStatusCompleted
	if metrics.Failed > 0 {
		status = models.CampaignStatusFailed
	}

	send := e.assemble(form, manualIDs, allocated, metrics, status, now)
	send.SentAt = &now
	return send, nil
}

// BuildScheduled resolves and materializes only; metrics synthesis and
// status allocation are deferred to the scheduled execution trigger. All
// recipients start pending and the cost is reserved, not yet incurred.
func (e *Engine) BuildScheduled(form models.CampaignForm, customers []models.Customer, manualIDs []string, scheduledFor time.Time) (*models.CampaignSend, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	now := e.now()
	if scheduledFor.IsZero() {
		return nil, ErrMissingScheduleDate
	}
	if !scheduledFor.After(now) {
		return nil, ErrInvalidScheduleTime
	}

	targets := ResolveAudience(customers, manualIDs, form.Audience)
	recipients := MaterializeRecipients(targets)
	metrics := models.Metrics{Sent: len(recipients)}

	send := e.assemble(form, manualIDs, recipients, metrics, models.CampaignStatusPending, now)
	send.ScheduledFor = &scheduledFor
	return send, nil
}

func (e *Engine) assemble(form models.CampaignForm, manualIDs []string, recipients []models.Recipient, metrics models.Metrics, status string, now time.Time) *models.CampaignSend {
	template := form.Template
	if template < 1 || template > 3 {
		template = 1
	}
	audience := form.Audience
	if !audience.Valid() {
		audience = models.SegmentAll
	}
	return &models.CampaignSend{
		Name:             form.Name,
		Message:          form.Message,
		Template:         template,
		ImageURL:         form.ImageURL,
		ProductIDs:       form.ProductIDs,
		Audience:         audience,
		SelectedContacts: manualIDs,
		Metrics:          metrics,
		Recipients:       recipients,
		Status:           status,
		Cost:             float64(len(recipients)) * e.unitPrice,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func validateForm(form models.CampaignForm) error {
	switch {
	case form.Name == "":
		return ErrEmptyName
	case utf8.RuneCountInString(form.Name) > maxNameLength:
		return ErrNameTooLong
	case form.Message == "":
		return ErrEmptyMessage
	case utf8.RuneCountInString(form.Message) > maxMessageLength:
		return ErrMessageTooLong
	}
	return nil
}
