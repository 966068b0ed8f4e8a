package campaign

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhababook/restro-backend/internal/models"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testEngine(rng RandomSource) *Engine {
	return NewEngine(func() time.Time { return fixedNow }, rng, 0.5)
}

func testForm() models.CampaignForm {
	return models.CampaignForm{
		Name:     "Weekend Thali Offer",
		Message:  "Flat 20% off on the weekend thali. Show this message at the counter.",
		Template: 2,
		Audience: models.SegmentAll,
	}
}

func TestBuildImmediateZeroRecipients(t *testing.T) {
	engine := testEngine(NewMathRandSource(1))

	send, err := engine.BuildImmediate(testForm(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, models.Metrics{}, send.Metrics)
	assert.Empty(t, send.Recipients)
	assert.Equal(t, models.CampaignStatusCompleted, send.Status)
	assert.Zero(t, send.Cost)
	require.NotNil(t, send.SentAt)
	assert.True(t, send.SentAt.Equal(fixedNow))
	assert.Nil(t, send.ScheduledFor)
}

func TestBuildImmediateFinalizesSend(t *testing.T) {
	customers := []models.Customer{
		testCustomer("Asha", "111", 0, 0),
		testCustomer("Bilal", "2 2 2", 4, 0),
		testCustomer("Chetan", "333", 9, 100),
	}
	engine := testEngine(NewMathRandSource(11))

	send, err := engine.BuildImmediate(testForm(), customers, nil)
	require.NoError(t, err)
	require.Len(t, send.Recipients, 3)

	// Finalized: nobody is left pending on the immediate path.
	counts := countStatuses(send.Recipients)
	assert.Zero(t, counts[models.RecipientStatusPending])
	assert.Equal(t, send.Metrics.Failed, counts[models.RecipientStatusFailed])
	assert.Equal(t, send.Metrics.Delivered, counts[models.RecipientStatusDelivered]+counts[models.RecipientStatusClicked])

	if send.Metrics.Failed > 0 {
		assert.Equal(t, models.CampaignStatusFailed, send.Status)
	} else {
		assert.Equal(t, models.CampaignStatusCompleted, send.Status)
	}

	assert.Equal(t, 1.5, send.Cost) // 3 recipients x 0.5 unit price
	assert.Equal(t, "222", send.Recipients[1].Phone)
}

func TestBuildImmediateStatusOnFailure(t *testing.T) {
	customers := []models.Customer{
		testCustomer("Asha", "111", 0, 0),
		testCustomer("Bilal", "222", 4, 0),
	}
	// Force one failure: Intn(2) -> 1, no clicks.
	rng := &scriptedRandom{ints: []int{1}, floats: []float64{0, 0}}

	send, err := testEngine(rng).BuildImmediate(testForm(), customers, nil)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusFailed, send.Status)
	assert.Equal(t, 1, send.Metrics.Failed)
}

func TestBuildImmediateNoDuplicateCustomers(t *testing.T) {
	customers := []models.Customer{
		testCustomer("Asha", "111", 0, 0),
		testCustomer("Bilal", "222", 4, 0),
		testCustomer("Chetan", "333", 9, 100),
	}
	manual := []string{customers[0].ID.Hex(), customers[0].ID.Hex(), customers[2].ID.Hex()}

	send, err := testEngine(NewMathRandSource(13)).BuildImmediate(testForm(), customers, manual)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, r := range send.Recipients {
		require.False(t, seen[r.CustomerID], "customer %s appears twice", r.CustomerID)
		seen[r.CustomerID] = true
	}
	assert.Len(t, send.Recipients, 2)
}

// Manual selection of 3 named customers among 10: resolution ignores the
// segment but the audience field still records it as metadata.
func TestBuildImmediateManualSelection(t *testing.T) {
	customers := make([]models.Customer, 10)
	for i := range customers {
		customers[i] = testCustomer("Guest", "900", i, 0)
	}
	manual := []string{customers[1].ID.Hex(), customers[4].ID.Hex(), customers[8].ID.Hex()}

	form := testForm()
	form.Audience = models.SegmentUdhaar // matches nobody

	send, err := testEngine(NewMathRandSource(17)).BuildImmediate(form, customers, manual)
	require.NoError(t, err)
	assert.Len(t, send.Recipients, 3)
	assert.Equal(t, models.SegmentUdhaar, send.Audience)
	assert.Equal(t, manual, send.SelectedContacts)
}

func TestBuildScheduled(t *testing.T) {
	customers := []models.Customer{
		testCustomer("Asha", "111", 0, 0),
		testCustomer("Bilal", "222", 4, 0),
	}
	scheduledFor := fixedNow.Add(48 * time.Hour)

	send, err := testEngine(NewMathRandSource(19)).BuildScheduled(testForm(), customers, nil, scheduledFor)
	require.NoError(t, err)

	assert.Nil(t, send.SentAt)
	require.NotNil(t, send.ScheduledFor)
	assert.True(t, send.ScheduledFor.Equal(scheduledFor))
	assert.Equal(t, models.CampaignStatusPending, send.Status)

	assert.Equal(t, models.Metrics{Sent: 2}, send.Metrics)
	for _, r := range send.Recipients {
		assert.Equal(t, models.RecipientStatusPending, r.Status)
		assert.Nil(t, r.ClickedAt)
	}
	assert.Equal(t, 1.0, send.Cost) // reserved, not yet incurred
}

func TestBuildValidation(t *testing.T) {
	customers := []models.Customer{testCustomer("Asha", "111", 0, 0)}
	engine := testEngine(NewMathRandSource(23))

	tests := []struct {
		name    string
		mutate  func(*models.CampaignForm)
		wantErr error
	}{
		{"empty name", func(f *models.CampaignForm) { f.Name = "" }, ErrEmptyName},
		{"name too long", func(f *models.CampaignForm) { f.Name = strings.Repeat("x", 101) }, ErrNameTooLong},
		{"multibyte name at limit", func(f *models.CampaignForm) { f.Name = strings.Repeat("ढ", 100) }, nil},
		{"multibyte name too long", func(f *models.CampaignForm) { f.Name = strings.Repeat("ढ", 101) }, ErrNameTooLong},
		{"empty message", func(f *models.CampaignForm) { f.Message = "" }, ErrEmptyMessage},
		{"message too long", func(f *models.CampaignForm) { f.Message = strings.Repeat("x", 501) }, ErrMessageTooLong},
		{"multibyte message at limit", func(f *models.CampaignForm) { f.Message = strings.Repeat("म", 500) }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := testForm()
			tt.mutate(&form)
			_, err := engine.BuildImmediate(form, customers, nil)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			_, err = engine.BuildScheduled(form, customers, nil, fixedNow.Add(time.Hour))
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	_, err := engine.BuildScheduled(testForm(), customers, nil, time.Time{})
	assert.ErrorIs(t, err, ErrMissingScheduleDate)

	_, err = engine.BuildScheduled(testForm(), customers, nil, fixedNow.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrInvalidScheduleTime)
}
