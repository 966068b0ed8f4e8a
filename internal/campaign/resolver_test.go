package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhababook/restro-backend/internal/models"
)

func TestResolveAudienceSegments(t *testing.T) {
	customers := []models.Customer{
		testCustomer("Asha", "111", 0, 0),
		testCustomer("Bilal", "222", 1, 150),
		testCustomer("Chetan", "333", 2, 0),
		testCustomer("Deepa", "444", 7, 80),
		testCustomer("Esha", "555", 3, -20),
	}

	tests := []struct {
		segment models.AudienceSegment
		want    []string
	}{
		{models.SegmentAll, []string{"Asha", "Bilal", "Chetan", "Deepa", "Esha"}},
		{models.SegmentNew, []string{"Asha", "Bilal"}},
		{models.SegmentRepeat, []string{"Chetan", "Deepa", "Esha"}},
		{models.SegmentUdhaar, []string{"Bilal", "Deepa"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.segment), func(t *testing.T) {
			targets := ResolveAudience(customers, nil, tt.segment)
			names := make([]string, 0, len(targets))
			for _, c := range targets {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestResolveAudienceManualOverride(t *testing.T) {
	customers := []models.Customer{
		testCustomer("Asha", "111", 0, 0),
		testCustomer("Bilal", "222", 5, 0),
		testCustomer("Chetan", "333", 9, 100),
	}
	manual := []string{customers[2].ID.Hex(), customers[0].ID.Hex()}

	// The segment is ignored entirely when a manual list is present, even a
	// segment neither selected customer belongs to.
	targets := ResolveAudience(customers, manual, models.SegmentUdhaar)
	require.Len(t, targets, 2)
	assert.Equal(t, "Asha", targets[0].Name) // original directory order, not manual order
	assert.Equal(t, "Chetan", targets[1].Name)
}

func TestResolveAudienceManualDuplicates(t *testing.T) {
	customers := []models.Customer{
		testCustomer("Asha", "111", 0, 0),
		testCustomer("Bilal", "222", 5, 0),
	}
	id := customers[1].ID.Hex()

	targets := ResolveAudience(customers, []string{id, id, id}, models.SegmentAll)
	require.Len(t, targets, 1)
	assert.Equal(t, "Bilal", targets[0].Name)
}

func TestResolveAudienceEmpty(t *testing.T) {
	assert.Empty(t, ResolveAudience(nil, nil, models.SegmentAll))
	assert.Empty(t, ResolveAudience([]models.Customer{}, nil, models.SegmentNew))

	// A manual list that matches nobody is an empty selection, not an error.
	customers := []models.Customer{testCustomer("Asha", "111", 0, 0)}
	assert.Empty(t, ResolveAudience(customers, []string{"ffffffffffffffffffffffff"}, models.SegmentAll))
}
