package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhababook/restro-backend/internal/models"
)

func TestMaterializeRecipients(t *testing.T) {
	targets := []models.Customer{
		testCustomer("Asha", " +91 98765 43210 ", 0, 0),
		testCustomer("Bilal", "98765\t11111", 3, 50),
	}

	recipients := MaterializeRecipients(targets)
	require.Len(t, recipients, 2)

	assert.Equal(t, targets[0].ID.Hex(), recipients[0].CustomerID)
	assert.Equal(t, "Asha", recipients[0].Name)
	assert.Equal(t, "+919876543210", recipients[0].Phone)
	assert.Equal(t, "9876511111", recipients[1].Phone)

	for _, r := range recipients {
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, models.RecipientStatusPending, r.Status)
		assert.Nil(t, r.ClickedAt)
	}
}

func TestMaterializeRecipientsIdempotent(t *testing.T) {
	targets := []models.Customer{
		testCustomer("Asha", "1 2 3", 0, 0),
		testCustomer("Bilal", "456", 3, 50),
	}

	first := MaterializeRecipients(targets)
	second := MaterializeRecipients(targets)
	require.Len(t, second, len(first))

	// Equal up to identity: only the minted IDs may differ between calls.
	for i := range first {
		assert.NotEqual(t, first[i].ID, second[i].ID)
		first[i].ID, second[i].ID = "", ""
		assert.Equal(t, first[i], second[i])
	}
}

func TestMaterializeRecipientsEmpty(t *testing.T) {
	assert.Empty(t, MaterializeRecipients(nil))
}
