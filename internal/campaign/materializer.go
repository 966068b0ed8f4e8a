package campaign

import (
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/dhababook/restro-backend/internal/models"
)

// MaterializeRecipients maps resolved customers into recipient records with
// normalized contact data and an initial pending state, one per customer, in
// the same order. Apart from the freshly minted recipient IDs the output is
// a pure function of the input.
func MaterializeRecipients(targets []models.Customer) []models.Recipient {
	recipients := make([]models.Recipient, 0, len(targets))
	for _, c := range targets {
		recipients = append(recipients, models.Recipient{
			ID:         uuid.NewString(),
			CustomerID: c.ID.Hex(),
			Name:       c.Name,
			Phone:      normalizePhone(c.Phone),
			Status:     models.RecipientStatusPending,
		})
	}
	return recipients
}

// normalizePhone strips every whitespace character from a free-form phone
// number, e.g. "+91 98765 43210" -> "+919876543210".
func normalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
}
