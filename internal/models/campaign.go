package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign send statuses
const (
	CampaignStatusPending   = "pending"
	CampaignStatusSending   = "sending" // reserved for external orchestration
	CampaignStatusCompleted = "completed"
	CampaignStatusFailed    = "failed"
)

// Recipient statuses
const (
	RecipientStatusPending   = "pending"
	RecipientStatusDelivered = "delivered"
	RecipientStatusFailed    = "failed"
	RecipientStatusClicked   = "clicked"
)

// Metrics holds the aggregate delivery/engagement counters for one send.
// Invariants: delivered+failed <= sent, clicks <= delivered, engaged <= clicks.
type Metrics struct {
	Sent      int `bson:"sent" json:"sent"`
	Delivered int `bson:"delivered" json:"delivered"`
	Failed    int `bson:"failed" json:"failed"`
	Clicks    int `bson:"clicks" json:"clicks"`
	Engaged   int `bson:"engaged" json:"engaged"`
}

// Recipient tracks the simulated delivery outcome for one customer in one
// campaign send. Created once per send attempt and never mutated after
// allocation finishes; a new send produces new recipient records.
type Recipient struct {
	ID         string     `bson:"id" json:"id"`
	CustomerID string     `bson:"customerId" json:"customerId"`
	Name       string     `bson:"name" json:"name"`
	Phone      string     `bson:"phone" json:"phone"` // whitespace stripped
	Status     string     `bson:"status" json:"status"`
	ClickedAt  *time.Time `bson:"clickedAt,omitempty" json:"clickedAt,omitempty"`
}

// CampaignSend is the persisted aggregate root for a marketing campaign send
type CampaignSend struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	Message          string             `bson:"message" json:"message"`
	Template         int                `bson:"template" json:"template"` // presentation variant 1..3
	ImageURL         string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	ProductIDs       []string           `bson:"productIds,omitempty" json:"productIds,omitempty"`
	Audience         AudienceSegment    `bson:"audience" json:"audience"` // informational even when manual override applied
	SelectedContacts []string           `bson:"selectedContacts,omitempty" json:"selectedContacts,omitempty"`
	SentAt           *time.Time         `bson:"sentAt,omitempty" json:"sentAt,omitempty"`
	ScheduledFor     *time.Time         `bson:"scheduledFor,omitempty" json:"scheduledFor,omitempty"`
	Metrics          Metrics            `bson:"metrics" json:"metrics"`
	Recipients       []Recipient        `bson:"recipients" json:"recipients"`
	Status           string             `bson:"status" json:"status"`
	Cost             float64            `bson:"cost" json:"cost"` // recipients x unit price
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CampaignForm is the user-supplied part of a campaign send request
type CampaignForm struct {
	Name             string          `json:"name" binding:"required"`
	Message          string          `json:"message" binding:"required"`
	Template         int             `json:"template"`
	ImageURL         string          `json:"imageUrl"`
	ProductIDs       []string        `json:"productIds"`
	Audience         AudienceSegment `json:"audience"`
	SelectedContacts []string        `json:"selectedContacts"`
}
