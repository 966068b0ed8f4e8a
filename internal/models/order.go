package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order represents a recorded order for a customer. The back office only
// keeps the counters the marketing segments derive from; the full order
// lifecycle lives in the external order store.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerID   primitive.ObjectID `bson:"customerId" json:"customerId"`
	Amount       float64            `bson:"amount" json:"amount"`
	CreditAmount float64            `bson:"creditAmount" json:"creditAmount"` // portion left unpaid (udhaar)
	PlacedAt     time.Time          `bson:"placedAt" json:"placedAt"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
