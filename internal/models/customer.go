package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer represents a customer in the restaurant's directory
type Customer struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Phone         string             `bson:"phone" json:"phone"`
	TotalOrders   int                `bson:"totalOrders" json:"totalOrders"`
	CreditBalance float64            `bson:"creditBalance" json:"creditBalance"` // >0 means the customer owes money (udhaar)
	OptOut        bool               `bson:"optOut" json:"optOut"`
	OptOutDate    time.Time          `bson:"optOutDate,omitempty" json:"optOutDate,omitempty"`
	LastOrderAt   time.Time          `bson:"lastOrderAt,omitempty" json:"lastOrderAt,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AudienceSegment is a named customer filter predicate
type AudienceSegment string

const (
	SegmentAll    AudienceSegment = "all"
	SegmentNew    AudienceSegment = "new"    // at most one order so far
	SegmentRepeat AudienceSegment = "repeat" // two or more orders
	SegmentUdhaar AudienceSegment = "udhaar" // positive outstanding credit balance
)

// Valid reports whether s is one of the known segments
func (s AudienceSegment) Valid() bool {
	switch s {
	case SegmentAll, SegmentNew, SegmentRepeat, SegmentUdhaar:
		return true
	}
	return false
}

// Matches reports whether the customer belongs to the segment.
// Segments are derived views, recomputed on every resolution.
func (s AudienceSegment) Matches(c *Customer) bool {
	switch s {
	case SegmentNew:
		return c.TotalOrders <= 1
	case SegmentRepeat:
		return c.TotalOrders >= 2
	case SegmentUdhaar:
		return c.CreditBalance > 0
	default: // SegmentAll
		return true
	}
}
