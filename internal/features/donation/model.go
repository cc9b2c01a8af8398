package donation

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type Donation struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name          string              `bson:"name" json:"name"`
	Email         string              `bson:"email" json:"email"`
	Phone         string              `bson:"phone" json:"phone"`
	Amount        float64             `bson:"amount" json:"amount"`
	CauseID       *primitive.ObjectID `bson:"cause_id" json:"causeId"`
	CustomCause   string              `bson:"custom_cause,omitempty" json:"customCause,omitempty"`
	Message       string              `bson:"message,omitempty" json:"message,omitempty"`
	PaymentID     string              `bson:"payment_id" json:"paymentId"`
	Status        string              `bson:"status" json:"status"`
	Receipt       string              `bson:"receipt,omitempty" json:"receipt,omitempty"`
	UserID        *primitive.ObjectID `bson:"user_id,omitempty" json:"userId,omitempty"`
	AadharNumber  string              `bson:"aadhar_number,omitempty" json:"aadharNumber,omitempty"`
	PanCardNumber string              `bson:"pan_card_number,omitempty" json:"panCardNumber,omitempty"`
	CreatedAt     time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updatedAt"`
}

// WindowStats carries the change label for a trailing window, e.g. "+12.5%".
type WindowStats struct {
	Change      string `json:"change"`
	Description string `json:"description"`
}

// TotalStats is the /total response payload.
type TotalStats struct {
	TotalAmount    float64     `json:"totalAmount"`
	ThirtyDayStats WindowStats `json:"thirtyDayStats"`
	SixtyDayStats  WindowStats `json:"sixtyDayStats"`
}

// CauseBreakdown is one row of the per-cause aggregation. CauseID is nil
// for the General Fund bucket.
type CauseBreakdown struct {
	Name       string              `bson:"name" json:"name"`
	Amount     float64             `bson:"amount" json:"amount"`
	Percentage float64             `bson:"percentage" json:"percentage"`
	CauseID    *primitive.ObjectID `bson:"cause_id" json:"causeId"`
}
