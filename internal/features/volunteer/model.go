package volunteer

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusPending  = "Pending"

	EventCompleted = "Completed"
	EventUpcoming  = "Upcoming"
)

// VolunteerEvent is an embedded participation record; Completed entries
// contribute their hours to the volunteer's total.
type VolunteerEvent struct {
	EventName string    `bson:"event_name" json:"eventName"`
	Location  string    `bson:"location,omitempty" json:"location,omitempty"`
	Date      time.Time `bson:"date" json:"date"`
	Hours     float64   `bson:"hours" json:"hours"`
	Status    string    `bson:"status" json:"status"`
}

type Volunteer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Location  string             `bson:"location" json:"location"`
	Interests []string           `bson:"interests,omitempty" json:"interests,omitempty"`
	Status    string             `bson:"status" json:"status"`
	JoinDate  time.Time          `bson:"join_date" json:"joinDate"`
	Hours     float64            `bson:"hours" json:"hours"`
	Skills    string             `bson:"skills,omitempty" json:"skills,omitempty"`
	Events    []VolunteerEvent   `bson:"events,omitempty" json:"events,omitempty"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
