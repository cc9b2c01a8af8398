package cause

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Cause struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Category    string             `bson:"category" json:"category"`
	Goal        float64            `bson:"goal" json:"goal"`
	Raised      float64            `bson:"raised" json:"raised"`
	IsActive    bool               `bson:"is_active" json:"isActive"`
	StartDate   time.Time          `bson:"start_date" json:"startDate"`
	EndDate     *time.Time         `bson:"end_date,omitempty" json:"endDate,omitempty"`
	// Progress is derived from raised/goal on the way out; it is never
	// stored.
	Progress  float64   `bson:"-" json:"progress"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// FillProgress computes the capped completion percentage.
func (c *Cause) FillProgress() {
	if c.Goal <= 0 {
		return
	}
	p := c.Raised / c.Goal * 100
	if p > 100 {
		p = 100
	}
	c.Progress = p
}
