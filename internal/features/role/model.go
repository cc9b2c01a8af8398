package role

import (
	"time"

	"go-ngo/internal/rbac"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a named permission matrix over the closed module set. Names are
// unique. Modules left out of the matrix deny all four actions.
type Role struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Permissions rbac.Matrix        `bson:"permissions" json:"permissions"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
