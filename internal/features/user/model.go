package user

import (
	"time"

	"go-ngo/internal/rbac"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	AccountTypeIndividual   = "individual"
	AccountTypeOrganization = "organization"
)

// JobPostLimit caps the job postings an organization account may create
// per calendar year.
const JobPostLimit = 25

// User is the principal record. Permissions is a snapshot derived from
// the role on creation and on every role change; it is only ever set
// independently through the privileged permissions override endpoint.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Email            string             `bson:"email" json:"email"`
	Password         string             `bson:"password" json:"-"`
	AccountType      string             `bson:"account_type" json:"accountType"`
	Role             string             `bson:"role" json:"role"`
	Status           string             `bson:"status" json:"status"`
	Permissions      rbac.Matrix        `bson:"permissions" json:"permissions"`
	Designation      string             `bson:"designation,omitempty" json:"designation,omitempty"`
	Level            int                `bson:"level" json:"level"`
	Geo              rbac.Geo           `bson:"geo" json:"geo"`
	AssignedRegions  []string           `bson:"assigned_regions" json:"assignedRegions"`
	JobPostsThisYear int                `bson:"job_posts_this_year" json:"jobPostsThisYear,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Principal converts the record into the shape the access-control core
// evaluates.
func (u *User) Principal() *rbac.Principal {
	return &rbac.Principal{
		ID:          u.ID,
		Role:        u.Role,
		Status:      u.Status,
		Permissions: u.Permissions,
		Geo:         u.Geo,
	}
}
