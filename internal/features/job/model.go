package job

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ApplicationPending     = "pending"
	ApplicationShortlisted = "shortlisted"
	ApplicationRejected    = "rejected"
	ApplicationHired       = "hired"
)

type Job struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Company     string             `bson:"company" json:"company"`
	Location    string             `bson:"location" json:"location"`
	Salary      string             `bson:"salary,omitempty" json:"salary,omitempty"`
	JobType     string             `bson:"job_type" json:"jobType"`
	ApplyLink   string             `bson:"apply_link,omitempty" json:"applyLink,omitempty"`
	PostedBy    primitive.ObjectID `bson:"posted_by,omitempty" json:"postedBy,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

type JobApplication struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobID       primitive.ObjectID `bson:"job_id" json:"jobId"`
	ApplicantID primitive.ObjectID `bson:"applicant_id" json:"applicantId"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone" json:"phone"`
	ResumeURL   string             `bson:"resume_url,omitempty" json:"resumeUrl,omitempty"`
	CoverLetter string             `bson:"cover_letter,omitempty" json:"coverLetter,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
