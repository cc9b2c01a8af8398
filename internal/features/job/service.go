package job

import (
	"context"
	"errors"

	"go-ngo/internal/common/apperr"
	"go-ngo/internal/features/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type JobService interface {
	// CreatePosting consumes one unit of the poster's yearly quota before
	// inserting the job; exhausted quota is Forbidden.
	CreatePosting(ctx context.Context, job *Job, posterID primitive.ObjectID) error
	GetByID(ctx context.Context, id string) (*Job, error)
	ListAll(ctx context.Context) ([]Job, error)
	Update(ctx context.Context, id string, set bson.M) (*Job, error)
	Delete(ctx context.Context, id string) error

	Apply(ctx context.Context, application *JobApplication) error
	MyApplications(ctx context.Context, applicantID primitive.ObjectID) ([]JobApplication, error)
	ApplicantsForJob(ctx context.Context, jobID string) ([]JobApplication, error)
	UpdateApplicationStatus(ctx context.Context, applicationID, status string) (*JobApplication, error)
	DeleteApplication(ctx context.Context, id string) error
}

type JobServiceImpl struct {
	Repo     JobRepository
	UserRepo user.UserRepository
}

func NewJobService(repo JobRepository, userRepo user.UserRepository) JobService {
	return &JobServiceImpl{Repo: repo, UserRepo: userRepo}
}

func (s *JobServiceImpl) CreatePosting(ctx context.Context, job *Job, posterID primitive.ObjectID) error {
	poster, err := s.UserRepo.FindByID(ctx, posterID.Hex())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.Unauthenticated("User not found")
		}
		return err
	}

	// Organization quotas only; individual accounts are not rate limited.
	if poster.AccountType == user.AccountTypeOrganization {
		ok, err := s.UserRepo.IncrementJobPostsIfUnder(ctx, poster.ID.Hex(), user.JobPostLimit)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Forbidden("Yearly job posting limit reached")
		}
	}

	job.PostedBy = poster.ID
	if job.JobType == "" {
		job.JobType = "Full-time"
	}
	return s.Repo.Create(ctx, job)
}

func (s *JobServiceImpl) GetByID(ctx context.Context, id string) (*Job, error) {
	job, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Job not found")
	}
	return job, err
}

func (s *JobServiceImpl) ListAll(ctx context.Context) ([]Job, error) {
	return s.Repo.List(ctx, bson.M{})
}

func (s *JobServiceImpl) Update(ctx context.Context, id string, set bson.M) (*Job, error) {
	job, err := s.Repo.Update(ctx, id, set)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Job not found")
	}
	return job, err
}

func (s *JobServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound("Job not found")
	}
	return err
}

func (s *JobServiceImpl) Apply(ctx context.Context, application *JobApplication) error {
	if _, err := s.Repo.FindByID(ctx, application.JobID.Hex()); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Job not found")
		}
		return err
	}

	application.Status = ApplicationPending
	err := s.Repo.CreateApplication(ctx, application)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("You have already applied for this job")
	}
	return err
}

func (s *JobServiceImpl) MyApplications(ctx context.Context, applicantID primitive.ObjectID) ([]JobApplication, error) {
	return s.Repo.ListApplications(ctx, bson.M{"applicant_id": applicantID})
}

func (s *JobServiceImpl) ApplicantsForJob(ctx context.Context, jobID string) ([]JobApplication, error) {
	objectID, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, apperr.BadRequest("Invalid job id")
	}
	return s.Repo.ListApplications(ctx, bson.M{"job_id": objectID})
}

func (s *JobServiceImpl) UpdateApplicationStatus(ctx context.Context, applicationID, status string) (*JobApplication, error) {
	application, err := s.Repo.UpdateApplication(ctx, applicationID, bson.M{"status": status})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Application not found")
	}
	return application, err
}

func (s *JobServiceImpl) DeleteApplication(ctx context.Context, id string) error {
	err := s.Repo.DeleteApplication(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound("Application not found")
	}
	return err
}
