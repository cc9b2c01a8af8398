package job

import (
	"context"
	"sync"
	"testing"

	"go-ngo/internal/common/apperr"
	"go-ngo/internal/features/user"
	"go-ngo/internal/rbac"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// quotaUserRepo implements user.UserRepository with the same check-then-increment
// atomicity the conditional mongo update provides.
type quotaUserRepo struct {
	mu    sync.Mutex
	users map[string]*user.User
}

func newQuotaUserRepo(users ...*user.User) *quotaUserRepo {
	r := &quotaUserRepo{users: map[string]*user.User{}}
	for _, u := range users {
		r.users[u.ID.Hex()] = u
	}
	return r
}

func (r *quotaUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (r *quotaUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *u
	return &clone, nil
}

func (r *quotaUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, mongo.ErrNoDocuments
}

func (r *quotaUserRepo) List(ctx context.Context, accountType string) ([]user.User, error) {
	return nil, nil
}

func (r *quotaUserRepo) ListByRegion(ctx context.Context, region string) ([]user.User, error) {
	return nil, nil
}

func (r *quotaUserRepo) Update(ctx context.Context, id string, set bson.M) (*user.User, error) {
	return nil, mongo.ErrNoDocuments
}

func (r *quotaUserRepo) Delete(ctx context.Context, id string) error { return mongo.ErrNoDocuments }

func (r *quotaUserRepo) IncrementJobPostsIfUnder(ctx context.Context, id string, limit int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return false, mongo.ErrNoDocuments
	}
	if u.JobPostsThisYear >= limit {
		return false, nil
	}
	u.JobPostsThisYear++
	return true, nil
}

func (r *quotaUserRepo) ResetJobPostCounters(ctx context.Context) (int64, error) { return 0, nil }

func (r *quotaUserRepo) ResolvePrincipal(ctx context.Context, id string) (*rbac.Principal, error) {
	return nil, mongo.ErrNoDocuments
}

func (r *quotaUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (r *quotaUserRepo) count(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id].JobPostsThisYear
}

// memJobRepo keeps jobs and applications in maps; applications enforce the
// one-per-applicant-per-job unique index.
type memJobRepo struct {
	mu           sync.Mutex
	jobs         map[string]*Job
	applications map[string]*JobApplication
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: map[string]*Job{}, applications: map[string]*JobApplication{}}
}

func (r *memJobRepo) Create(ctx context.Context, job *Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID.IsZero() {
		job.ID = primitive.NewObjectID()
	}
	clone := *job
	r.jobs[job.ID.Hex()] = &clone
	return nil
}

func (r *memJobRepo) FindByID(ctx context.Context, id string) (*Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *job
	return &clone, nil
}

func (r *memJobRepo) List(ctx context.Context, filter bson.M) ([]Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Job
	for _, job := range r.jobs {
		out = append(out, *job)
	}
	return out, nil
}

func (r *memJobRepo) Update(ctx context.Context, id string, set bson.M) (*Job, error) {
	return nil, mongo.ErrNoDocuments
}

func (r *memJobRepo) Delete(ctx context.Context, id string) error { return mongo.ErrNoDocuments }

func (r *memJobRepo) CreateApplication(ctx context.Context, application *JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.applications {
		if existing.JobID == application.JobID && existing.ApplicantID == application.ApplicantID {
			return mongo.CommandError{Code: 11000}
		}
	}
	if application.ID.IsZero() {
		application.ID = primitive.NewObjectID()
	}
	clone := *application
	r.applications[application.ID.Hex()] = &clone
	return nil
}

func (r *memJobRepo) FindApplicationByID(ctx context.Context, id string) (*JobApplication, error) {
	return nil, mongo.ErrNoDocuments
}

func (r *memJobRepo) ListApplications(ctx context.Context, filter bson.M) ([]JobApplication, error) {
	return nil, nil
}

func (r *memJobRepo) UpdateApplication(ctx context.Context, id string, set bson.M) (*JobApplication, error) {
	return nil, mongo.ErrNoDocuments
}

func (r *memJobRepo) DeleteApplication(ctx context.Context, id string) error {
	return mongo.ErrNoDocuments
}

func (r *memJobRepo) EnsureIndexes(ctx context.Context) error { return nil }

func orgUser(posted int) *user.User {
	return &user.User{
		ID:               primitive.NewObjectID(),
		AccountType:      user.AccountTypeOrganization,
		JobPostsThisYear: posted,
	}
}

func TestCreatePostingConsumesQuota(t *testing.T) {
	poster := orgUser(0)
	users := newQuotaUserRepo(poster)
	svc := NewJobService(newMemJobRepo(), users)

	require.NoError(t, svc.CreatePosting(context.Background(), &Job{Title: "Field Coordinator"}, poster.ID))
	assert.Equal(t, 1, users.count(poster.ID.Hex()))
}

func TestCreatePostingQuotaExhausted(t *testing.T) {
	poster := orgUser(user.JobPostLimit)
	svc := NewJobService(newMemJobRepo(), newQuotaUserRepo(poster))

	err := svc.CreatePosting(context.Background(), &Job{Title: "Driver"}, poster.ID)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusForbidden, appErr.Code)
}

func TestCreatePostingIndividualBypassesQuota(t *testing.T) {
	poster := &user.User{
		ID:               primitive.NewObjectID(),
		AccountType:      user.AccountTypeIndividual,
		JobPostsThisYear: user.JobPostLimit,
	}
	users := newQuotaUserRepo(poster)
	svc := NewJobService(newMemJobRepo(), users)

	require.NoError(t, svc.CreatePosting(context.Background(), &Job{Title: "Volunteer Lead"}, poster.ID))
	assert.Equal(t, user.JobPostLimit, users.count(poster.ID.Hex()))
}

func TestCreatePostingConcurrentIncrements(t *testing.T) {
	poster := orgUser(0)
	users := newQuotaUserRepo(poster)
	svc := NewJobService(newMemJobRepo(), users)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.CreatePosting(context.Background(), &Job{Title: "Tutor"}, poster.ID))
		}()
	}
	wg.Wait()

	// Each posting lands exactly one increment.
	assert.Equal(t, 2, users.count(poster.ID.Hex()))
}

func TestCreatePostingDefaultsJobType(t *testing.T) {
	poster := orgUser(0)
	repo := newMemJobRepo()
	svc := NewJobService(repo, newQuotaUserRepo(poster))

	job := &Job{Title: "Accountant"}
	require.NoError(t, svc.CreatePosting(context.Background(), job, poster.ID))
	assert.Equal(t, "Full-time", job.JobType)
	assert.Equal(t, poster.ID, job.PostedBy)
}

func TestApplyDuplicateConflicts(t *testing.T) {
	poster := orgUser(0)
	repo := newMemJobRepo()
	svc := NewJobService(repo, newQuotaUserRepo(poster))

	job := &Job{Title: "Nurse"}
	require.NoError(t, svc.CreatePosting(context.Background(), job, poster.ID))

	applicant := primitive.NewObjectID()
	first := &JobApplication{JobID: job.ID, ApplicantID: applicant}
	require.NoError(t, svc.Apply(context.Background(), first))
	assert.Equal(t, ApplicationPending, first.Status)

	err := svc.Apply(context.Background(), &JobApplication{JobID: job.ID, ApplicantID: applicant})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusConflict, appErr.Code)
}

func TestApplyUnknownJob(t *testing.T) {
	svc := NewJobService(newMemJobRepo(), newQuotaUserRepo())

	err := svc.Apply(context.Background(), &JobApplication{
		JobID:       primitive.NewObjectID(),
		ApplicantID: primitive.NewObjectID(),
	})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusNotFound, appErr.Code)
}
