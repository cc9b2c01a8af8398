package job

import (
	"context"
	"time"

	"go-ngo/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	FindByID(ctx context.Context, id string) (*Job, error)
	List(ctx context.Context, filter bson.M) ([]Job, error)
	Update(ctx context.Context, id string, set bson.M) (*Job, error)
	Delete(ctx context.Context, id string) error

	CreateApplication(ctx context.Context, application *JobApplication) error
	FindApplicationByID(ctx context.Context, id string) (*JobApplication, error)
	ListApplications(ctx context.Context, filter bson.M) ([]JobApplication, error)
	UpdateApplication(ctx context.Context, id string, set bson.M) (*JobApplication, error)
	DeleteApplication(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type JobRepositoryImpl struct {
	Jobs         *mongo.Collection
	Applications *mongo.Collection
}

func NewJobRepository(mongodb *database.MongodbDB) JobRepository {
	return &JobRepositoryImpl{
		Jobs:         mongodb.DB.Collection("jobs"),
		Applications: mongodb.DB.Collection("job_applications"),
	}
}

func (r *JobRepositoryImpl) Create(ctx context.Context, job *Job) error {
	if job.ID.IsZero() {
		job.ID = primitive.NewObjectID()
	}
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	_, err := r.Jobs.InsertOne(ctx, job)
	return err
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, id string) (*Job, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var job Job
	if err := r.Jobs.FindOne(ctx, bson.M{"_id": objectID}).Decode(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) List(ctx context.Context, filter bson.M) ([]Job, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.Jobs.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) Update(ctx context.Context, id string, set bson.M) (*Job, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var job Job
	err = r.Jobs.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	res, err := r.Jobs.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *JobRepositoryImpl) CreateApplication(ctx context.Context, application *JobApplication) error {
	if application.ID.IsZero() {
		application.ID = primitive.NewObjectID()
	}
	application.CreatedAt = time.Now()
	application.UpdatedAt = application.CreatedAt
	_, err := r.Applications.InsertOne(ctx, application)
	return err
}

func (r *JobRepositoryImpl) FindApplicationByID(ctx context.Context, id string) (*JobApplication, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var application JobApplication
	if err := r.Applications.FindOne(ctx, bson.M{"_id": objectID}).Decode(&application); err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *JobRepositoryImpl) ListApplications(ctx context.Context, filter bson.M) ([]JobApplication, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.Applications.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var applications []JobApplication
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *JobRepositoryImpl) UpdateApplication(ctx context.Context, id string, set bson.M) (*JobApplication, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var application JobApplication
	err = r.Applications.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&application)
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *JobRepositoryImpl) DeleteApplication(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	res, err := r.Applications.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// EnsureIndexes keeps one application per applicant per job.
func (r *JobRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Applications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "job_id", Value: 1}, {Key: "applicant_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
