package user

import (
	"context"
	"time"

	"go-ngo/internal/database"
	"go-ngo/internal/rbac"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, accountType string) ([]User, error)
	// ListByRegion returns the principals operating in a region, whether
	// through their own geo assignment or an assigned-regions entry.
	ListByRegion(ctx context.Context, region string) ([]User, error)
	Update(ctx context.Context, id string, set bson.M) (*User, error)
	Delete(ctx context.Context, id string) error
	// IncrementJobPostsIfUnder atomically bumps the yearly job-post
	// counter only while it is below limit. Returns false when the quota
	// is exhausted.
	IncrementJobPostsIfUnder(ctx context.Context, id string, limit int) (bool, error)
	ResetJobPostCounters(ctx context.Context) (int64, error)
	ResolvePrincipal(ctx context.Context, id string) (*rbac.Principal, error)
	EnsureIndexes(ctx context.Context) error
}

type UserRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewUserRepository(mongodb *database.MongodbDB) UserRepository {
	return &UserRepositoryImpl{
		Collection: mongodb.DB.Collection("users"),
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	_, err := r.Collection.InsertOne(ctx, user)
	return err
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var user User
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) List(ctx context.Context, accountType string) ([]User, error) {
	filter := bson.M{}
	if accountType != "" {
		filter["account_type"] = accountType
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepositoryImpl) ListByRegion(ctx context.Context, region string) ([]User, error) {
	filter := bson.M{"$or": []bson.M{
		{"geo.region": region},
		{"assigned_regions": region},
	}}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, id string, set bson.M) (*User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user User
	err = r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *UserRepositoryImpl) IncrementJobPostsIfUnder(ctx context.Context, id string, limit int) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, mongo.ErrNoDocuments
	}

	// Single conditional update: the quota check and the increment are
	// one atomic datastore operation, so concurrent posts cannot lose
	// updates or overshoot the limit.
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": objectID, "job_posts_this_year": bson.M{"$lt": limit}},
		bson.M{"$inc": bson.M{"job_posts_this_year": 1}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (r *UserRepositoryImpl) ResetJobPostCounters(ctx context.Context) (int64, error) {
	res, err := r.Collection.UpdateMany(ctx,
		bson.M{"account_type": AccountTypeOrganization},
		bson.M{"$set": bson.M{"job_posts_this_year": 0}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *UserRepositoryImpl) ResolvePrincipal(ctx context.Context, id string) (*rbac.Principal, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Principal(), nil
}

func (r *UserRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	})
	return err
}
