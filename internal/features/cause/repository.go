package cause

import (
	"context"
	"time"

	"go-ngo/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CauseRepository interface {
	Create(ctx context.Context, cause *Cause) error
	FindByID(ctx context.Context, id string) (*Cause, error)
	FindBySlug(ctx context.Context, slug string) (*Cause, error)
	List(ctx context.Context, filter bson.M, sort bson.M) ([]Cause, error)
	Update(ctx context.Context, id string, set bson.M) (*Cause, error)
	IncrementRaised(ctx context.Context, id string, amount float64) error
	Delete(ctx context.Context, id string) error
	// DeactivateEnded flips is_active off for causes past their end date.
	DeactivateEnded(ctx context.Context, now time.Time) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type CauseRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewCauseRepository(mongodb *database.MongodbDB) CauseRepository {
	return &CauseRepositoryImpl{
		Collection: mongodb.DB.Collection("causes"),
	}
}

func (r *CauseRepositoryImpl) Create(ctx context.Context, cause *Cause) error {
	if cause.ID.IsZero() {
		cause.ID = primitive.NewObjectID()
	}
	cause.CreatedAt = time.Now()
	cause.UpdatedAt = cause.CreatedAt
	if cause.StartDate.IsZero() {
		cause.StartDate = cause.CreatedAt
	}
	_, err := r.Collection.InsertOne(ctx, cause)
	return err
}

func (r *CauseRepositoryImpl) FindByID(ctx context.Context, id string) (*Cause, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var cause Cause
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&cause); err != nil {
		return nil, err
	}
	return &cause, nil
}

func (r *CauseRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*Cause, error) {
	var cause Cause
	if err := r.Collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&cause); err != nil {
		return nil, err
	}
	return &cause, nil
}

func (r *CauseRepositoryImpl) List(ctx context.Context, filter bson.M, sort bson.M) ([]Cause, error) {
	if sort == nil {
		sort = bson.M{"created_at": -1}
	}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var causes []Cause
	if err := cursor.All(ctx, &causes); err != nil {
		return nil, err
	}
	return causes, nil
}

func (r *CauseRepositoryImpl) Update(ctx context.Context, id string, set bson.M) (*Cause, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var cause Cause
	err = r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&cause)
	if err != nil {
		return nil, err
	}
	return &cause, nil
}

func (r *CauseRepositoryImpl) IncrementRaised(ctx context.Context, id string, amount float64) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$inc": bson.M{"raised": amount},
		"$set": bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *CauseRepositoryImpl) Delete(ctx context.Context, id string) error {
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

func (r *CauseRepositoryImpl) DeactivateEnded(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.Collection.UpdateMany(ctx,
		bson.M{"is_active": true, "end_date": bson.M{"$ne": nil, "$lt": now}},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": now}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *CauseRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"slug": 1},
		Options: options.Index().SetUnique(true),
	})
	return err
}
