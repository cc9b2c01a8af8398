package volunteer

import (
	"context"
	"time"

	"go-ngo/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *Volunteer) error
	FindByID(ctx context.Context, id string) (*Volunteer, error)
	List(ctx context.Context) ([]Volunteer, error)
	Update(ctx context.Context, id string, set bson.M) (*Volunteer, error)
	// AppendEvent pushes a participation record; hoursDelta folds completed
	// hours into the running total in the same update.
	AppendEvent(ctx context.Context, id string, event VolunteerEvent, hoursDelta float64) (*Volunteer, error)
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type VolunteerRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewVolunteerRepository(mongodb *database.MongodbDB) VolunteerRepository {
	return &VolunteerRepositoryImpl{
		Collection: mongodb.DB.Collection("volunteers"),
	}
}

func (r *VolunteerRepositoryImpl) Create(ctx context.Context, volunteer *Volunteer) error {
	if volunteer.ID.IsZero() {
		volunteer.ID = primitive.NewObjectID()
	}
	volunteer.CreatedAt = time.Now()
	volunteer.UpdatedAt = volunteer.CreatedAt
	if volunteer.JoinDate.IsZero() {
		volunteer.JoinDate = volunteer.CreatedAt
	}
	_, err := r.Collection.InsertOne(ctx, volunteer)
	return err
}

func (r *VolunteerRepositoryImpl) FindByID(ctx context.Context, id string) (*Volunteer, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var volunteer Volunteer
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&volunteer); err != nil {
		return nil, err
	}
	return &volunteer, nil
}

func (r *VolunteerRepositoryImpl) List(ctx context.Context) ([]Volunteer, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var volunteers []Volunteer
	if err := cursor.All(ctx, &volunteers); err != nil {
		return nil, err
	}
	return volunteers, nil
}

func (r *VolunteerRepositoryImpl) Update(ctx context.Context, id string, set bson.M) (*Volunteer, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var volunteer Volunteer
	err = r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&volunteer)
	if err != nil {
		return nil, err
	}
	return &volunteer, nil
}

func (r *VolunteerRepositoryImpl) AppendEvent(ctx context.Context, id string, event VolunteerEvent, hoursDelta float64) (*Volunteer, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	update := bson.M{
		"$push": bson.M{"events": event},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	if hoursDelta != 0 {
		update["$inc"] = bson.M{"hours": hoursDelta}
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var volunteer Volunteer
	err = r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&volunteer)
	if err != nil {
		return nil, err
	}
	return &volunteer, nil
}

func (r *VolunteerRepositoryImpl) Delete(ctx context.Context, id string) error {
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

func (r *VolunteerRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	})
	return err
}
