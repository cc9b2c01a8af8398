package event

import (
	"context"
	"time"

	"go-ngo/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	FindByID(ctx context.Context, id string) (*Event, error)
	FindBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context, filter bson.M) ([]Event, error)
	Update(ctx context.Context, id string, set bson.M) (*Event, error)
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type EventRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewEventRepository(mongodb *database.MongodbDB) EventRepository {
	return &EventRepositoryImpl{
		Collection: mongodb.DB.Collection("events"),
	}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *Event) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	_, err := r.Collection.InsertOne(ctx, event)
	return err
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id string) (*Event, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var event Event
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*Event, error) {
	var event Event
	if err := r.Collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context, filter bson.M) ([]Event, error) {
	opts := options.Find().SetSort(bson.M{"start_date_time": -1})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id string, set bson.M) (*Event, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var event Event
	err = r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&event)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id string) error {
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

func (r *EventRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"slug": 1},
		Options: options.Index().SetUnique(true),
	})
	return err
}
