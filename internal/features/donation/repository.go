package donation

import (
	"context"
	"time"

	"go-ngo/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	FindByID(ctx context.Context, id string) (*Donation, error)
	List(ctx context.Context, filter bson.M) ([]Donation, error)
	Update(ctx context.Context, id string, set bson.M) (*Donation, error)
	Delete(ctx context.Context, id string) error
	// SumCompleted totals completed donation amounts inside the given
	// created_at window; zero time bounds are open-ended.
	SumCompleted(ctx context.Context, from, to time.Time) (float64, error)
	// BreakdownByCause groups completed donations per cause, joining the
	// causes collection for display names.
	BreakdownByCause(ctx context.Context) ([]CauseBreakdown, error)
	SumGeneralFund(ctx context.Context) (float64, error)
}

type DonationRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewDonationRepository(mongodb *database.MongodbDB) DonationRepository {
	return &DonationRepositoryImpl{
		Collection: mongodb.DB.Collection("donations"),
	}
}

func (r *DonationRepositoryImpl) Create(ctx context.Context, donation *Donation) error {
	if donation.ID.IsZero() {
		donation.ID = primitive.NewObjectID()
	}
	donation.CreatedAt = time.Now()
	donation.UpdatedAt = donation.CreatedAt
	_, err := r.Collection.InsertOne(ctx, donation)
	return err
}

func (r *DonationRepositoryImpl) FindByID(ctx context.Context, id string) (*Donation, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var donation Donation
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&donation); err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *DonationRepositoryImpl) List(ctx context.Context, filter bson.M) ([]Donation, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var donations []Donation
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *DonationRepositoryImpl) Update(ctx context.Context, id string, set bson.M) (*Donation, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var donation Donation
	err = r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&donation)
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *DonationRepositoryImpl) Delete(ctx context.Context, id string) error {
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

func (r *DonationRepositoryImpl) SumCompleted(ctx context.Context, from, to time.Time) (float64, error) {
	match := bson.M{"status": StatusCompleted}
	window := bson.M{}
	if !from.IsZero() {
		window["$gte"] = from
	}
	if !to.IsZero() {
		window["$lt"] = to
	}
	if len(window) > 0 {
		match["created_at"] = window
	}

	return r.sum(ctx, match)
}

func (r *DonationRepositoryImpl) SumGeneralFund(ctx context.Context) (float64, error) {
	return r.sum(ctx, bson.M{"status": StatusCompleted, "cause_id": nil})
}

func (r *DonationRepositoryImpl) sum(ctx context.Context, match bson.M) (float64, error) {
	cursor, err := r.Collection.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": nil, "amount": bson.M{"$sum": "$amount"}}}},
	})
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Amount float64 `bson:"amount"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Amount, nil
}

func (r *DonationRepositoryImpl) BreakdownByCause(ctx context.Context) ([]CauseBreakdown, error) {
	cursor, err := r.Collection.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": StatusCompleted, "cause_id": bson.M{"$ne": nil}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "causes",
			"localField":   "cause_id",
			"foreignField": "_id",
			"as":           "cause",
		}}},
		{{Key: "$unwind", Value: "$cause"}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$cause.title",
			"amount":   bson.M{"$sum": "$amount"},
			"cause_id": bson.M{"$first": "$cause._id"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":      0,
			"name":     "$_id",
			"amount":   1,
			"cause_id": 1,
		}}},
		{{Key: "$sort", Value: bson.M{"amount": -1}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []CauseBreakdown
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
