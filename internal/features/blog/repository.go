package blog

import (
	"context"
	"time"

	"go-ngo/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BlogRepository interface {
	Create(ctx context.Context, blog *Blog) error
	FindByID(ctx context.Context, id string) (*Blog, error)
	FindBySlug(ctx context.Context, slug string) (*Blog, error)
	List(ctx context.Context, filter bson.M) ([]Blog, error)
	Update(ctx context.Context, id string, set bson.M) (*Blog, error)
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type BlogRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewBlogRepository(mongodb *database.MongodbDB) BlogRepository {
	return &BlogRepositoryImpl{
		Collection: mongodb.DB.Collection("blogs"),
	}
}

func (r *BlogRepositoryImpl) Create(ctx context.Context, blog *Blog) error {
	if blog.ID.IsZero() {
		blog.ID = primitive.NewObjectID()
	}
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = blog.CreatedAt
	_, err := r.Collection.InsertOne(ctx, blog)
	return err
}

func (r *BlogRepositoryImpl) FindByID(ctx context.Context, id string) (*Blog, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var blog Blog
	if err := r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*Blog, error) {
	var blog Blog
	if err := r.Collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepositoryImpl) List(ctx context.Context, filter bson.M) ([]Blog, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blogs []Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *BlogRepositoryImpl) Update(ctx context.Context, id string, set bson.M) (*Blog, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var blog Blog
	err = r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&blog)
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepositoryImpl) Delete(ctx context.Context, id string) error {
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

func (r *BlogRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"slug": 1},
		Options: options.Index().SetUnique(true),
	})
	return err
}
