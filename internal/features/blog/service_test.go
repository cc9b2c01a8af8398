package blog

import (
	"context"
	"strings"
	"testing"

	"go-ngo/internal/common/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type memBlogRepo struct {
	blogs map[string]*Blog
}

func newMemBlogRepo() *memBlogRepo {
	return &memBlogRepo{blogs: map[string]*Blog{}}
}

func (r *memBlogRepo) Create(ctx context.Context, blog *Blog) error {
	for _, existing := range r.blogs {
		if existing.Slug == blog.Slug {
			return mongo.CommandError{Code: 11000}
		}
	}
	if blog.ID.IsZero() {
		blog.ID = primitive.NewObjectID()
	}
	clone := *blog
	r.blogs[blog.ID.Hex()] = &clone
	return nil
}

func (r *memBlogRepo) FindByID(ctx context.Context, id string) (*Blog, error) {
	b, ok := r.blogs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *b
	return &clone, nil
}

func (r *memBlogRepo) FindBySlug(ctx context.Context, slug string) (*Blog, error) {
	for _, b := range r.blogs {
		if b.Slug == slug {
			clone := *b
			return &clone, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memBlogRepo) List(ctx context.Context, filter bson.M) ([]Blog, error) {
	var out []Blog
	for _, b := range r.blogs {
		if status, ok := filter["status"].(string); ok && b.Status != status {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *memBlogRepo) Update(ctx context.Context, id string, set bson.M) (*Blog, error) {
	b, ok := r.blogs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for field, value := range set {
		s, _ := value.(string)
		switch field {
		case "title":
			b.Title = s
		case "slug":
			b.Slug = s
		case "content":
			b.Content = s
		case "status":
			b.Status = s
		case "estimated_read_time":
			b.EstimatedReadTime = s
		}
	}
	clone := *b
	return &clone, nil
}

func (r *memBlogRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.blogs[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.blogs, id)
	return nil
}

func (r *memBlogRepo) EnsureIndexes(ctx context.Context) error { return nil }

func TestEstimateReadTime(t *testing.T) {
	assert.Equal(t, "1 min read", EstimateReadTime(""))
	assert.Equal(t, "1 min read", EstimateReadTime("just a few words"))
	assert.Equal(t, "1 min read", EstimateReadTime(strings.Repeat("word ", 200)))
	assert.Equal(t, "2 min read", EstimateReadTime(strings.Repeat("word ", 201)))
	assert.Equal(t, "5 min read", EstimateReadTime(strings.Repeat("word ", 1000)))
}

func TestCreateDerivesSlugAndReadTime(t *testing.T) {
	svc := NewBlogService(newMemBlogRepo())

	b := &Blog{Title: "Clean Water For All!", Content: strings.Repeat("word ", 450)}
	require.NoError(t, svc.Create(context.Background(), b))

	assert.Equal(t, "clean-water-for-all", b.Slug)
	assert.Equal(t, "3 min read", b.EstimatedReadTime)
	assert.Equal(t, StatusDraft, b.Status)
}

func TestCreateDuplicateSlugConflicts(t *testing.T) {
	svc := NewBlogService(newMemBlogRepo())

	require.NoError(t, svc.Create(context.Background(), &Blog{Title: "Annual Report"}))

	err := svc.Create(context.Background(), &Blog{Title: "Annual Report!"})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusConflict, appErr.Code)
}

func TestUpdateRederivesSlug(t *testing.T) {
	repo := newMemBlogRepo()
	svc := NewBlogService(repo)

	b := &Blog{Title: "Old Title", Content: "short"}
	require.NoError(t, svc.Create(context.Background(), b))

	updated, err := svc.Update(context.Background(), b.ID.Hex(), bson.M{"title": "Brand New Title"})
	require.NoError(t, err)
	assert.Equal(t, "brand-new-title", updated.Slug)
}

func TestUpdateRederivesReadTime(t *testing.T) {
	repo := newMemBlogRepo()
	svc := NewBlogService(repo)

	b := &Blog{Title: "Post", Content: "short"}
	require.NoError(t, svc.Create(context.Background(), b))

	updated, err := svc.Update(context.Background(), b.ID.Hex(), bson.M{"content": strings.Repeat("word ", 700)})
	require.NoError(t, err)
	assert.Equal(t, "4 min read", updated.EstimatedReadTime)
}

func TestListPublishedFiltersDrafts(t *testing.T) {
	repo := newMemBlogRepo()
	svc := NewBlogService(repo)

	require.NoError(t, svc.Create(context.Background(), &Blog{Title: "Draft Post"}))
	require.NoError(t, svc.Create(context.Background(), &Blog{Title: "Live Post", Status: StatusPublished}))

	published, err := svc.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "Live Post", published[0].Title)
}

func TestGetBySlugNotFound(t *testing.T) {
	svc := NewBlogService(newMemBlogRepo())

	_, err := svc.GetBySlug(context.Background(), "missing")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusNotFound, appErr.Code)
}
