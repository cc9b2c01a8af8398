package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-ngo/internal/common/apperr"
	"go-ngo/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BlogService interface {
	Create(ctx context.Context, blog *Blog) error
	GetBySlug(ctx context.Context, slug string) (*Blog, error)
	ListPublished(ctx context.Context) ([]Blog, error)
	ListAll(ctx context.Context) ([]Blog, error)
	Update(ctx context.Context, id string, set bson.M) (*Blog, error)
	Delete(ctx context.Context, id string) error
}

type BlogServiceImpl struct {
	Repo BlogRepository
}

func NewBlogService(repo BlogRepository) BlogService {
	return &BlogServiceImpl{Repo: repo}
}

// EstimateReadTime derives the "N min read" label at 200 words a minute.
func EstimateReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

func (s *BlogServiceImpl) Create(ctx context.Context, blog *Blog) error {
	blog.Slug = utils.Slugify(blog.Title)
	blog.EstimatedReadTime = EstimateReadTime(blog.Content)
	if blog.Status == "" {
		blog.Status = StatusDraft
	}

	if _, err := s.Repo.FindBySlug(ctx, blog.Slug); err == nil {
		return apperr.Conflict("Slug already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	err := s.Repo.Create(ctx, blog)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("Slug already exists")
	}
	return err
}

func (s *BlogServiceImpl) GetBySlug(ctx context.Context, slug string) (*Blog, error) {
	blog, err := s.Repo.FindBySlug(ctx, slug)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Blog not found")
	}
	return blog, err
}

func (s *BlogServiceImpl) ListPublished(ctx context.Context) ([]Blog, error) {
	return s.Repo.List(ctx, bson.M{"status": StatusPublished})
}

func (s *BlogServiceImpl) ListAll(ctx context.Context) ([]Blog, error) {
	return s.Repo.List(ctx, bson.M{})
}

// Update re-derives the slug and read time whenever the title or content
// change; slugs are never set by hand.
func (s *BlogServiceImpl) Update(ctx context.Context, id string, set bson.M) (*Blog, error) {
	if title, ok := set["title"].(string); ok {
		set["slug"] = utils.Slugify(title)
	}
	if content, ok := set["content"].(string); ok {
		set["estimated_read_time"] = EstimateReadTime(content)
	}

	blog, err := s.Repo.Update(ctx, id, set)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, apperr.NotFound("Blog not found")
	case mongo.IsDuplicateKeyError(err):
		return nil, apperr.Conflict("Slug already exists")
	}
	return blog, err
}

func (s *BlogServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound("Blog not found")
	}
	return err
}
