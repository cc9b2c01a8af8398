package cause

import (
	"context"
	"errors"
	"time"

	"go-ngo/internal/common/apperr"
	"go-ngo/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CauseService interface {
	Create(ctx context.Context, cause *Cause) error
	GetBySlug(ctx context.Context, slug string) (*Cause, error)
	ListAll(ctx context.Context) ([]Cause, error)
	ListActive(ctx context.Context) ([]Cause, error)
	ListByCategory(ctx context.Context, category string) ([]Cause, error)
	Update(ctx context.Context, id string, set bson.M) (*Cause, error)
	SetStatus(ctx context.Context, id string, active bool) (*Cause, error)
	AddToRaised(ctx context.Context, id string, amount float64) error
	Delete(ctx context.Context, id string) error
	DeactivateEnded(ctx context.Context) (int64, error)
}

type CauseServiceImpl struct {
	Repo CauseRepository
}

func NewCauseService(repo CauseRepository) CauseService {
	return &CauseServiceImpl{Repo: repo}
}

func (s *CauseServiceImpl) Create(ctx context.Context, cause *Cause) error {
	cause.Slug = utils.Slugify(cause.Title)
	cause.IsActive = true
	cause.Raised = 0

	if _, err := s.Repo.FindBySlug(ctx, cause.Slug); err == nil {
		return apperr.Conflict("Slug already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	err := s.Repo.Create(ctx, cause)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("Slug already exists")
	}
	if err == nil {
		cause.FillProgress()
	}
	return err
}

func (s *CauseServiceImpl) GetBySlug(ctx context.Context, slug string) (*Cause, error) {
	cause, err := s.Repo.FindBySlug(ctx, slug)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Cause not found")
	}
	if err != nil {
		return nil, err
	}
	cause.FillProgress()
	return cause, nil
}

func (s *CauseServiceImpl) ListAll(ctx context.Context) ([]Cause, error) {
	return s.list(ctx, bson.M{})
}

func (s *CauseServiceImpl) ListActive(ctx context.Context) ([]Cause, error) {
	return s.list(ctx, bson.M{
		"is_active": true,
		"$or": []bson.M{
			{"end_date": nil},
			{"end_date": bson.M{"$gte": time.Now()}},
		},
	})
}

func (s *CauseServiceImpl) ListByCategory(ctx context.Context, category string) ([]Cause, error) {
	return s.list(ctx, bson.M{"category": category, "is_active": true})
}

func (s *CauseServiceImpl) list(ctx context.Context, filter bson.M) ([]Cause, error) {
	causes, err := s.Repo.List(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	for i := range causes {
		causes[i].FillProgress()
	}
	return causes, nil
}

// Update re-derives the slug when the title changes; slugs are never set
// by hand.
func (s *CauseServiceImpl) Update(ctx context.Context, id string, set bson.M) (*Cause, error) {
	if title, ok := set["title"].(string); ok {
		set["slug"] = utils.Slugify(title)
	}

	cause, err := s.Repo.Update(ctx, id, set)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, apperr.NotFound("Cause not found")
	case mongo.IsDuplicateKeyError(err):
		return nil, apperr.Conflict("Slug already exists")
	case err != nil:
		return nil, err
	}
	cause.FillProgress()
	return cause, nil
}

func (s *CauseServiceImpl) SetStatus(ctx context.Context, id string, active bool) (*Cause, error) {
	cause, err := s.Repo.Update(ctx, id, bson.M{"is_active": active})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Cause not found")
	}
	if err != nil {
		return nil, err
	}
	cause.FillProgress()
	return cause, nil
}

// AddToRaised bumps the raised total after a completed donation. A missing
// cause is ignored so a stale reference never fails the donation.
func (s *CauseServiceImpl) AddToRaised(ctx context.Context, id string, amount float64) error {
	err := s.Repo.IncrementRaised(ctx, id, amount)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return err
}

func (s *CauseServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound("Cause not found")
	}
	return err
}

func (s *CauseServiceImpl) DeactivateEnded(ctx context.Context) (int64, error) {
	return s.Repo.DeactivateEnded(ctx, time.Now())
}
