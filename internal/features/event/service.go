package event

import (
	"context"
	"errors"

	"go-ngo/internal/common/apperr"
	"go-ngo/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type EventService interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	ListAll(ctx context.Context) ([]Event, error)
	ListApproved(ctx context.Context) ([]Event, error)
	Approve(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, id string, set bson.M) (*Event, error)
	Delete(ctx context.Context, id string) error
}

type EventServiceImpl struct {
	Repo EventRepository
}

func NewEventService(repo EventRepository) EventService {
	return &EventServiceImpl{Repo: repo}
}

func (s *EventServiceImpl) Create(ctx context.Context, event *Event) error {
	event.Slug = utils.Slugify(event.EventTitle)
	if event.ApprovalStatus == "" {
		event.ApprovalStatus = ApprovalPending
	}
	// Only approval flips this on.
	event.DisplayOnWebsite = false

	if _, err := s.Repo.FindBySlug(ctx, event.Slug); err == nil {
		return apperr.Conflict("Slug already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	err := s.Repo.Create(ctx, event)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("Slug already exists")
	}
	return err
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id string) (*Event, error) {
	event, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Event not found")
	}
	return event, err
}

func (s *EventServiceImpl) GetBySlug(ctx context.Context, slug string) (*Event, error) {
	event, err := s.Repo.FindBySlug(ctx, slug)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Event not found")
	}
	return event, err
}

func (s *EventServiceImpl) ListAll(ctx context.Context) ([]Event, error) {
	return s.Repo.List(ctx, bson.M{})
}

func (s *EventServiceImpl) ListApproved(ctx context.Context) ([]Event, error) {
	return s.Repo.List(ctx, bson.M{"approval_status": ApprovalApproved, "display_on_website": true})
}

// Approve marks the event Approved and makes it publicly visible in one step.
func (s *EventServiceImpl) Approve(ctx context.Context, id string) (*Event, error) {
	event, err := s.Repo.Update(ctx, id, bson.M{
		"approval_status":    ApprovalApproved,
		"display_on_website": true,
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Event not found")
	}
	return event, err
}

// Update re-derives the slug when the title changes; slugs are never set
// by hand.
func (s *EventServiceImpl) Update(ctx context.Context, id string, set bson.M) (*Event, error) {
	if title, ok := set["event_title"].(string); ok {
		set["slug"] = utils.Slugify(title)
	}

	event, err := s.Repo.Update(ctx, id, set)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, apperr.NotFound("Event not found")
	case mongo.IsDuplicateKeyError(err):
		return nil, apperr.Conflict("Slug already exists")
	}
	return event, err
}

func (s *EventServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound("Event not found")
	}
	return err
}
