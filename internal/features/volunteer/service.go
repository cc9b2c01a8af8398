package volunteer

import (
	"context"
	"errors"

	"go-ngo/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type VolunteerService interface {
	Create(ctx context.Context, volunteer *Volunteer) error
	GetByID(ctx context.Context, id string) (*Volunteer, error)
	ListAll(ctx context.Context) ([]Volunteer, error)
	Update(ctx context.Context, id string, set bson.M) (*Volunteer, error)
	SetStatus(ctx context.Context, id, status string) (*Volunteer, error)
	SetNotes(ctx context.Context, id, notes string) (*Volunteer, error)
	AddEvent(ctx context.Context, id string, event VolunteerEvent) (*Volunteer, error)
	Delete(ctx context.Context, id string) error
}

type VolunteerServiceImpl struct {
	Repo VolunteerRepository
}

func NewVolunteerService(repo VolunteerRepository) VolunteerService {
	return &VolunteerServiceImpl{Repo: repo}
}

func (s *VolunteerServiceImpl) Create(ctx context.Context, volunteer *Volunteer) error {
	if volunteer.Status == "" {
		volunteer.Status = StatusPending
	}
	err := s.Repo.Create(ctx, volunteer)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("Volunteer with this email already exists")
	}
	return err
}

func (s *VolunteerServiceImpl) GetByID(ctx context.Context, id string) (*Volunteer, error) {
	volunteer, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Volunteer not found")
	}
	return volunteer, err
}

func (s *VolunteerServiceImpl) ListAll(ctx context.Context) ([]Volunteer, error) {
	return s.Repo.List(ctx)
}

func (s *VolunteerServiceImpl) Update(ctx context.Context, id string, set bson.M) (*Volunteer, error) {
	volunteer, err := s.Repo.Update(ctx, id, set)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, apperr.NotFound("Volunteer not found")
	case mongo.IsDuplicateKeyError(err):
		return nil, apperr.Conflict("Volunteer with this email already exists")
	}
	return volunteer, err
}

func (s *VolunteerServiceImpl) SetStatus(ctx context.Context, id, status string) (*Volunteer, error) {
	return s.Update(ctx, id, bson.M{"status": status})
}

func (s *VolunteerServiceImpl) SetNotes(ctx context.Context, id, notes string) (*Volunteer, error) {
	return s.Update(ctx, id, bson.M{"notes": notes})
}

// AddEvent appends a participation record. Completed events add their
// hours to the volunteer's total in the same write.
func (s *VolunteerServiceImpl) AddEvent(ctx context.Context, id string, event VolunteerEvent) (*Volunteer, error) {
	if event.Status == "" {
		event.Status = EventUpcoming
	}

	var hoursDelta float64
	if event.Status == EventCompleted {
		hoursDelta = event.Hours
	}

	volunteer, err := s.Repo.AppendEvent(ctx, id, event, hoursDelta)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Volunteer not found")
	}
	return volunteer, err
}

func (s *VolunteerServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound("Volunteer not found")
	}
	return err
}
