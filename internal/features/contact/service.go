package contact

import (
	"context"
	"errors"

	"go-ngo/internal/common/apperr"

	"go.mongodb.org/mongo-driver/mongo"
)

type ContactService interface {
	Create(ctx context.Context, contact *Contact) error
	GetByID(ctx context.Context, id string) (*Contact, error)
	ListAll(ctx context.Context) ([]Contact, error)
	Delete(ctx context.Context, id string) error
}

type ContactServiceImpl struct {
	Repo ContactRepository
}

func NewContactService(repo ContactRepository) ContactService {
	return &ContactServiceImpl{Repo: repo}
}

func (s *ContactServiceImpl) Create(ctx context.Context, contact *Contact) error {
	return s.Repo.Create(ctx, contact)
}

func (s *ContactServiceImpl) GetByID(ctx context.Context, id string) (*Contact, error) {
	contact, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Contact not found")
	}
	return contact, err
}

func (s *ContactServiceImpl) ListAll(ctx context.Context) ([]Contact, error) {
	return s.Repo.List(ctx)
}

func (s *ContactServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound("Contact not found")
	}
	return err
}
