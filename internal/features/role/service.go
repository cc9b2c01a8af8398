package role

import (
	"context"
	"errors"
	"fmt"

	"go-ngo/internal/common/apperr"
	"go-ngo/internal/rbac"

	"go.mongodb.org/mongo-driver/mongo"
)

type RoleService interface {
	Create(ctx context.Context, role *Role) error
	Get(ctx context.Context, id string) (*Role, error)
	GetByName(ctx context.Context, name string) (*Role, error)
	GetPermissionsByName(ctx context.Context, name string) (rbac.Matrix, error)
	List(ctx context.Context) ([]Role, error)
	Update(ctx context.Context, id string, role *Role) (*Role, error)
	Delete(ctx context.Context, id string) error
}

type RoleServiceImpl struct {
	Repo RoleRepository
}

func NewRoleService(repo RoleRepository) RoleService {
	return &RoleServiceImpl{Repo: repo}
}

func (s *RoleServiceImpl) Create(ctx context.Context, role *Role) error {
	if err := validateMatrix(role.Permissions); err != nil {
		return err
	}

	err := s.Repo.Create(ctx, role)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict(fmt.Sprintf("Role %q already exists", role.Name))
	}
	return err
}

func (s *RoleServiceImpl) Get(ctx context.Context, id string) (*Role, error) {
	role, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Role not found")
	}
	return role, err
}

func (s *RoleServiceImpl) GetByName(ctx context.Context, name string) (*Role, error) {
	role, err := s.Repo.FindByName(ctx, name)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Role not found")
	}
	return role, err
}

func (s *RoleServiceImpl) GetPermissionsByName(ctx context.Context, name string) (rbac.Matrix, error) {
	role, err := s.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return role.Permissions, nil
}

func (s *RoleServiceImpl) List(ctx context.Context) ([]Role, error) {
	return s.Repo.List(ctx)
}

func (s *RoleServiceImpl) Update(ctx context.Context, id string, role *Role) (*Role, error) {
	if err := validateMatrix(role.Permissions); err != nil {
		return nil, err
	}

	updated, err := s.Repo.Update(ctx, id, role)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, apperr.NotFound("Role not found")
	case mongo.IsDuplicateKeyError(err):
		return nil, apperr.Conflict(fmt.Sprintf("Role %q already exists", role.Name))
	}
	return updated, err
}

func (s *RoleServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound("Role not found")
	}
	return err
}

// validateMatrix rejects matrices that reference modules outside the
// closed set. Unset modules are fine; they default to all-false.
func validateMatrix(m rbac.Matrix) error {
	for module := range m {
		if !rbac.IsModule(module) {
			return apperr.BadRequest(fmt.Sprintf("Unknown module in permissions: %s", module))
		}
	}
	return nil
}
