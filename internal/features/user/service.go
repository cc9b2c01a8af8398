package user

import (
	"context"
	"errors"
	"fmt"

	"go-ngo/internal/common/apperr"
	"go-ngo/internal/features/role"
	"go-ngo/internal/rbac"
	"go-ngo/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserService interface {
	List(ctx context.Context, accountType string) ([]User, error)
	ListByRegion(ctx context.Context, region string) ([]User, error)
	Get(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User, password string) error
	Update(ctx context.Context, id string, set bson.M) (*User, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id, status string) (*User, error)
	UpdateRole(ctx context.Context, id, roleName string) (*User, error)
	UpdateDesignation(ctx context.Context, id, designation string) (*User, error)
	GetPermissions(ctx context.Context, id string) (rbac.Matrix, string, error)
	UpdatePermissions(ctx context.Context, id string, permissions rbac.Matrix) (*User, error)
	// PermissionsForRole resolves the snapshot a principal receives for
	// the given role: the registry matrix when the role is registered,
	// otherwise the built-in default.
	PermissionsForRole(ctx context.Context, roleName string) rbac.Matrix
}

type UserServiceImpl struct {
	Repo     UserRepository
	RoleRepo role.RoleRepository
}

func NewUserService(repo UserRepository, roleRepo role.RoleRepository) UserService {
	return &UserServiceImpl{Repo: repo, RoleRepo: roleRepo}
}

func (s *UserServiceImpl) List(ctx context.Context, accountType string) ([]User, error) {
	return s.Repo.List(ctx, accountType)
}

func (s *UserServiceImpl) ListByRegion(ctx context.Context, region string) ([]User, error) {
	return s.Repo.ListByRegion(ctx, region)
}

func (s *UserServiceImpl) Get(ctx context.Context, id string) (*User, error) {
	user, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("User not found")
	}
	return user, err
}

func (s *UserServiceImpl) Create(ctx context.Context, user *User, password string) error {
	if _, err := s.Repo.FindByEmail(ctx, user.Email); err == nil {
		return apperr.Conflict("Email already in use")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user.Password = hash

	if user.Role == "" {
		user.Role = "user"
	}
	if user.Status == "" {
		user.Status = StatusActive
	}
	if user.Level == 0 {
		user.Level = 1
	}
	user.Permissions = s.PermissionsForRole(ctx, user.Role)

	err = s.Repo.Create(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("Email already in use")
	}
	return err
}

func (s *UserServiceImpl) Update(ctx context.Context, id string, set bson.M) (*User, error) {
	if email, ok := set["email"].(string); ok {
		if existing, err := s.Repo.FindByEmail(ctx, email); err == nil && existing.ID.Hex() != id {
			return nil, apperr.Conflict("Email already in use")
		}
	}

	user, err := s.Repo.Update(ctx, id, set)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("User not found")
	}
	return user, err
}

func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound("User not found")
	}
	return err
}

func (s *UserServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*User, error) {
	return s.Update(ctx, id, bson.M{"status": status})
}

// UpdateRole reassigns the role and re-derives the permission snapshot
// from the registry's current matrix for that role. Principals keep
// whatever snapshot they carry until their next reassignment.
func (s *UserServiceImpl) UpdateRole(ctx context.Context, id, roleName string) (*User, error) {
	if !rbac.IsRole(roleName) {
		return nil, apperr.BadRequest(fmt.Sprintf("Unknown role: %s", roleName))
	}

	return s.Update(ctx, id, bson.M{
		"role":        roleName,
		"permissions": s.PermissionsForRole(ctx, roleName),
	})
}

func (s *UserServiceImpl) UpdateDesignation(ctx context.Context, id, designation string) (*User, error) {
	return s.Update(ctx, id, bson.M{"designation": designation})
}

func (s *UserServiceImpl) GetPermissions(ctx context.Context, id string) (rbac.Matrix, string, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return user.Permissions, user.Role, nil
}

// UpdatePermissions overwrites the snapshot directly, bypassing the role
// linkage. This is the documented privileged override path.
func (s *UserServiceImpl) UpdatePermissions(ctx context.Context, id string, permissions rbac.Matrix) (*User, error) {
	for module := range permissions {
		if !rbac.IsModule(module) {
			return nil, apperr.BadRequest(fmt.Sprintf("Unknown module in permissions: %s", module))
		}
	}
	return s.Update(ctx, id, bson.M{"permissions": permissions})
}

func (s *UserServiceImpl) PermissionsForRole(ctx context.Context, roleName string) rbac.Matrix {
	if r, err := s.RoleRepo.FindByName(ctx, roleName); err == nil {
		return r.Permissions.Clone()
	}
	return rbac.DefaultMatrix(roleName)
}
