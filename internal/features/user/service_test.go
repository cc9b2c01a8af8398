package user

import (
	"context"
	"sync"
	"testing"

	"go-ngo/internal/common/apperr"
	"go-ngo/internal/features/role"
	"go-ngo/internal/rbac"
	"go-ngo/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memUserRepo is an in-memory UserRepository for service tests. The quota
// increment mirrors the production conditional-update semantics under a
// single lock.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*User{}}
}

func (r *memUserRepo) Create(ctx context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return mongo.CommandError{Code: 11000}
		}
	}
	clone := *u
	r.users[u.ID.Hex()] = &clone
	return nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memUserRepo) List(ctx context.Context, accountType string) ([]User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []User
	for _, u := range r.users {
		if accountType == "" || u.AccountType == accountType {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *memUserRepo) ListByRegion(ctx context.Context, region string) ([]User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []User
	for _, u := range r.users {
		if u.Geo.Region == region {
			out = append(out, *u)
			continue
		}
		for _, assigned := range u.AssignedRegions {
			if assigned == region {
				out = append(out, *u)
				break
			}
		}
	}
	return out, nil
}

func (r *memUserRepo) Update(ctx context.Context, id string, set bson.M) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for field, value := range set {
		switch field {
		case "role":
			u.Role = value.(string)
		case "status":
			u.Status = value.(string)
		case "designation":
			u.Designation = value.(string)
		case "permissions":
			u.Permissions = value.(rbac.Matrix)
		case "name":
			u.Name = value.(string)
		case "email":
			u.Email = value.(string)
		}
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) IncrementJobPostsIfUnder(ctx context.Context, id string, limit int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return false, mongo.ErrNoDocuments
	}
	if u.JobPostsThisYear >= limit {
		return false, nil
	}
	u.JobPostsThisYear++
	return true, nil
}

func (r *memUserRepo) ResetJobPostCounters(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.AccountType == AccountTypeOrganization {
			u.JobPostsThisYear = 0
			n++
		}
	}
	return n, nil
}

func (r *memUserRepo) ResolvePrincipal(ctx context.Context, id string) (*rbac.Principal, error) {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.Principal(), nil
}

func (r *memUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

// memRoleRepo serves a fixed set of registry roles by name.
type memRoleRepo struct {
	roles map[string]*role.Role
}

func (r *memRoleRepo) Create(ctx context.Context, ro *role.Role) error { return nil }
func (r *memRoleRepo) FindByID(ctx context.Context, id string) (*role.Role, error) {
	return nil, mongo.ErrNoDocuments
}
func (r *memRoleRepo) FindByName(ctx context.Context, name string) (*role.Role, error) {
	if ro, ok := r.roles[name]; ok {
		return ro, nil
	}
	return nil, mongo.ErrNoDocuments
}
func (r *memRoleRepo) List(ctx context.Context) ([]role.Role, error) { return nil, nil }
func (r *memRoleRepo) Update(ctx context.Context, id string, ro *role.Role) (*role.Role, error) {
	return nil, mongo.ErrNoDocuments
}
func (r *memRoleRepo) Delete(ctx context.Context, id string) error       { return mongo.ErrNoDocuments }
func (r *memRoleRepo) EnsureIndexes(ctx context.Context) error           { return nil }

func TestCreateHashesPasswordAndSnapshotsPermissions(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, &memRoleRepo{})

	u := &User{Name: "Asha", Email: "asha@example.org"}
	require.NoError(t, svc.Create(context.Background(), u, "secret123"))

	assert.NotEqual(t, "secret123", u.Password)
	assert.True(t, utils.CheckPassword(u.Password, "secret123"))
	assert.Equal(t, "user", u.Role)
	assert.Equal(t, StatusActive, u.Status)
	assert.Equal(t, rbac.DefaultMatrix("user"), u.Permissions)
}

func TestCreateDuplicateEmailConflicts(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, &memRoleRepo{})

	require.NoError(t, svc.Create(context.Background(), &User{Email: "a@b.c"}, "pw"))

	err := svc.Create(context.Background(), &User{Email: "a@b.c"}, "pw")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusConflict, appErr.Code)
}

func TestUpdateRoleRecomputesSnapshotFromRegistry(t *testing.T) {
	registryMatrix := rbac.Matrix{
		"donations": {Read: true, Create: true, Update: true, Delete: true},
		"events":    {Read: true},
	}
	roles := &memRoleRepo{roles: map[string]*role.Role{
		"country-admin": {Name: "country-admin", Permissions: registryMatrix},
	}}

	repo := newMemUserRepo()
	svc := NewUserService(repo, roles)

	u := &User{Email: "lead@example.org"}
	require.NoError(t, svc.Create(context.Background(), u, "pw"))
	assert.Equal(t, rbac.DefaultMatrix("user"), u.Permissions)

	updated, err := svc.UpdateRole(context.Background(), u.ID.Hex(), "country-admin")
	require.NoError(t, err)
	assert.Equal(t, "country-admin", updated.Role)

	// The snapshot must be the registry's current matrix, not the one
	// issued at registration.
	assert.Equal(t, registryMatrix, updated.Permissions)
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), &memRoleRepo{})

	_, err := svc.UpdateRole(context.Background(), primitive.NewObjectID().Hex(), "warlord")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusBadRequest, appErr.Code)
}

func TestUpdatePermissionsRejectsUnknownModule(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), &memRoleRepo{})

	_, err := svc.UpdatePermissions(context.Background(), primitive.NewObjectID().Hex(), rbac.Matrix{
		"spaceships": {Read: true},
	})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusBadRequest, appErr.Code)
}

func TestUpdatePermissionsOverridesSnapshot(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, &memRoleRepo{})

	u := &User{Email: "x@y.z"}
	require.NoError(t, svc.Create(context.Background(), u, "pw"))

	override := rbac.Matrix{"donations": {Read: true, Delete: true}}
	updated, err := svc.UpdatePermissions(context.Background(), u.ID.Hex(), override)
	require.NoError(t, err)
	assert.Equal(t, override, updated.Permissions)
}
