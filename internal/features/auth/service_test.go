package auth

import (
	"context"
	"testing"

	"go-ngo/internal/common/apperr"
	"go-ngo/internal/features/role"
	"go-ngo/internal/features/user"
	"go-ngo/internal/rbac"
	"go-ngo/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// singleUserRepo serves one stored principal by email.
type singleUserRepo struct {
	stored *user.User
}

func (r *singleUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (r *singleUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	if r.stored != nil && r.stored.ID.Hex() == id {
		clone := *r.stored
		return &clone, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *singleUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if r.stored != nil && r.stored.Email == email {
		clone := *r.stored
		return &clone, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *singleUserRepo) List(ctx context.Context, accountType string) ([]user.User, error) {
	return nil, nil
}

func (r *singleUserRepo) ListByRegion(ctx context.Context, region string) ([]user.User, error) {
	return nil, nil
}

func (r *singleUserRepo) Update(ctx context.Context, id string, set bson.M) (*user.User, error) {
	return nil, mongo.ErrNoDocuments
}

func (r *singleUserRepo) Delete(ctx context.Context, id string) error { return mongo.ErrNoDocuments }

func (r *singleUserRepo) IncrementJobPostsIfUnder(ctx context.Context, id string, limit int) (bool, error) {
	return false, mongo.ErrNoDocuments
}

func (r *singleUserRepo) ResetJobPostCounters(ctx context.Context) (int64, error) { return 0, nil }

func (r *singleUserRepo) ResolvePrincipal(ctx context.Context, id string) (*rbac.Principal, error) {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.Principal(), nil
}

func (r *singleUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

// registryRoleRepo serves a single registered role.
type registryRoleRepo struct {
	role *role.Role
}

func (r *registryRoleRepo) Create(ctx context.Context, ro *role.Role) error { return nil }
func (r *registryRoleRepo) FindByID(ctx context.Context, id string) (*role.Role, error) {
	return nil, mongo.ErrNoDocuments
}
func (r *registryRoleRepo) FindByName(ctx context.Context, name string) (*role.Role, error) {
	if r.role != nil && r.role.Name == name {
		return r.role, nil
	}
	return nil, mongo.ErrNoDocuments
}
func (r *registryRoleRepo) List(ctx context.Context) ([]role.Role, error) { return nil, nil }
func (r *registryRoleRepo) Update(ctx context.Context, id string, ro *role.Role) (*role.Role, error) {
	return nil, mongo.ErrNoDocuments
}
func (r *registryRoleRepo) Delete(ctx context.Context, id string) error { return mongo.ErrNoDocuments }
func (r *registryRoleRepo) EnsureIndexes(ctx context.Context) error     { return nil }

func newLoginFixture(t *testing.T, stored *user.User, registered *role.Role) AuthService {
	t.Helper()
	repo := &singleUserRepo{stored: stored}
	userService := user.NewUserService(repo, &registryRoleRepo{role: registered})
	return NewAuthService(repo, userService)
}

func storedAdmin(t *testing.T, password string) *user.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &user.User{
		ID:       primitive.NewObjectID(),
		Email:    "lead@example.org",
		Password: hash,
		Role:     "country-admin",
		Status:   user.StatusActive,
		// Snapshot taken before the registry granted more.
		Permissions: rbac.Matrix{"donations": {Read: true}},
	}
}

func TestLoginRefreshesPermissionSnapshot(t *testing.T) {
	registryMatrix := rbac.Matrix{
		"donations": {Read: true, Create: true, Update: true, Delete: true},
	}
	svc := newLoginFixture(t, storedAdmin(t, "secret123"), &role.Role{
		Name:        "country-admin",
		Permissions: registryMatrix,
	})

	usr, token, err := svc.Login(context.Background(), "lead@example.org", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// The session starts from the registry's current matrix, not the
	// snapshot stored at the last role assignment.
	assert.Equal(t, registryMatrix, usr.Permissions)
}

func TestLoginUnregisteredRoleFallsBackToDefaults(t *testing.T) {
	svc := newLoginFixture(t, storedAdmin(t, "secret123"), nil)

	usr, _, err := svc.Login(context.Background(), "lead@example.org", "secret123")
	require.NoError(t, err)
	assert.Equal(t, rbac.DefaultMatrix("country-admin"), usr.Permissions)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newLoginFixture(t, storedAdmin(t, "secret123"), nil)

	_, _, err := svc.Login(context.Background(), "lead@example.org", "wrong")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusUnauthorized, appErr.Code)

	_, _, err = svc.Login(context.Background(), "nobody@example.org", "secret123")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusUnauthorized, appErr.Code)
}
