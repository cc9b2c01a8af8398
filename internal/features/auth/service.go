package auth

import (
	"context"
	"errors"

	"go-ngo/internal/common/apperr"
	"go-ngo/internal/features/user"
	"go-ngo/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type AuthService interface {
	// Register creates a principal with the lowest-privilege role and
	// returns it with a fresh 7-day token.
	Register(ctx context.Context, name, email, password, accountType string) (*user.User, string, error)
	Login(ctx context.Context, email, password string) (*user.User, string, error)
}

type AuthServiceImpl struct {
	UserRepo    user.UserRepository
	UserService user.UserService
}

func NewAuthService(userRepo user.UserRepository, userService user.UserService) AuthService {
	return &AuthServiceImpl{UserRepo: userRepo, UserService: userService}
}

func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password, accountType string) (*user.User, string, error) {
	if accountType == "" {
		accountType = user.AccountTypeIndividual
	}

	// Self-registration never hands out anything above "user".
	newUser := &user.User{
		Name:        name,
		Email:       email,
		Role:        "user",
		AccountType: accountType,
	}
	if err := s.UserService.Create(ctx, newUser, password); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(newUser.ID, newUser.Role)
	if err != nil {
		return nil, "", err
	}
	return newUser, token, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	usr, err := s.UserRepo.FindByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, "", apperr.Unauthenticated("Invalid credentials")
	}
	if err != nil {
		return nil, "", err
	}

	if !utils.CheckPassword(usr.Password, password) {
		return nil, "", apperr.Unauthenticated("Invalid credentials")
	}

	// The stored snapshot may predate registry changes; the session starts
	// from the role's current matrix.
	usr.Permissions = s.UserService.PermissionsForRole(ctx, usr.Role)

	token, err := utils.GenerateToken(usr.ID, usr.Role)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}
