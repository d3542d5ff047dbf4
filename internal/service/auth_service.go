package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"staybook/internal/auth"
	apperrors "staybook/internal/errors"
	"staybook/internal/model"
	"staybook/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, login and token-based identity lookup.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	// OptionalUser resolves a token to a user, or (nil, nil) when the token is
	// missing, invalid or expired. Callers that treat anonymous as acceptable
	// use this entry point.
	OptionalUser(ctx context.Context, token string) (*model.User, error)
	// RequireUser resolves a token to a user or fails with ErrUnauthenticated.
	RequireUser(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
	}
}

// Register creates a new user with a bcrypt-hashed password. The plaintext is
// never stored.
func (s *authService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a session token. A missing account and
// a wrong password fail with distinct errors, matching the public contract.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil, apperrors.ErrUserNotFound
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrWrongPassword
	}

	token, err := s.jwtService.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

func (s *authService) OptionalUser(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, nil
	}
	claims, err := s.jwtService.Verify(token)
	if err != nil {
		return nil, nil
	}
	id, err := claims.UserUUID()
	if err != nil {
		return nil, nil
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *authService) RequireUser(ctx context.Context, token string) (*model.User, error) {
	user, err := s.OptionalUser(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	return user, nil
}
