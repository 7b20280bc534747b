// Package service contains the business logic between the HTTP
// handlers and the repositories. UserService owns the account
// lifecycle: creation with a generated temporary credential, login
// verification with status gating, listing, and deletion.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/model"
	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/repository"
)

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
)

type UserService interface {
	// CreateUser provisions an account and returns it together with
	// the plaintext temporary password. The plaintext is shown to the
	// administrator exactly once and is never persisted.
	CreateUser(ctx context.Context, name, email string, role model.UserRole) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.UserSummary, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *userService) CreateUser(ctx context.Context, name, email string, role model.UserRole) (*model.User, string, error) {
	if name == "" || email == "" || role == "" {
		return nil, "", ErrMissingFields
	}
	if !role.Valid() {
		return nil, "", ErrInvalidRole
	}

	// Fast path for the common sequential case. The conditional write
	// in Create still catches two racing requests.
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", fmt.Errorf("checking existing email: %w", err)
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return nil, "", fmt.Errorf("generating temporary password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := s.now().UTC()
	user := &model.User{
		UserID:       uuid.New().String(),
		Email:        email,
		Name:         name,
		Role:         role,
		Status:       model.StatusActive,
		PasswordHash: string(hash),
		LastLogin:    nil,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("creating user: %w", err)
	}

	return user, tempPassword, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Same failure as a wrong password so callers cannot
			// enumerate registered emails.
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Status != model.StatusActive {
		return nil, ErrAccountInactive
	}

	now := s.now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		// A stale lastLogin must not fail the login itself.
		slog.WarnContext(ctx, "failed to update lastLogin", "userId", user.UserID, "error", err)
	} else {
		user.LastLogin = &now
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.UserSummary, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	return s.userRepo.Delete(ctx, userID)
}
