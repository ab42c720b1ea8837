package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/pegword-api/internal/domain"
	"github.com/phrazzld/pegword-api/internal/service/auth"
	"github.com/phrazzld/pegword-api/internal/store"
)

// UserService provides user registration and credential verification.
type UserService interface {
	// Register creates a new user account.
	// Returns store.ErrEmailExists when the email is already registered and
	// domain validation errors for bad input.
	Register(ctx context.Context, email, password string) (*domain.User, error)

	// Authenticate verifies an email/password pair.
	// Returns ErrInvalidCredentials for an unknown email or wrong password,
	// without distinguishing the two.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// GetUser retrieves a user by ID.
	// Returns store.ErrUserNotFound if the user does not exist.
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userStore        store.UserStore
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewUserService creates a new UserService.
// It returns an error if any of the required dependencies are nil.
func NewUserService(
	userStore store.UserStore,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) (UserService, error) {
	if userStore == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "userStore cannot be nil",
		}
	}
	if passwordVerifier == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "passwordVerifier cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore:        userStore,
		passwordVerifier: passwordVerifier,
		logger:           logger.With("component", "user_service"),
	}, nil
}

// Register creates a new user account. The store hashes the password.
func (s *userServiceImpl) Register(
	ctx context.Context,
	email, password string,
) (*domain.User, error) {
	user, err := domain.NewUser(email, password)
	if err != nil {
		s.logger.Warn("invalid registration data", "error", err)
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return nil, err
		}
		s.logger.Error("failed to create user", "error", err)
		return nil, NewServiceError("register", "failed to create user", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Authenticate verifies the email/password pair against the stored hash.
func (s *userServiceImpl) Authenticate(
	ctx context.Context,
	email, password string,
) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login attempt for unknown email")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for login", "error", err)
		return nil, NewServiceError("authenticate", "failed to look up user", err)
	}

	if err := s.passwordVerifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login attempt with wrong password",
			"user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("user authenticated", "user_id", user.ID)
	return user, nil
}

// GetUser retrieves a user by ID.
func (s *userServiceImpl) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, err
		}
		s.logger.Error("failed to retrieve user",
			"error", err,
			"user_id", id)
		return nil, NewServiceError("get_user", "failed to retrieve user", err)
	}
	return user, nil
}
