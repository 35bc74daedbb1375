package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that email, password and name are non-empty, checks for an
// existing account with the same email, bcrypt-hashes the password, and
// delegates persistence to the UserRepository. The pre-check and the INSERT
// both map a taken email to [store.ErrEmailAlreadyExists], so a registration
// racing another one with the same email still surfaces the duplicate to the
// caller instead of being swallowed.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if any field is empty.
//   - store.ErrEmailAlreadyExists if the email is taken.
//   - A wrapped storage error if the repository call fails.
func (a *authService) RegisterUser(ctx context.Context, email, password, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" || name == "" {
		log.Error().Str("email", email).Str("name", name).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Warn().Str("email", email).Msg("email already registered")
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		Name:         name,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that email and password are non-empty, looks the account up
// by email, and compares the stored bcrypt hash with the supplied password.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - store.ErrUserNotFound if no account has the given email.
//   - ErrWrongPassword if the hash check fails.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("email", email).Msg("no user with such email")
			return models.User{}, err
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Warn().
			Int64("id", foundUser.ID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}
