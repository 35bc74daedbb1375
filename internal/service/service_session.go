package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// sessionService is the concrete implementation of SessionService.
// It binds authenticated users to UUID-keyed session rows and resolves
// incoming session identifiers back to full user records.
type sessionService struct {
	sessionRepository store.SessionRepository
	userRepository    store.UserRepository

	// sessionDuration controls how long a newly established session
	// remains valid.
	sessionDuration time.Duration

	// now is the clock used for expiry checks; overridable in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewSessionService constructs a SessionService wired to the given
// repositories and configured with the session lifetime from cfg.
func NewSessionService(sessionRepository store.SessionRepository, userRepository store.UserRepository, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		userRepository:    userRepository,
		sessionDuration:   cfg.SessionDuration,
		now:               time.Now,
		logger:            logger,
	}
}

// Establish opens a new session for the user.
//
// Any previous live sessions of the same user are revoked first, then a
// fresh UUID-keyed session row is inserted with the configured lifetime.
func (s *sessionService) Establish(ctx context.Context, user models.User) (models.Session, error) {
	log := logger.FromContext(ctx)

	if user.IsAnonymous() {
		log.Error().Msg("cannot establish session for anonymous user")
		return models.Session{}, ErrInvalidDataProvided
	}

	if err := s.sessionRepository.RevokeUserSessions(ctx, user.ID); err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("revoking previous sessions failed")
		return models.Session{}, fmt.Errorf("revoking previous sessions failed: %w", err)
	}

	now := s.now()
	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("session creation failed")
		return models.Session{}, fmt.Errorf("session creation failed: %w", err)
	}

	return session, nil
}

// Resolve maps a session identifier to its user.
//
// The user record is fetched fresh from the credential store on every call;
// nothing is cached between requests. A missing, expired or revoked session
// yields ErrNoActiveSession. A live session whose user record cannot be
// loaded is a hard error: the binding exists, so a failed lookup means the
// store is inconsistent, not that the visitor is anonymous.
func (s *sessionService) Resolve(ctx context.Context, sessionID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		return models.User{}, ErrNoActiveSession
	}

	session, err := s.sessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.User{}, ErrNoActiveSession
		}

		log.Err(err).Msg("session lookup failed")
		return models.User{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if !session.Live(s.now()) {
		return models.User{}, ErrNoActiveSession
	}

	user, err := s.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", session.UserID).Msg("user lookup for live session failed")
		return models.User{}, fmt.Errorf("user lookup for live session failed: %w", err)
	}

	return user, nil
}

// Revoke invalidates the session with the given identifier.
func (s *sessionService) Revoke(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.sessionRepository.RevokeSession(ctx, sessionID); err != nil {
		log.Err(err).Msg("session revocation failed")
		return fmt.Errorf("session revocation failed: %w", err)
	}

	return nil
}
