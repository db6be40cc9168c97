package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spendwise/spendwise/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, credential checks and session lifecycle
type AuthService struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	sessionTTL  time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository, sessionRepo domain.SessionRepository, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
	}
}

// Register creates a new account. Registration does not authenticate; the
// user logs in separately afterward.
func (s *AuthService) Register(username, password, confirm string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < domain.MinUsernameLength {
		return nil, domain.ErrUsernameTooShort
	}
	if len(username) > domain.MaxUsernameLength {
		return nil, domain.ErrUsernameTooLong
	}
	if len(password) < domain.MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}
	if confirm != password {
		return nil, domain.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Create(&domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("User registered")
	return user, nil
}

// Login verifies credentials and establishes a session. Unknown usernames
// and wrong passwords are indistinguishable to the caller: both return
// ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (*domain.Session, error) {
	user, err := s.userRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	log.Info().Int64("user_id", user.ID).Msg("User logged in")
	return session, nil
}

// Logout tears down the session unconditionally
func (s *AuthService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.Delete(token)
}

// UserFromSession resolves a session token to its user. Missing, expired or
// orphaned sessions all return ErrSessionNotFound.
func (s *AuthService) UserFromSession(token string) (*domain.User, error) {
	session, err := s.sessionRepo.GetByToken(token)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return user, nil
}

// SessionTTL returns the configured session lifetime
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}
