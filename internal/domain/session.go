package domain

import "time"

// Session is a server-side session identity. The token is an opaque value
// carried by the browser in an HttpOnly cookie; expiry is enforced at lookup.
type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionRepository defines the interface for session persistence operations
type SessionRepository interface {
	Create(session *Session) error
	// GetByToken returns the session for token if it exists and has not
	// expired; expired rows are reported as ErrSessionNotFound.
	GetByToken(token string) (*Session, error)
	Delete(token string) error
	DeleteExpired() error
}
