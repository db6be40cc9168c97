package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/spendwise/spendwise/internal/domain"
)

// SessionRepository implements domain.SessionRepository using sqlite
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session row
func (r *SessionRepository) Create(session *domain.Session) error {
	_, err := r.db.Exec(
		`INSERT INTO sessions (token, user_id, expires_at) VALUES (?, ?, ?)`,
		session.Token, session.UserID, session.ExpiresAt.UTC(),
	)
	return err
}

// GetByToken retrieves a live session by token. Expired rows are treated as
// absent; expiry is enforced here rather than by a background sweep.
func (r *SessionRepository) GetByToken(token string) (*domain.Session, error) {
	row := r.db.QueryRow(
		`SELECT token, user_id, expires_at, created_at FROM sessions WHERE token = ? AND expires_at > ?`,
		token, time.Now().UTC(),
	)
	var s domain.Session
	if err := row.Scan(&s.Token, &s.UserID, &s.ExpiresAt, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Delete removes a session by token
func (r *SessionRepository) Delete(token string) error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE token = ?`, token)
	return err
}

// DeleteExpired removes all expired session rows
func (r *SessionRepository) DeleteExpired() error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE expires_at <= ?`, time.Now().UTC())
	return err
}
