package domain

import "time"

// User represents a registered account. The password is stored only as a
// bcrypt hash; the record is never mutated after registration.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	Create(user *User) (*User, error)
	GetByID(id int64) (*User, error)
	GetByUsername(username string) (*User, error)
}
