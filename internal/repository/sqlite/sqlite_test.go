package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/spendwise/spendwise/internal/domain"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a fresh database file in a per-test temp directory
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// createTestUser inserts a user and returns it
func createTestUser(t *testing.T, db *sql.DB, username string) *domain.User {
	t.Helper()
	user, err := NewUserRepository(db).Create(&domain.User{
		Username:     username,
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return user
}
