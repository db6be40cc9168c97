package sqlite

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	repo := NewExpenseRepository(db)

	created, err := repo.Create(&domain.Expense{
		UserID:      user.ID,
		Description: "lunch",
		Amount:      decimal.RequireFromString("12.50"),
		Category:    domain.CategoryFood,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	expenses, err := repo.GetAllByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "lunch", expenses[0].Description)
	assert.True(t, expenses[0].Amount.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, domain.CategoryFood, expenses[0].Category)
}

func TestExpenseRepository_InsertionOrder(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	repo := NewExpenseRepository(db)

	for _, desc := range []string{"first", "second", "third"} {
		_, err := repo.Create(&domain.Expense{
			UserID:      user.ID,
			Description: desc,
			Amount:      decimal.NewFromInt(1),
			Category:    domain.CategoryOther,
		})
		require.NoError(t, err)
	}

	expenses, err := repo.GetAllByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, expenses, 3)
	assert.Equal(t, "first", expenses[0].Description)
	assert.Equal(t, "second", expenses[1].Description)
	assert.Equal(t, "third", expenses[2].Description)
}

func TestExpenseRepository_ScopedToUser(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	repo := NewExpenseRepository(db)

	_, err := repo.Create(&domain.Expense{
		UserID:      alice.ID,
		Description: "lunch",
		Amount:      decimal.NewFromInt(10),
		Category:    domain.CategoryFood,
	})
	require.NoError(t, err)

	expenses, err := repo.GetAllByUser(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestExpenseRepository_NegativeAmountRoundTrip(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	repo := NewExpenseRepository(db)

	_, err := repo.Create(&domain.Expense{
		UserID:      user.ID,
		Description: "refund",
		Amount:      decimal.RequireFromString("-5.25"),
		Category:    domain.CategoryOther,
	})
	require.NoError(t, err)

	expenses, err := repo.GetAllByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.True(t, expenses[0].Amount.Equal(decimal.RequireFromString("-5.25")))
}
