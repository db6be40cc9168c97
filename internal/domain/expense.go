package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single recorded spend owned by a user. Amounts carry any
// sign; there are no edit or delete operations.
type Expense struct {
	ID          int64
	UserID      int64
	Description string
	Amount      decimal.Decimal
	Category    Category
	CreatedAt   time.Time
}

// ExpenseRepository defines the interface for expense persistence operations
type ExpenseRepository interface {
	Create(expense *Expense) (*Expense, error)
	GetAllByUser(userID int64) ([]*Expense, error)
}
