package domain

import "github.com/shopspring/decimal"

// Budget is the spending target for one (user, category) pair. At most one
// row exists per pair; setting a budget again overwrites the amount in place.
type Budget struct {
	ID       int64
	UserID   int64
	Category Category
	Amount   decimal.Decimal
}

// BudgetRepository defines the interface for budget persistence operations
type BudgetRepository interface {
	Upsert(budget *Budget) (*Budget, error)
	GetByUserAndCategory(userID int64, category Category) (*Budget, error)
	GetAllByUser(userID int64) ([]*Budget, error)
}
