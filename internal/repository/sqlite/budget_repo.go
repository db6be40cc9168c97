package sqlite

import (
	"database/sql"
	"errors"

	"github.com/spendwise/spendwise/internal/domain"
)

// BudgetRepository implements domain.BudgetRepository using sqlite
type BudgetRepository struct {
	db *sql.DB
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// Upsert inserts a budget for (user, category) or overwrites the amount of
// the existing row in place. Exactly one row per pair survives; the unique
// index backs the invariant, the upsert is the behavioral contract.
func (r *BudgetRepository) Upsert(budget *domain.Budget) (*domain.Budget, error) {
	_, err := r.db.Exec(
		`INSERT INTO budgets (user_id, category, amount) VALUES (?, ?, ?)
		 ON CONFLICT(user_id, category) DO UPDATE SET amount = excluded.amount`,
		budget.UserID, budget.Category.String(), budget.Amount.String(),
	)
	if err != nil {
		return nil, err
	}
	return r.GetByUserAndCategory(budget.UserID, budget.Category)
}

// GetByUserAndCategory retrieves the budget row for one (user, category) pair
func (r *BudgetRepository) GetByUserAndCategory(userID int64, category domain.Category) (*domain.Budget, error) {
	row := r.db.QueryRow(
		`SELECT id, user_id, category, amount FROM budgets WHERE user_id = ? AND category = ?`,
		userID, category.String(),
	)
	var b domain.Budget
	if err := row.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return &b, nil
}

// GetAllByUser retrieves all budgets owned by userID, one per category
func (r *BudgetRepository) GetAllByUser(userID int64) ([]*domain.Budget, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, category, amount FROM budgets WHERE user_id = ? ORDER BY category ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []*domain.Budget
	for rows.Next() {
		var b domain.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount); err != nil {
			return nil, err
		}
		budgets = append(budgets, &b)
	}
	return budgets, rows.Err()
}
