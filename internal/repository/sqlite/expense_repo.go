package sqlite

import (
	"database/sql"
	"time"

	"github.com/spendwise/spendwise/internal/domain"
)

// ExpenseRepository implements domain.ExpenseRepository using sqlite
type ExpenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create inserts a new expense owned by expense.UserID
func (r *ExpenseRepository) Create(expense *domain.Expense) (*domain.Expense, error) {
	now := time.Now().UTC()
	result, err := r.db.Exec(
		`INSERT INTO expenses (user_id, description, amount, category, created_at) VALUES (?, ?, ?, ?, ?)`,
		expense.UserID, expense.Description, expense.Amount.String(), expense.Category.String(), now,
	)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	created := *expense
	created.ID = id
	created.CreatedAt = now
	return &created, nil
}

// GetAllByUser retrieves all expenses owned by userID in insertion order.
// Listing order is insertion order (ORDER BY id): rows are never updated,
// so rowids are monotonic.
func (r *ExpenseRepository) GetAllByUser(userID int64) ([]*domain.Expense, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, description, amount, category, created_at
		 FROM expenses WHERE user_id = ? ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Amount, &e.Category, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, &e)
	}
	return expenses, rows.Err()
}
