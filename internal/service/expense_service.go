package service

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise/internal/domain"
)

// ExpenseService handles expense business logic
type ExpenseService struct {
	expenseRepo domain.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo domain.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// ExpenseList is a user's full ledger with derived totals
type ExpenseList struct {
	Expenses []*domain.Expense
	// Total is the sum of all amounts, derived at read time
	Total decimal.Decimal
	// Categories are the distinct categories present, in enumeration order
	Categories []domain.Category
}

// AddExpense validates and records one expense for userID. The amount must
// parse as a decimal; sign and range are not checked.
func (s *ExpenseService) AddExpense(userID int64, description, amount, category string) (*domain.Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, domain.ErrDescriptionRequired
	}
	if len(description) > domain.MaxDescriptionLength {
		description = description[:domain.MaxDescriptionLength]
	}

	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, domain.ErrAmountInvalid
	}

	cat, err := domain.ParseCategory(category)
	if err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.Create(&domain.Expense{
		UserID:      userID,
		Description: description,
		Amount:      value,
		Category:    cat,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("user_id", userID).Int64("expense_id", expense.ID).Str("category", cat.String()).Msg("Expense added")
	return expense, nil
}

// ListExpenses returns all expenses owned by userID in insertion order,
// together with the derived total and the set of categories present.
func (s *ExpenseService) ListExpenses(userID int64) (*ExpenseList, error) {
	expenses, err := s.expenseRepo.GetAllByUser(userID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	present := make(map[domain.Category]bool)
	for _, e := range expenses {
		total = total.Add(e.Amount)
		present[e.Category] = true
	}

	var categories []domain.Category
	for _, c := range domain.Categories() {
		if present[c] {
			categories = append(categories, c)
		}
	}

	return &ExpenseList{
		Expenses:   expenses,
		Total:      total,
		Categories: categories,
	}, nil
}
