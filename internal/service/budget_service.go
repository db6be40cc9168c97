package service

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise/internal/domain"
)

// BudgetService handles budget business logic
type BudgetService struct {
	budgetRepo domain.BudgetRepository
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo}
}

// SetBudget upserts the budget amount for (userID, category): the first set
// inserts a row, later sets overwrite the amount in place. Concurrent calls
// for the same pair race; last writer wins.
func (s *BudgetService) SetBudget(userID int64, category, amount string) (*domain.Budget, error) {
	cat, err := domain.ParseCategory(category)
	if err != nil {
		return nil, err
	}

	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, domain.ErrAmountInvalid
	}

	budget, err := s.budgetRepo.Upsert(&domain.Budget{
		UserID:   userID,
		Category: cat,
		Amount:   value,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("user_id", userID).Str("category", cat.String()).Str("amount", value.String()).Msg("Budget set")
	return budget, nil
}

// ListBudgets returns the user's budgets, at most one per category
func (s *BudgetService) ListBudgets(userID int64) ([]*domain.Budget, error) {
	return s.budgetRepo.GetAllByUser(userID)
}
