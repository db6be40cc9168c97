package service

import (
	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise/internal/domain"
)

// SummaryService reduces a user's expenses into per-category totals for the
// summary page and the chart renderer
type SummaryService struct {
	expenseRepo domain.ExpenseRepository
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(expenseRepo domain.ExpenseRepository) *SummaryService {
	return &SummaryService{expenseRepo: expenseRepo}
}

// CategoryTotals returns category -> sum of amounts for userID. Categories
// with no expenses are absent from the map, not zero. Map iteration order is
// unspecified; callers that need ordering use ChartData.
func (s *SummaryService) CategoryTotals(userID int64) (map[domain.Category]decimal.Decimal, error) {
	expenses, err := s.expenseRepo.GetAllByUser(userID)
	if err != nil {
		return nil, err
	}

	totals := make(map[domain.Category]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals, nil
}

// ChartData materializes the same aggregation as two parallel slices in
// enumeration order. An empty expense set yields empty slices.
func (s *SummaryService) ChartData(userID int64) (labels []string, values []float64, err error) {
	totals, err := s.CategoryTotals(userID)
	if err != nil {
		return nil, nil, err
	}

	for _, c := range domain.Categories() {
		total, ok := totals[c]
		if !ok {
			continue
		}
		labels = append(labels, c.Label())
		values = append(values, total.InexactFloat64())
	}
	return labels, values, nil
}
