package service

import (
	"testing"

	"github.com/spendwise/spendwise/internal/domain"
	"github.com/spendwise/spendwise/internal/testutil"
)

func TestCategoryTotals_SumsPerCategory(t *testing.T) {
	expenseRepo := testutil.NewMockExpenseRepository()
	expenseService := NewExpenseService(expenseRepo)
	summaryService := NewSummaryService(expenseRepo)

	if _, err := expenseService.AddExpense(1, "lunch", "10.00", "food"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := expenseService.AddExpense(1, "snack", "5.00", "food"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := expenseService.AddExpense(1, "rent", "20.00", "housing"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	totals, err := summaryService.CategoryTotals(1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(totals) != 2 {
		t.Fatalf("Expected totals for 2 categories, got %d", len(totals))
	}
	if totals[domain.CategoryFood].String() != "15" {
		t.Errorf("Expected food total 15, got %s", totals[domain.CategoryFood])
	}
	if totals[domain.CategoryHousing].String() != "20" {
		t.Errorf("Expected housing total 20, got %s", totals[domain.CategoryHousing])
	}
	if _, ok := totals[domain.CategoryOther]; ok {
		t.Error("Expected no entry for categories without expenses")
	}
}

func TestCategoryTotals_Empty(t *testing.T) {
	expenseRepo := testutil.NewMockExpenseRepository()
	summaryService := NewSummaryService(expenseRepo)

	totals, err := summaryService.CategoryTotals(1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(totals) != 0 {
		t.Errorf("Expected empty totals, got %v", totals)
	}
}

func TestChartData_EnumerationOrder(t *testing.T) {
	expenseRepo := testutil.NewMockExpenseRepository()
	expenseService := NewExpenseService(expenseRepo)
	summaryService := NewSummaryService(expenseRepo)

	// Insert out of enumeration order
	if _, err := expenseService.AddExpense(1, "movie", "8.00", "entertainment"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := expenseService.AddExpense(1, "lunch", "10.00", "food"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	labels, values, err := summaryService.ChartData(1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(labels) != 2 || len(values) != 2 {
		t.Fatalf("Expected 2 labels and 2 values, got %d and %d", len(labels), len(values))
	}
	if labels[0] != "Food" || labels[1] != "Entertainment" {
		t.Errorf("Expected [Food Entertainment], got %v", labels)
	}
	if values[0] != 10.0 || values[1] != 8.0 {
		t.Errorf("Expected [10 8], got %v", values)
	}
}

func TestChartData_Empty(t *testing.T) {
	summaryService := NewSummaryService(testutil.NewMockExpenseRepository())

	labels, values, err := summaryService.ChartData(1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(labels) != 0 || len(values) != 0 {
		t.Errorf("Expected empty chart data, got %v / %v", labels, values)
	}
}
