package domain

import (
	"errors"
	"testing"
)

func TestParseCategory_Known(t *testing.T) {
	cat, err := ParseCategory("food")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cat != CategoryFood {
		t.Errorf("Expected food, got %s", cat)
	}
}

func TestParseCategory_NormalizesCaseAndSpace(t *testing.T) {
	cat, err := ParseCategory("  Housing ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cat != CategoryHousing {
		t.Errorf("Expected housing, got %s", cat)
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	_, err := ParseCategory("groceries")
	if !errors.Is(err, ErrCategoryInvalid) {
		t.Errorf("Expected ErrCategoryInvalid, got %v", err)
	}
}

func TestParseCategory_Empty(t *testing.T) {
	_, err := ParseCategory("")
	if !errors.Is(err, ErrCategoryInvalid) {
		t.Errorf("Expected ErrCategoryInvalid, got %v", err)
	}
}

func TestCategories_OrderAndValidity(t *testing.T) {
	cats := Categories()
	expected := []Category{CategoryFood, CategoryHousing, CategoryTransportation, CategoryEntertainment, CategoryOther}

	if len(cats) != len(expected) {
		t.Fatalf("Expected %d categories, got %d", len(expected), len(cats))
	}
	for i, cat := range cats {
		if cat != expected[i] {
			t.Errorf("Expected %s at position %d, got %s", expected[i], i, cat)
		}
		if !cat.Valid() {
			t.Errorf("Expected %s to be valid", cat)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryFood.Label(); got != "Food" {
		t.Errorf("Expected 'Food', got %q", got)
	}
	if got := CategoryTransportation.Label(); got != "Transportation" {
		t.Errorf("Expected 'Transportation', got %q", got)
	}
}
