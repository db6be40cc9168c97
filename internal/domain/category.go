package domain

import "strings"

// Category is the closed set of spending categories. Expense and budget
// validation both reference this single enumeration.
type Category string

const (
	CategoryFood           Category = "food"
	CategoryHousing        Category = "housing"
	CategoryTransportation Category = "transportation"
	CategoryEntertainment  Category = "entertainment"
	CategoryOther          Category = "other"
)

// Categories returns every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryHousing,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryOther,
	}
}

// ParseCategory normalizes and validates a raw form value.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", ErrCategoryInvalid
	}
	return c, nil
}

// Valid reports whether c is a member of the enumeration.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryHousing, CategoryTransportation, CategoryEntertainment, CategoryOther:
		return true
	}
	return false
}

// Label returns the human-readable form used on pages and chart slices.
func (c Category) Label() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

func (c Category) String() string {
	return string(c)
}
