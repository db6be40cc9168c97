package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/spendwise/spendwise/internal/domain"
	"github.com/spendwise/spendwise/internal/middleware"
	"github.com/spendwise/spendwise/internal/service"
)

// BudgetHandler handles the set-budget form
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// BudgetRow is one current-budget line with a pre-formatted amount
type BudgetRow struct {
	Category string
	Amount   string
}

// SetBudgetViewModel holds data for the set-budget page
type SetBudgetViewModel struct {
	Page
	CategoryOptions []categoryOption
	Budgets         []BudgetRow
	FormCategory    string
	FormAmount      string
}

// SetBudgetForm handles GET /set_budget
func (h *BudgetHandler) SetBudgetForm(c echo.Context) error {
	user := middleware.CurrentUser(c)

	vm := SetBudgetViewModel{
		Page:            Page{Title: "Set budget", Username: user.Username, Flash: popFlash(c)},
		CategoryOptions: categoryOptions(),
	}
	budgets, err := h.budgetService.ListBudgets(user.ID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to list budgets")
	} else {
		for _, b := range budgets {
			vm.Budgets = append(vm.Budgets, BudgetRow{
				Category: b.Category.Label(),
				Amount:   b.Amount.StringFixed(2),
			})
		}
	}

	return c.Render(http.StatusOK, "set_budget.html", vm)
}

// SetBudget handles POST /set_budget
func (h *BudgetHandler) SetBudget(c echo.Context) error {
	user := middleware.CurrentUser(c)
	category := c.FormValue("category")
	amount := c.FormValue("budget_amount")

	_, err := h.budgetService.SetBudget(user.ID, category, amount)
	if err != nil {
		message := "Something went wrong. Please try again."
		switch {
		case errors.Is(err, domain.ErrCategoryInvalid):
			message = "Please pick a category from the list."
		case errors.Is(err, domain.ErrAmountInvalid):
			message = "Budget amount must be a number."
		default:
			log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to set budget")
		}
		return c.Render(http.StatusOK, "set_budget.html", SetBudgetViewModel{
			Page:            Page{Title: "Set budget", Username: user.Username, Error: message},
			CategoryOptions: categoryOptions(),
			FormCategory:    category,
			FormAmount:      amount,
		})
	}

	setFlash(c, "Budget set successfully.")
	return c.Redirect(http.StatusFound, "/")
}
