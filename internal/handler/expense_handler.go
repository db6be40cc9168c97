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

// ExpenseHandler handles the expense listing and the add-expense form
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRow is one listing line with a pre-formatted amount
type ExpenseRow struct {
	Description string
	Category    string
	Amount      string
}

// IndexViewModel holds data for the expense listing page
type IndexViewModel struct {
	Page
	Expenses   []ExpenseRow
	Total      string
	Categories []string
}

// AddExpenseViewModel holds data for the add-expense form
type AddExpenseViewModel struct {
	Page
	CategoryOptions []categoryOption
	FormDescription string
	FormAmount      string
	FormCategory    string
}

// Index handles GET /
func (h *ExpenseHandler) Index(c echo.Context) error {
	user := middleware.CurrentUser(c)

	list, err := h.expenseService.ListExpenses(user.ID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to list expenses")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list expenses")
	}

	vm := IndexViewModel{
		Page:  Page{Title: "Expenses", Username: user.Username, Flash: popFlash(c)},
		Total: list.Total.StringFixed(2),
	}
	for _, e := range list.Expenses {
		vm.Expenses = append(vm.Expenses, ExpenseRow{
			Description: e.Description,
			Category:    e.Category.Label(),
			Amount:      e.Amount.StringFixed(2),
		})
	}
	for _, cat := range list.Categories {
		vm.Categories = append(vm.Categories, cat.Label())
	}

	return c.Render(http.StatusOK, "index.html", vm)
}

// AddExpenseForm handles GET /add_expense
func (h *ExpenseHandler) AddExpenseForm(c echo.Context) error {
	user := middleware.CurrentUser(c)
	return c.Render(http.StatusOK, "add_expense.html", AddExpenseViewModel{
		Page:            Page{Title: "Add expense", Username: user.Username, Flash: popFlash(c)},
		CategoryOptions: categoryOptions(),
	})
}

// AddExpense handles POST /add_expense
func (h *ExpenseHandler) AddExpense(c echo.Context) error {
	user := middleware.CurrentUser(c)
	description := c.FormValue("description")
	amount := c.FormValue("amount")
	category := c.FormValue("category")

	_, err := h.expenseService.AddExpense(user.ID, description, amount, category)
	if err != nil {
		message := "Something went wrong. Please try again."
		switch {
		case errors.Is(err, domain.ErrDescriptionRequired):
			message = "Description is required."
		case errors.Is(err, domain.ErrAmountInvalid):
			message = "Amount must be a number."
		case errors.Is(err, domain.ErrCategoryInvalid):
			message = "Please pick a category from the list."
		default:
			log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to add expense")
		}
		return c.Render(http.StatusOK, "add_expense.html", AddExpenseViewModel{
			Page:            Page{Title: "Add expense", Username: user.Username, Error: message},
			CategoryOptions: categoryOptions(),
			FormDescription: description,
			FormAmount:      amount,
			FormCategory:    category,
		})
	}

	setFlash(c, "Expense added successfully.")
	return c.Redirect(http.StatusFound, "/")
}
