package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/spendwise/spendwise/internal/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(e *echo.Echo, sessions *middleware.SessionMiddleware, authHandler *AuthHandler, expenseHandler *ExpenseHandler, budgetHandler *BudgetHandler, summaryHandler *SummaryHandler) {
	// Public routes
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)

	// Session-gated routes
	app := e.Group("", sessions.RequireSession())
	app.GET("/", expenseHandler.Index)
	app.GET("/add_expense", expenseHandler.AddExpenseForm)
	app.POST("/add_expense", expenseHandler.AddExpense)
	app.GET("/set_budget", budgetHandler.SetBudgetForm)
	app.POST("/set_budget", budgetHandler.SetBudget)
	app.GET("/expense_summary", summaryHandler.Summary)
	app.GET("/chart", summaryHandler.Chart)
	app.GET("/logout", authHandler.Logout)
}
