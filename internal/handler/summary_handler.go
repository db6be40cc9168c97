package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/spendwise/spendwise/internal/chart"
	"github.com/spendwise/spendwise/internal/domain"
	"github.com/spendwise/spendwise/internal/middleware"
	"github.com/spendwise/spendwise/internal/service"
)

// SummaryHandler handles the per-category summary page and the chart image
type SummaryHandler struct {
	summaryService *service.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryService *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// SummaryRow is one per-category total with a pre-formatted amount
type SummaryRow struct {
	Category string
	Total    string
}

// SummaryViewModel holds data for the expense summary page
type SummaryViewModel struct {
	Page
	Rows []SummaryRow
}

// Summary handles GET /expense_summary
func (h *SummaryHandler) Summary(c echo.Context) error {
	user := middleware.CurrentUser(c)

	totals, err := h.summaryService.CategoryTotals(user.ID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to compute category totals")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compute summary")
	}

	vm := SummaryViewModel{
		Page: Page{Title: "Expense summary", Username: user.Username, Flash: popFlash(c)},
	}
	// Enumeration order; categories without expenses stay absent
	for _, cat := range domain.Categories() {
		total, ok := totals[cat]
		if !ok {
			continue
		}
		vm.Rows = append(vm.Rows, SummaryRow{Category: cat.Label(), Total: total.StringFixed(2)})
	}

	return c.Render(http.StatusOK, "expense_summary.html", vm)
}

// Chart handles GET /chart, responding with an image/png pie of the user's
// per-category totals
func (h *SummaryHandler) Chart(c echo.Context) error {
	user := middleware.CurrentUser(c)

	labels, values, err := h.summaryService.ChartData(user.ID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to compute chart data")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compute chart data")
	}

	c.Response().Header().Set(echo.HeaderContentType, "image/png")
	c.Response().WriteHeader(http.StatusOK)
	if err := chart.Pie(c.Response(), "Expense Distribution by Category", labels, values); err != nil {
		// Headers are already out; log and give up on this response
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to render chart")
		return err
	}
	return nil
}
