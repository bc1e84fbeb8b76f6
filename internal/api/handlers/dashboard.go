package handlers

import (
	"net/http"
	"strconv"

	"github.com/commishhq/commission-tracker-backend/internal/api/response"
	"github.com/commishhq/commission-tracker-backend/internal/apperrors"
	"github.com/commishhq/commission-tracker-backend/internal/service"
)

// DashboardHandler handles HTTP requests for dashboard endpoints.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler with the provided service dependency.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Summary handles GET requests to retrieve the dashboard summary.
// The optional "financial_year" query parameter selects the year; it
// defaults to the current financial year.
//
// Endpoint: GET /api/dashboard/summary
// Response: 200 OK with DashboardSummary
// Error: 500 Internal Server Error if aggregation fails
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.GetSummary(r.Context(), r.URL.Query().Get("financial_year"))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// FinancialYears handles GET requests to retrieve the selectable
// financial-year labels, newest first. The optional "count" query parameter
// caps the list (default 5).
//
// Endpoint: GET /api/dashboard/financial-years
// Response: 200 OK with array of strings
func (h *DashboardHandler) FinancialYears(w http.ResponseWriter, r *http.Request) {
	count := 5
	if c := r.URL.Query().Get("count"); c != "" {
		if parsed, err := strconv.Atoi(c); err == nil && parsed > 0 {
			count = parsed
		}
	}

	response.RespondJSON(w, http.StatusOK, h.dashboardService.GetFinancialYearOptions(count))
}
