package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ProLedger/project_ledger_app/internal/core/ports/services"
	"github.com/ProLedger/project_ledger_app/internal/dto"
	"github.com/ProLedger/project_ledger_app/internal/middleware"
)

// reportingHandler exposes the financial report and dashboard endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// registerReportingRoutes registers all reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/financial", h.financialReport)
		reports.GET("/dashboard", h.dashboard)
	}
}

// financialReport godoc
// @Summary Build the financial report
// @Description Aggregates revenue, expenses and profit over the selected period, restricted to projects the caller may see. Requires reports.view.
// @Tags reports
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date, inclusive (YYYY-MM-DD)"
// @Param projectId query []string false "Restrict to specific projects"
// @Param ownerId query []string false "Restrict to specific owners"
// @Param includeArchived query bool false "Include archived projects"
// @Success 200 {object} domain.FinancialReport
// @Failure 400 {object} ErrorResponse "Invalid or inverted date range"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/financial [get]
func (h *reportingHandler) financialReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	var params dto.FinancialReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.FinancialReport(c.Request.Context(), params, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// dashboard godoc
// @Summary Build dashboard statistics
// @Description Aggregates project, user and activity statistics over a rolling window. Requires reports.dashboard.
// @Tags reports
// @Produce json
// @Param window query string false "Rolling window (7d, 30d, 90d, 1y)"
// @Success 200 {object} domain.DashboardStats
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) dashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	stats, err := h.reportingService.Dashboard(c.Request.Context(), params, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
