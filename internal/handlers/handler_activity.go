package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portssvc "github.com/ProLedger/project_ledger_app/internal/core/ports/services"
	"github.com/ProLedger/project_ledger_app/internal/dto"
	"github.com/ProLedger/project_ledger_app/internal/middleware"
)

// activityHandler exposes the append-only activity log.
type activityHandler struct {
	activityService   portssvc.ActivitySvcFacade
	permissionService portssvc.PermissionSvcFacade
}

// registerActivityRoutes registers the activity log routes.
func registerActivityRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvcFacade, permissionService portssvc.PermissionSvcFacade) {
	h := &activityHandler{
		activityService:   activityService,
		permissionService: permissionService,
	}
	rg.GET("/activity", h.listActivity)
}

// listActivity godoc
// @Summary List activity log entries
// @Description Returns activity entries newest first, filtered by user, entity, free-text search and date range. Requires system.view_logs.
// @Tags activity
// @Produce json
// @Param userId query string false "Filter by acting user"
// @Param entityType query string false "Filter by entity type"
// @Param entityId query string false "Filter by entity ID"
// @Param search query string false "Case-insensitive search over action, details and username"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date, inclusive (YYYY-MM-DD)"
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} dto.ListActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /activity [get]
func (h *activityHandler) listActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	allowed, err := h.permissionService.HasPermission(c.Request.Context(), userID, domain.PermSystemViewLogs)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	if !allowed {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	var params dto.ListActivityParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.activityService.ListActivity(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListActivityResponse{Entries: entries, Total: len(entries)})
}
