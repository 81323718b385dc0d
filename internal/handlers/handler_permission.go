package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portssvc "github.com/ProLedger/project_ledger_app/internal/core/ports/services"
	"github.com/ProLedger/project_ledger_app/internal/dto"
	"github.com/ProLedger/project_ledger_app/internal/middleware"
)

// permissionHandler handles HTTP requests for permission resolution and
// overrides.
type permissionHandler struct {
	permissionService portssvc.PermissionSvcFacade
}

// registerPermissionRoutes registers all permission-related routes.
func registerPermissionRoutes(rg *gin.RouterGroup, permissionService portssvc.PermissionSvcFacade) {
	h := &permissionHandler{permissionService: permissionService}

	rg.GET("/permissions/catalog", h.getCatalog)
	rg.GET("/users/:id/permissions", h.getEffectivePermissions)
	rg.PUT("/users/:id/permissions", h.savePermissions)
}

// getCatalog godoc
// @Summary List all known permissions
// @Description Returns every permission the system understands, grouped by category.
// @Tags permissions
// @Produce json
// @Success 200 {object} dto.PermissionCatalogResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /permissions/catalog [get]
func (h *permissionHandler) getCatalog(c *gin.Context) {
	if _, ok := requestingUserID(c); !ok {
		return
	}
	c.JSON(http.StatusOK, dto.PermissionCatalogResponse{Categories: domain.PermissionCatalog})
}

// getEffectivePermissions godoc
// @Summary Get a user's effective permissions
// @Description Returns the permissions a user actually holds after applying any override on top of role defaults.
// @Tags permissions
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.EffectivePermissionsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/permissions [get]
func (h *permissionHandler) getEffectivePermissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requestingUserID(c); !ok {
		return
	}

	resp, err := h.permissionService.GetEffectivePermissions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// savePermissions godoc
// @Summary Replace a user's permission override
// @Description Saves an override that replaces the user's role defaults entirely. Requires users.manage_permissions.
// @Tags permissions
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param permissions body dto.SavePermissionsRequest true "Permissions and limits"
// @Success 200 {object} dto.EffectivePermissionsResponse
// @Failure 400 {object} ErrorResponse "Unknown permission ID"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/permissions [put]
func (h *permissionHandler) savePermissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SavePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := requestingUserID(c)
	if !ok {
		return
	}

	resp, err := h.permissionService.SavePermissions(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
