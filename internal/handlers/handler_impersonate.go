package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portssvc "github.com/ProLedger/project_ledger_app/internal/core/ports/services"
	"github.com/ProLedger/project_ledger_app/internal/dto"
	"github.com/ProLedger/project_ledger_app/internal/middleware"
	"github.com/ProLedger/project_ledger_app/internal/platform/config"
	"github.com/ProLedger/project_ledger_app/internal/utils"
)

// impersonationHandler issues access tokens on behalf of another user.
type impersonationHandler struct {
	userService       portssvc.UserSvcFacade
	permissionService portssvc.PermissionSvcFacade
	activityService   portssvc.ActivitySvcFacade
	cfg               *config.Config
}

func registerImpersonationRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := &impersonationHandler{
		userService:       services.User,
		permissionService: services.Permission,
		activityService:   services.Activity,
		cfg:               cfg,
	}
	rg.POST("/users/:id/impersonate", h.impersonate)
}

// impersonate godoc
// @Summary Impersonate another user
// @Description Issues a short-lived token acting as the target user. The token records the real admin as the actor.
// @Tags users
// @Produce json
// @Param id path string true "Target user ID"
// @Success 200 {object} dto.ImpersonateResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/impersonate [post]
func (h *impersonationHandler) impersonate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, ok := requestingUserID(c)
	if !ok {
		return
	}
	targetID := c.Param("id")

	// An impersonated session must not chain into another one.
	if _, impersonating := middleware.GetImpersonatorIDFromContext(c); impersonating {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Already impersonating"})
		return
	}
	if targetID == actorID {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cannot impersonate yourself"})
		return
	}

	allowed, err := h.permissionService.HasPermission(c.Request.Context(), actorID, domain.PermSystemImpersonate)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	if !allowed {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	target, err := h.userService.GetUserByID(c.Request.Context(), targetID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	token, err := utils.GenerateImpersonationJWT(target.UserID, actorID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate impersonation token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("Impersonation token issued",
		slog.String("actor_id", actorID),
		slog.String("target_id", target.UserID))
	h.activityService.Log(c.Request.Context(), domain.ActivityLog{
		UserID:     actorID,
		Action:     "user.impersonated",
		EntityType: domain.EntityUser,
		EntityID:   target.UserID,
		Details:    "Started impersonating " + target.Username,
	})
	c.JSON(http.StatusOK, dto.ImpersonateResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(h.cfg.JWTExpiryDuration),
		User:      dto.ToUserResponse(target),
	})
}
