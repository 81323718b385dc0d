package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ProLedger/project_ledger_app/internal/core/ports/services"
	"github.com/ProLedger/project_ledger_app/internal/dto"
	"github.com/ProLedger/project_ledger_app/internal/middleware"
)

// projectHandler handles HTTP requests for projects and their nested
// financial records.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{projectService: ps}
}

// RegisterProjectRoutes registers all project-related routes.
func RegisterProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.POST("", h.createProject)
		projects.GET("/:id", h.getProject)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
		projects.POST("/:id/archive", h.archiveProject)
		projects.POST("/:id/unarchive", h.unarchiveProject)

		projects.POST("/:id/incomes", h.addIncome)
		projects.PUT("/:id/incomes/:recordID", h.updateIncome)
		projects.DELETE("/:id/incomes/:recordID", h.deleteIncome)

		projects.POST("/:id/expenses", h.addExpense)
		projects.PUT("/:id/expenses/:recordID", h.updateExpense)
		projects.DELETE("/:id/expenses/:recordID", h.deleteExpense)

		projects.POST("/:id/milestones", h.addMilestone)
		projects.PUT("/:id/milestones/:recordID", h.updateMilestone)
		projects.DELETE("/:id/milestones/:recordID", h.deleteMilestone)

		projects.POST("/:id/suppliers", h.addProjectSupplier)
		projects.DELETE("/:id/suppliers/:supplierID", h.removeProjectSupplier)
	}
}

// listProjects godoc
// @Summary List visible projects
// @Description Lists projects the caller may see. Non-privileged users only see their own.
// @Tags projects
// @Produce json
// @Param includeArchived query bool false "Include archived projects"
// @Success 200 {object} dto.ListProjectsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}
	includeArchived, _ := strconv.ParseBool(c.DefaultQuery("includeArchived", "false"))

	projects, err := h.projectService.ListProjects(c.Request.Context(), userID, includeArchived)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListProjectsResponse(projects))
}

// getProject godoc
// @Summary Get a project
// @Description Retrieves one project with its nested records. Projects invisible to the caller report as not found.
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProjectByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// createProject godoc
// @Summary Create a project
// @Description Creates a project owned by the caller, or by another user for privileged callers. Enforces the caller's project limit.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Project limit reached or missing permission"
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// updateProject godoc
// @Summary Update a project
// @Description Updates project fields. A contract amount change recalculates every milestone percentage.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// deleteProject godoc
// @Summary Delete a project
// @Description Removes a project and all nested records.
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 204 {object} nil
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// archiveProject godoc
// @Summary Archive a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id}/archive [post]
func (h *projectHandler) archiveProject(c *gin.Context) {
	h.setArchived(c, true)
}

// unarchiveProject godoc
// @Summary Unarchive a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id}/unarchive [post]
func (h *projectHandler) unarchiveProject(c *gin.Context) {
	h.setArchived(c, false)
}

func (h *projectHandler) setArchived(c *gin.Context, archived bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	project, err := h.projectService.SetProjectArchived(c.Request.Context(), c.Param("id"), archived, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// addIncome godoc
// @Summary Add an income to a project
// @Description Adds an income entry. Remaining amount and payment status are derived server-side.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} domain.Income
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id}/incomes [post]
func (h *projectHandler) addIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	income, err := h.projectService.AddIncome(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, income)
}

func (h *projectHandler) updateIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	income, err := h.projectService.UpdateIncome(c.Request.Context(), c.Param("id"), c.Param("recordID"), req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, income)
}

func (h *projectHandler) deleteIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteIncome(c.Request.Context(), c.Param("id"), c.Param("recordID"), userID); err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// addExpense godoc
// @Summary Add an expense to a project
// @Description Adds an expense entry. The VAT-inclusive amount is derived from the pre-VAT amount when hasVat is set.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} domain.Expense
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id}/expenses [post]
func (h *projectHandler) addExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	expense, err := h.projectService.AddExpense(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *projectHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	expense, err := h.projectService.UpdateExpense(c.Request.Context(), c.Param("id"), c.Param("recordID"), req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (h *projectHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteExpense(c.Request.Context(), c.Param("id"), c.Param("recordID"), userID); err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// addMilestone godoc
// @Summary Add a milestone to a project
// @Description Adds a milestone. Its percentage of the contract amount is derived server-side.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param milestone body dto.CreateMilestoneRequest true "Milestone details"
// @Success 201 {object} domain.Milestone
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id}/milestones [post]
func (h *projectHandler) addMilestone(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	milestone, err := h.projectService.AddMilestone(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, milestone)
}

func (h *projectHandler) updateMilestone(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	milestone, err := h.projectService.UpdateMilestone(c.Request.Context(), c.Param("id"), c.Param("recordID"), req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, milestone)
}

func (h *projectHandler) deleteMilestone(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteMilestone(c.Request.Context(), c.Param("id"), c.Param("recordID"), userID); err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// addProjectSupplier godoc
// @Summary Assign a supplier to a project
// @Description Links an existing supplier to a project. Duplicate links are rejected.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param supplier body dto.AddProjectSupplierRequest true "Assignment details"
// @Success 201 {object} domain.ProjectSupplier
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Project or supplier not found"
// @Failure 409 {object} ErrorResponse "Supplier already assigned"
// @Security BearerAuth
// @Router /projects/{id}/suppliers [post]
func (h *projectHandler) addProjectSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddProjectSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	link, err := h.projectService.AddProjectSupplier(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (h *projectHandler) removeProjectSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	if err := h.projectService.RemoveProjectSupplier(c.Request.Context(), c.Param("id"), c.Param("supplierID"), userID); err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
