package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/attendly/attendly/internal/app/models/dto"
	"github.com/attendly/attendly/internal/app/services"
	"github.com/attendly/attendly/internal/middleware"
)

// DashboardController handles the role-shaped dashboard endpoint
type DashboardController struct {
	dashboardService services.DashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Dashboard returns the payload for the authenticated role
// @Summary Get the role-shaped dashboard
// @Description Admins get headline counts and the user list, teachers their courses, students their statistics. Pending accounts get the awaiting-approval state.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=services.Dashboard} "Dashboard payload"
// @Failure 404 {object} dto.ErrorResponse "Identity missing from the roster"
// @Router /dashboard [get]
func (c *DashboardController) Dashboard(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}
	role, _ := middleware.CurrentRole(ctx)

	dashboard, err := c.dashboardService.For(role, userID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Str("role", string(role)).Msg("Dashboard resolution failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}
