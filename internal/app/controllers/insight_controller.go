package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/attendly/attendly/internal/app/models/dto"
	"github.com/attendly/attendly/internal/app/services"
	"github.com/attendly/attendly/internal/middleware"
)

// InsightController handles generative insight and chat operations
type InsightController struct {
	insightService services.InsightService
	authService    services.AuthService
	logger         zerolog.Logger
}

// NewInsightController creates a new InsightController
func NewInsightController(insightService services.InsightService, authService services.AuthService, logger zerolog.Logger) *InsightController {
	return &InsightController{
		insightService: insightService,
		authService:    authService,
		logger:         logger,
	}
}

// Insights answers an analytical query over the dataset
// @Summary Generate insights
// @Tags insights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.InsightRequest true "Analytical query"
// @Success 200 {object} dto.APIResponse{data=dto.InsightResponse} "Generated answer"
// @Failure 502 {object} dto.ErrorResponse "Insight service unavailable"
// @Router /insights [post]
func (c *InsightController) Insights(ctx *gin.Context) {
	var req dto.InsightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	text, err := c.insightService.Insights(ctx.Request.Context(), req.Query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.InsightResponse{Text: text}))
}

// Chat answers one stateless chat message with the acting user as context
// @Summary Chat with the assistant
// @Tags insights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChatRequest true "Chat message"
// @Success 200 {object} dto.APIResponse{data=dto.InsightResponse} "Generated reply"
// @Failure 502 {object} dto.ErrorResponse "Insight service unavailable"
// @Router /chat [post]
func (c *InsightController) Chat(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	user, err := c.authService.Profile(userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	text, err := c.insightService.Chat(ctx.Request.Context(), user, req.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.InsightResponse{Text: text}))
}
