package handler

import (
	"errors"
	"net/http"

	"github.com/benjp009/affiliate-tracker/internal/repository"
	"github.com/benjp009/affiliate-tracker/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	service service.AnalyticsService
	logger  *zap.Logger
}

func NewAnalyticsHandler(service service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		logger:  logger,
	}
}

// GetOverview сводка для дашборда (GET /api/analytics/overview)
func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	overview, err := h.service.GetOverview(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to get overview", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to get overview",
		})
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetPartnerAnalytics агрегаты по одному партнёру (GET /api/analytics/partner/:id)
func (h *AnalyticsHandler) GetPartnerAnalytics(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Partner ID must be an integer",
		})
		return
	}

	analytics, err := h.service.GetPartnerAnalytics(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("Failed to get partner analytics", zap.Int64("id", id), zap.Error(err))

		if errors.Is(err, repository.ErrPartnerNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Partner not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to get partner analytics",
		})
		return
	}

	c.JSON(http.StatusOK, analytics)
}
