package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/benjp009/affiliate-tracker/internal/models"
	"github.com/benjp009/affiliate-tracker/internal/repository"
	"github.com/benjp009/affiliate-tracker/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LinkHandler struct {
	service        service.LinkService
	clickProcessor service.ClickProcessor
	logger         *zap.Logger
}

func NewLinkHandler(service service.LinkService, clickProcessor service.ClickProcessor, logger *zap.Logger) *LinkHandler {
	return &LinkHandler{
		service:        service,
		clickProcessor: clickProcessor,
		logger:         logger,
	}
}

// CreateLink создаёт партнёрскую ссылку (POST /api/links)
func (h *LinkHandler) CreateLink(c *gin.Context) {
	var input models.CreateLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("Invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}

	link, err := h.service.CreateLink(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("Failed to create link", zap.Error(err))

		switch {
		case errors.Is(err, service.ErrInvalidURL):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_url",
				Message: "Affiliate URL must start with http:// or https://",
			})
		case errors.Is(err, service.ErrInvalidCommission):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_commission",
				Message: "Commission rate must be between 0 and 100",
			})
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_status",
				Message: "Status must be one of: active, inactive, expired",
			})
		case errors.Is(err, repository.ErrPartnerNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "partner_not_found",
				Message: "Partner does not exist",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "internal_error",
				Message: "Failed to create link",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, link)
}

// ListLinks возвращает ссылки с опциональными фильтрами partner_id и status
// (GET /api/links?partner_id=&status=)
func (h *LinkHandler) ListLinks(c *gin.Context) {
	filter := models.LinkFilter{
		Status: c.Query("status"),
	}

	if raw := c.Query("partner_id"); raw != "" {
		partnerID, err := parseID(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_partner_id",
				Message: "partner_id must be an integer",
			})
			return
		}
		filter.PartnerID = &partnerID
	}

	links, err := h.service.ListLinks(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list links", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to list links",
		})
		return
	}

	c.JSON(http.StatusOK, links)
}

// DeleteLink удаляет ссылку (DELETE /api/links/:id)
func (h *LinkHandler) DeleteLink(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Link ID must be an integer",
		})
		return
	}

	if err := h.service.DeleteLink(c.Request.Context(), id); err != nil {
		h.logger.Warn("Failed to delete link", zap.Int64("id", id), zap.Error(err))

		if errors.Is(err, repository.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Link not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to delete link",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Link deleted successfully"})
}

// GetDailyClicks дневная статистика кликов (GET /api/links/:id/clicks/daily?days=)
func (h *LinkHandler) GetDailyClicks(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Link ID must be an integer",
		})
		return
	}

	days := 7
	if d := c.Query("days"); d != "" {
		if _, err := fmt.Sscanf(d, "%d", &days); err != nil || days < 1 || days > 90 {
			days = 7
		}
	}

	stats, err := h.clickProcessor.GetDailyStats(c.Request.Context(), id, days)
	if err != nil {
		h.logger.Warn("Failed to get daily stats", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to get daily stats",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Redirect переход по партнёрской ссылке с асинхронной записью клика (GET /r/:id)
func (h *LinkHandler) Redirect(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Link ID must be an integer",
		})
		return
	}

	link, err := h.service.GetLink(c.Request.Context(), id)
	if err != nil || link.Status != models.LinkStatusActive {
		h.logger.Warn("Link not found or inactive", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "Link not found or inactive",
		})
		return
	}

	// Асинхронная запись статистики
	clickEvent := &models.ClickEvent{
		LinkID:    link.ID,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referer:   c.Request.Referer(),
	}
	if err := h.clickProcessor.RecordClick(c.Request.Context(), clickEvent); err != nil {
		h.logger.Debug("Failed to record click (non-blocking)", zap.Error(err))
	}

	c.Redirect(http.StatusTemporaryRedirect, link.AffiliateURL)
}
