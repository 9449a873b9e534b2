package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/benjp009/affiliate-tracker/internal/models"
	"github.com/benjp009/affiliate-tracker/internal/repository"
	"github.com/benjp009/affiliate-tracker/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PartnerHandler struct {
	service service.PartnerService
	logger  *zap.Logger
}

func NewPartnerHandler(service service.PartnerService, logger *zap.Logger) *PartnerHandler {
	return &PartnerHandler{
		service: service,
		logger:  logger,
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CreatePartner создаёт партнёра (POST /api/partners)
func (h *PartnerHandler) CreatePartner(c *gin.Context) {
	var input models.CreatePartnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("Invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}

	partner, err := h.service.CreatePartner(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("Failed to create partner", zap.Error(err))

		if errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_status",
				Message: "Status must be one of: active, inactive, pending",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to create partner",
		})
		return
	}

	c.JSON(http.StatusCreated, partner)
}

// ListPartners возвращает всех партнёров со счётчиками ссылок (GET /api/partners)
func (h *PartnerHandler) ListPartners(c *gin.Context) {
	partners, err := h.service.ListPartners(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list partners", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to list partners",
		})
		return
	}

	c.JSON(http.StatusOK, partners)
}

// DeletePartner удаляет партнёра вместе с его ссылками (DELETE /api/partners/:id)
func (h *PartnerHandler) DeletePartner(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Partner ID must be an integer",
		})
		return
	}

	if err := h.service.DeletePartner(c.Request.Context(), id); err != nil {
		h.logger.Warn("Failed to delete partner", zap.Int64("id", id), zap.Error(err))

		if errors.Is(err, repository.ErrPartnerNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Partner not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to delete partner",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Partner deleted successfully"})
}

// parseID разбирает числовой идентификатор из path-параметра
func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
