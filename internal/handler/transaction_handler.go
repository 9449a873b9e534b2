package handler

import (
	"errors"
	"net/http"

	"github.com/benjp009/affiliate-tracker/internal/models"
	"github.com/benjp009/affiliate-tracker/internal/repository"
	"github.com/benjp009/affiliate-tracker/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	service service.TransactionService
	logger  *zap.Logger
}

func NewTransactionHandler(service service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: service,
		logger:  logger,
	}
}

// CreateTransaction создаёт транзакцию (POST /api/transactions)
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var input models.CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("Invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}

	tx, err := h.service.CreateTransaction(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("Failed to create transaction", zap.Error(err))

		switch {
		case errors.Is(err, service.ErrNegativeAmount):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "negative_amount",
				Message: "Amounts must not be negative",
			})
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_status",
				Message: "Status must be one of: pending, paid, cancelled",
			})
		case errors.Is(err, repository.ErrLinkNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "link_not_found",
				Message: "Link does not exist",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "internal_error",
				Message: "Failed to create transaction",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// ListTransactions возвращает транзакции, новые первыми (GET /api/transactions)
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.service.ListTransactions(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to list transactions",
		})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// UpdateTransaction частично обновляет транзакцию (PUT /api/transactions/:id).
// Дашборд использует этот endpoint для отметки "выплачено".
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Transaction ID must be an integer",
		})
		return
	}

	var input models.UpdateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("Invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}

	tx, err := h.service.UpdateTransaction(c.Request.Context(), id, &input)
	if err != nil {
		h.logger.Warn("Failed to update transaction", zap.Int64("id", id), zap.Error(err))

		switch {
		case errors.Is(err, repository.ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Transaction not found",
			})
		case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrNegativeAmount):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_request",
				Message: err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "internal_error",
				Message: "Failed to update transaction",
			})
		}
		return
	}

	c.JSON(http.StatusOK, tx)
}
