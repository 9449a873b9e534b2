package service

import (
	"context"
	"errors"
	"time"

	"github.com/benjp009/affiliate-tracker/internal/models"
	"github.com/benjp009/affiliate-tracker/internal/repository"
)

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// TransactionService интерфейс сервиса транзакций
type TransactionService interface {
	CreateTransaction(ctx context.Context, input *models.CreateTransactionInput) (*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, input *models.UpdateTransactionInput) (*models.Transaction, error)
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
}

func NewTransactionService(transactionRepo repository.TransactionRepository) TransactionService {
	return &transactionService{transactionRepo: transactionRepo}
}

func (s *transactionService) CreateTransaction(ctx context.Context, input *models.CreateTransactionInput) (*models.Transaction, error) {
	if input.AmountCollected < 0 || input.AmountPaid < 0 {
		return nil, ErrNegativeAmount
	}

	status := input.Status
	if status == "" {
		status = models.TransactionStatusPending
	}
	if !validTransactionStatus(status) {
		return nil, ErrInvalidStatus
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	transactionDate := time.Now()
	if input.TransactionDate != nil {
		transactionDate = *input.TransactionDate
	}

	tx := &models.Transaction{
		LinkID:          input.LinkID,
		OrderID:         input.OrderID,
		AmountCollected: input.AmountCollected,
		AmountPaid:      input.AmountPaid,
		Currency:        currency,
		Status:          status,
		TransactionDate: transactionDate,
		Notes:           input.Notes,
	}

	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.transactionRepo.List(ctx)
}

func (s *transactionService) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, id)
}

// UpdateTransaction частично обновляет транзакцию (статус/выплата);
// используется дашбордом для отметки "выплачено"
func (s *transactionService) UpdateTransaction(ctx context.Context, id int64, input *models.UpdateTransactionInput) (*models.Transaction, error) {
	if !validTransactionStatus(input.Status) {
		return nil, ErrInvalidStatus
	}
	if input.AmountPaid < 0 {
		return nil, ErrNegativeAmount
	}

	return s.transactionRepo.Update(ctx, id, input)
}

func validTransactionStatus(status string) bool {
	switch status {
	case models.TransactionStatusPending, models.TransactionStatusPaid, models.TransactionStatusCancelled:
		return true
	}
	return false
}
