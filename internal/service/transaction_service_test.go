package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjp009/affiliate-tracker/internal/models"
	"github.com/benjp009/affiliate-tracker/internal/repository"
	"github.com/benjp009/affiliate-tracker/internal/service"
	"github.com/benjp009/affiliate-tracker/internal/service/mocks"
)

// TestTransactionService_CreateTransaction_Defaults проверяет значения по умолчанию
func TestTransactionService_CreateTransaction_Defaults(t *testing.T) {
	txService := service.NewTransactionService(mocks.NewMockTransactionRepository())

	ctx := context.Background()
	tx, err := txService.CreateTransaction(ctx, &models.CreateTransactionInput{
		LinkID:          1,
		AmountCollected: 25.50,
	})

	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPending, tx.Status)
	assert.Equal(t, "USD", tx.Currency)
	assert.WithinDuration(t, time.Now(), tx.TransactionDate, time.Minute)
	assert.Nil(t, tx.PayoutDate)
}

// TestTransactionService_CreateTransaction_NegativeAmount отрицательные суммы отклоняются
func TestTransactionService_CreateTransaction_NegativeAmount(t *testing.T) {
	txService := service.NewTransactionService(mocks.NewMockTransactionRepository())

	ctx := context.Background()
	tx, err := txService.CreateTransaction(ctx, &models.CreateTransactionInput{
		LinkID:          1,
		AmountCollected: -5,
	})

	assert.ErrorIs(t, err, service.ErrNegativeAmount)
	assert.Nil(t, tx)
}

// TestTransactionService_CreateTransaction_InvalidStatus неизвестный статус отклоняется
func TestTransactionService_CreateTransaction_InvalidStatus(t *testing.T) {
	txService := service.NewTransactionService(mocks.NewMockTransactionRepository())

	ctx := context.Background()
	tx, err := txService.CreateTransaction(ctx, &models.CreateTransactionInput{
		LinkID:          1,
		AmountCollected: 10,
		Status:          "refunded",
	})

	assert.ErrorIs(t, err, service.ErrInvalidStatus)
	assert.Nil(t, tx)
}

// TestTransactionService_MarkAsPaid перевод в paid выставляет сумму и дату выплаты
func TestTransactionService_MarkAsPaid(t *testing.T) {
	txService := service.NewTransactionService(mocks.NewMockTransactionRepository())

	ctx := context.Background()
	created, err := txService.CreateTransaction(ctx, &models.CreateTransactionInput{
		LinkID:          42,
		AmountCollected: 19.99,
	})
	require.NoError(t, err)
	require.Equal(t, models.TransactionStatusPending, created.Status)

	updated, err := txService.UpdateTransaction(ctx, created.ID, &models.UpdateTransactionInput{
		Status:     models.TransactionStatusPaid,
		AmountPaid: 19.99,
	})

	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPaid, updated.Status)
	assert.Equal(t, 19.99, updated.AmountPaid)
	require.NotNil(t, updated.PayoutDate)
	assert.WithinDuration(t, time.Now(), *updated.PayoutDate, time.Minute)
}

// TestTransactionService_UpdateTransaction_NotFound обновление несуществующей транзакции
func TestTransactionService_UpdateTransaction_NotFound(t *testing.T) {
	txService := service.NewTransactionService(mocks.NewMockTransactionRepository())

	ctx := context.Background()
	tx, err := txService.UpdateTransaction(ctx, 999, &models.UpdateTransactionInput{
		Status: models.TransactionStatusPaid,
	})

	assert.ErrorIs(t, err, repository.ErrTransactionNotFound)
	assert.Nil(t, tx)
}

// TestTransactionService_UpdateTransaction_Validation статус и сумма валидируются до обращения к БД
func TestTransactionService_UpdateTransaction_Validation(t *testing.T) {
	txService := service.NewTransactionService(mocks.NewMockTransactionRepository())
	ctx := context.Background()

	_, err := txService.UpdateTransaction(ctx, 1, &models.UpdateTransactionInput{
		Status: "refunded",
	})
	assert.ErrorIs(t, err, service.ErrInvalidStatus)

	_, err = txService.UpdateTransaction(ctx, 1, &models.UpdateTransactionInput{
		Status:     models.TransactionStatusPaid,
		AmountPaid: -1,
	})
	assert.ErrorIs(t, err, service.ErrNegativeAmount)
}
