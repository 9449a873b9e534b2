package models

import (
	"time"
)

// Статусы транзакций
const (
	TransactionStatusPending   = "pending"
	TransactionStatusPaid      = "paid"
	TransactionStatusCancelled = "cancelled"
)

type Transaction struct {
	ID              int64      `json:"id"`
	LinkID          int64      `json:"link_id"`
	BrandName       *string    `json:"brand_name"` // денормализовано из ссылки, null если ссылка удалена
	OrderID         *string    `json:"order_id"`
	AmountCollected float64    `json:"amount_collected"`
	AmountPaid      float64    `json:"amount_paid"`
	Currency        string     `json:"currency"`
	Status          string     `json:"status"`
	TransactionDate time.Time  `json:"transaction_date"`
	PayoutDate      *time.Time `json:"payout_date"`
	Notes           *string    `json:"notes"`
}

type CreateTransactionInput struct {
	LinkID          int64      `json:"link_id" binding:"required"`
	OrderID         *string    `json:"order_id,omitempty"`
	AmountCollected float64    `json:"amount_collected"`
	AmountPaid      float64    `json:"amount_paid,omitempty"`
	Currency        string     `json:"currency,omitempty"`
	Status          string     `json:"status,omitempty"`
	TransactionDate *time.Time `json:"transaction_date,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

// UpdateTransactionInput частичное обновление; используется для отметки выплаты
type UpdateTransactionInput struct {
	Status     string     `json:"status" binding:"required"`
	AmountPaid float64    `json:"amount_paid"`
	PayoutDate *time.Time `json:"payout_date,omitempty"`
}
