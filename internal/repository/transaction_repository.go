package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benjp009/affiliate-tracker/internal/models"
	"github.com/jackc/pgx/v5"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	List(ctx context.Context) ([]models.Transaction, error)
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	Update(ctx context.Context, id int64, input *models.UpdateTransactionInput) (*models.Transaction, error)
}

type transactionRepository struct {
	db *PostgresDB
}

func NewTransactionRepository(db *PostgresDB) TransactionRepository {
	return &transactionRepository{db: db}
}

// transactionColumns общий SELECT с денормализованным брендом из ссылки
const transactionColumns = `
	SELECT t.id, t.link_id, l.brand_name, t.order_id,
		t.amount_collected, t.amount_paid, t.currency, t.status,
		t.transaction_date, t.payout_date, t.notes
	FROM transactions t
	LEFT JOIN affiliate_links l ON l.id = t.link_id
`

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions
			(link_id, order_id, amount_collected, amount_paid, currency, status, transaction_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, query,
		tx.LinkID,
		tx.OrderID,
		tx.AmountCollected,
		tx.AmountPaid,
		tx.Currency,
		tx.Status,
		tx.TransactionDate,
		tx.Notes,
	).Scan(&tx.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

func (r *transactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	query := transactionColumns + ` ORDER BY t.transaction_date DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	query := transactionColumns + ` WHERE t.id = $1`

	tx, err := scanTransaction(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	return tx, nil
}

func (r *transactionRepository) Update(ctx context.Context, id int64, input *models.UpdateTransactionInput) (*models.Transaction, error) {
	// Частичное обновление: статус, выплаченная сумма и дата выплаты.
	// Дата выплаты проставляется, если её не прислали, а статус стал paid.
	payoutDate := input.PayoutDate
	if payoutDate == nil && input.Status == models.TransactionStatusPaid {
		now := time.Now()
		payoutDate = &now
	}

	query := `
		UPDATE transactions
		SET status = $2, amount_paid = $3, payout_date = COALESCE($4, payout_date)
		WHERE id = $1
	`

	result, err := r.db.Pool.Exec(ctx, query, id, input.Status, input.AmountPaid, payoutDate)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if result.RowsAffected() == 0 {
		return nil, ErrTransactionNotFound
	}

	return r.GetByID(ctx, id)
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	tx := &models.Transaction{}

	err := row.Scan(
		&tx.ID, &tx.LinkID, &tx.BrandName, &tx.OrderID,
		&tx.AmountCollected, &tx.AmountPaid, &tx.Currency, &tx.Status,
		&tx.TransactionDate, &tx.PayoutDate, &tx.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	tx.AmountCollected = Round2(tx.AmountCollected)
	tx.AmountPaid = Round2(tx.AmountPaid)

	return tx, nil
}
