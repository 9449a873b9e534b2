package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/benjp009/affiliate-tracker/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type LinkRepository interface {
	Create(ctx context.Context, link *models.Link) error
	List(ctx context.Context, filter models.LinkFilter) ([]models.Link, error)
	GetByID(ctx context.Context, id int64) (*models.Link, error)
	Delete(ctx context.Context, id int64) error
}

type linkRepository struct {
	db *PostgresDB
}

func NewLinkRepository(db *PostgresDB) LinkRepository {
	return &linkRepository{db: db}
}

// linkColumns общий SELECT со статистикой кликов и денег по каждой ссылке
const linkColumns = `
	SELECT l.id, l.partner_id, p.name AS partner_name, l.brand_name, l.product_name,
		l.affiliate_url, l.original_url, l.commission_rate, l.status, l.created_at,
		COALESCE(c.total_clicks, 0) AS total_clicks,
		COALESCE(t.tx_count, 0) AS tx_count,
		COALESCE(t.total_collected, 0) AS total_collected,
		COALESCE(t.total_paid, 0) AS total_paid,
		COALESCE(t.pending_amount, 0) AS pending_amount
	FROM affiliate_links l
	JOIN affiliate_partners p ON p.id = l.partner_id
	LEFT JOIN (
		SELECT link_id, COUNT(*) AS total_clicks
		FROM click_events
		GROUP BY link_id
	) c ON c.link_id = l.id
	LEFT JOIN (
		SELECT link_id,
			COUNT(*) AS tx_count,
			SUM(amount_collected) AS total_collected,
			SUM(amount_paid) FILTER (WHERE status = 'paid') AS total_paid,
			SUM(amount_collected) FILTER (WHERE status = 'pending') AS pending_amount
		FROM transactions
		GROUP BY link_id
	) t ON t.link_id = l.id
`

func (r *linkRepository) Create(ctx context.Context, link *models.Link) error {
	query := `
		INSERT INTO affiliate_links
			(partner_id, brand_name, product_name, affiliate_url, original_url, commission_rate, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		link.PartnerID,
		link.BrandName,
		link.ProductName,
		link.AffiliateURL,
		link.OriginalURL,
		link.CommissionRate,
		link.Status,
	).Scan(&link.ID, &link.CreatedAt)

	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrPartnerNotFound
		}
		return fmt.Errorf("failed to create link: %w", err)
	}

	return nil
}

func (r *linkRepository) List(ctx context.Context, filter models.LinkFilter) ([]models.Link, error) {
	query := linkColumns + ` WHERE ($1::bigint IS NULL OR l.partner_id = $1)
		AND ($2 = '' OR l.status = $2)
		ORDER BY l.created_at DESC`

	rows, err := r.db.Pool.Query(ctx, query, filter.PartnerID, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer rows.Close()

	links := []models.Link{}
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, *link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating links: %w", err)
	}

	return links, nil
}

func (r *linkRepository) GetByID(ctx context.Context, id int64) (*models.Link, error) {
	query := linkColumns + ` WHERE l.id = $1`

	link, err := scanLink(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}

	return link, nil
}

func (r *linkRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM affiliate_links WHERE id = $1`

	result, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrLinkNotFound
	}

	return nil
}

// scanLink читает строку linkColumns и досчитывает производные поля
func scanLink(row pgx.Row) (*models.Link, error) {
	link := &models.Link{}
	var txCount int64

	err := row.Scan(
		&link.ID, &link.PartnerID, &link.PartnerName, &link.BrandName, &link.ProductName,
		&link.AffiliateURL, &link.OriginalURL, &link.CommissionRate, &link.Status, &link.CreatedAt,
		&link.Stats.TotalClicks, &txCount,
		&link.Stats.TotalCollected, &link.Stats.TotalPaid, &link.Stats.PendingAmount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan link: %w", err)
	}

	link.Stats.TotalCollected = Round2(link.Stats.TotalCollected)
	link.Stats.TotalPaid = Round2(link.Stats.TotalPaid)
	link.Stats.PendingAmount = Round2(link.Stats.PendingAmount)
	if link.Stats.TotalClicks > 0 {
		link.Stats.ConversionRate = Round2(float64(txCount) / float64(link.Stats.TotalClicks) * 100)
	}

	return link, nil
}

// Round2 округляет денежные суммы и проценты до 2 знаков
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// isForeignKeyViolation проверяет нарушение внешнего ключа (код 23503)
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
