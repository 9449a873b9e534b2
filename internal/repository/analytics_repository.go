package repository

import (
	"context"
	"fmt"

	"github.com/benjp009/affiliate-tracker/internal/models"
)

type AnalyticsRepository interface {
	GetOverview(ctx context.Context) (*models.Overview, error)
	GetTopLinks(ctx context.Context, limit int) ([]models.TopLink, error)
	GetPartnerStats(ctx context.Context, partnerID int64) (*models.PartnerStats, error)
}

type analyticsRepository struct {
	db *PostgresDB
}

func NewAnalyticsRepository(db *PostgresDB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetOverview(ctx context.Context) (*models.Overview, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM affiliate_partners WHERE status = 'active'),
			(SELECT COUNT(*) FROM affiliate_links WHERE status = 'active'),
			(SELECT COUNT(*) FROM click_events),
			(SELECT COALESCE(SUM(amount_collected), 0) FROM transactions),
			(SELECT COALESCE(SUM(amount_paid), 0) FROM transactions WHERE status = 'paid'),
			(SELECT COALESCE(SUM(amount_collected), 0) FROM transactions WHERE status = 'pending')
	`

	overview := &models.Overview{}
	err := r.db.Pool.QueryRow(ctx, query).Scan(
		&overview.ActivePartners,
		&overview.ActiveLinks,
		&overview.TotalClicks,
		&overview.TotalCollected,
		&overview.TotalPaid,
		&overview.PendingAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get overview: %w", err)
	}

	overview.TotalCollected = Round2(overview.TotalCollected)
	overview.TotalPaid = Round2(overview.TotalPaid)
	overview.PendingAmount = Round2(overview.PendingAmount)

	return overview, nil
}

func (r *analyticsRepository) GetTopLinks(ctx context.Context, limit int) ([]models.TopLink, error) {
	// Рейтинг по собранной выручке; ссылки без транзакций не попадают
	query := linkColumns + `
		WHERE COALESCE(t.total_collected, 0) > 0
		ORDER BY t.total_collected DESC
		LIMIT $1
	`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top links: %w", err)
	}
	defer rows.Close()

	top := []models.TopLink{}
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		top = append(top, models.TopLink{
			Link:    *link,
			Revenue: link.Stats.TotalCollected,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top links: %w", err)
	}

	return top, nil
}

func (r *analyticsRepository) GetPartnerStats(ctx context.Context, partnerID int64) (*models.PartnerStats, error) {
	// Агрегаты считаются отдельными запросами: совместный JOIN кликов и
	// транзакций давал бы декартово произведение.
	stats := &models.PartnerStats{}

	linkQuery := `
		SELECT COUNT(*) FROM affiliate_links WHERE partner_id = $1
	`
	if err := r.db.Pool.QueryRow(ctx, linkQuery, partnerID).Scan(&stats.TotalLinks); err != nil {
		return nil, fmt.Errorf("failed to count partner links: %w", err)
	}

	clickQuery := `
		SELECT COUNT(*)
		FROM click_events c
		JOIN affiliate_links l ON l.id = c.link_id
		WHERE l.partner_id = $1
	`
	if err := r.db.Pool.QueryRow(ctx, clickQuery, partnerID).Scan(&stats.TotalClicks); err != nil {
		return nil, fmt.Errorf("failed to count partner clicks: %w", err)
	}

	var txCount int64
	txQuery := `
		SELECT COUNT(*),
			COALESCE(SUM(t.amount_collected), 0),
			COALESCE(SUM(t.amount_paid) FILTER (WHERE t.status = 'paid'), 0)
		FROM transactions t
		JOIN affiliate_links l ON l.id = t.link_id
		WHERE l.partner_id = $1
	`
	if err := r.db.Pool.QueryRow(ctx, txQuery, partnerID).Scan(
		&txCount, &stats.TotalCollected, &stats.TotalPaid,
	); err != nil {
		return nil, fmt.Errorf("failed to sum partner transactions: %w", err)
	}

	stats.TotalCollected = Round2(stats.TotalCollected)
	stats.TotalPaid = Round2(stats.TotalPaid)
	if stats.TotalClicks > 0 {
		stats.ConversionRate = Round2(float64(txCount) / float64(stats.TotalClicks) * 100)
	}

	return stats, nil
}
