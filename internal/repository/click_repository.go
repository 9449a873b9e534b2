package repository

import (
	"context"
	"fmt"

	"github.com/benjp009/affiliate-tracker/internal/models"
	"github.com/jackc/pgx/v5"
)

type ClickRepository interface {
	RecordClick(ctx context.Context, click *models.Click) error
	GetDailyStats(ctx context.Context, linkID int64, days int) ([]models.DailyClickStats, error)
}

type clickRepository struct {
	db *PostgresDB
}

func NewClickRepository(db *PostgresDB) ClickRepository {
	return &clickRepository{db: db}
}

func (r *clickRepository) RecordClick(ctx context.Context, click *models.Click) error {
	query := `
		INSERT INTO click_events (link_id, ip_address, user_agent, referer, clicked_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		click.LinkID,
		click.IPAddress,
		click.UserAgent,
		click.Referer,
		click.ClickedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to record click: %w", err)
	}

	return nil
}

func (r *clickRepository) GetDailyStats(ctx context.Context, linkID int64, days int) ([]models.DailyClickStats, error) {
	query := `
		SELECT
			TO_CHAR(DATE(clicked_at), 'YYYY-MM-DD') AS date,
			COUNT(*) AS clicks
		FROM click_events
		WHERE link_id = $1
			AND clicked_at >= NOW() - INTERVAL '1 day' * $2
		GROUP BY DATE(clicked_at)
		ORDER BY date DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, linkID, days)
	if err != nil {
		if err == pgx.ErrNoRows {
			return []models.DailyClickStats{}, nil
		}
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}
	defer rows.Close()

	stats := []models.DailyClickStats{}
	for rows.Next() {
		var dailyStat models.DailyClickStats
		if err := rows.Scan(&dailyStat.Date, &dailyStat.Clicks); err != nil {
			return nil, fmt.Errorf("failed to scan daily stat: %w", err)
		}
		stats = append(stats, dailyStat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily stats: %w", err)
	}

	return stats, nil
}
