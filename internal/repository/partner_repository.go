package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/benjp009/affiliate-tracker/internal/models"
	"github.com/jackc/pgx/v5"
)

var (
	ErrPartnerNotFound     = errors.New("partner not found")
	ErrLinkNotFound        = errors.New("link not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

type PartnerRepository interface {
	Create(ctx context.Context, partner *models.Partner) error
	List(ctx context.Context) ([]models.Partner, error)
	GetByID(ctx context.Context, id int64) (*models.Partner, error)
	Delete(ctx context.Context, id int64) error
}

type partnerRepository struct {
	db *PostgresDB
}

func NewPartnerRepository(db *PostgresDB) PartnerRepository {
	return &partnerRepository{db: db}
}

// partnerColumns общий SELECT со счётчиками ссылок
const partnerColumns = `
	SELECT p.id, p.name, p.platform, p.username, p.status, p.created_at, p.updated_at,
		COALESCE(l.total_links, 0) AS total_links,
		COALESCE(l.active_links, 0) AS active_links
	FROM affiliate_partners p
	LEFT JOIN (
		SELECT partner_id,
			COUNT(*) AS total_links,
			COUNT(*) FILTER (WHERE status = 'active') AS active_links
		FROM affiliate_links
		GROUP BY partner_id
	) l ON l.partner_id = p.id
`

func (r *partnerRepository) Create(ctx context.Context, partner *models.Partner) error {
	query := `
		INSERT INTO affiliate_partners (name, platform, username, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		partner.Name,
		partner.Platform,
		partner.Username,
		partner.Status,
	).Scan(&partner.ID, &partner.CreatedAt, &partner.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create partner: %w", err)
	}

	return nil
}

func (r *partnerRepository) List(ctx context.Context) ([]models.Partner, error) {
	query := partnerColumns + ` ORDER BY p.created_at DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	defer rows.Close()

	partners := []models.Partner{}
	for rows.Next() {
		var p models.Partner
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Platform, &p.Username, &p.Status,
			&p.CreatedAt, &p.UpdatedAt, &p.TotalLinks, &p.ActiveLinks,
		); err != nil {
			return nil, fmt.Errorf("failed to scan partner: %w", err)
		}
		partners = append(partners, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating partners: %w", err)
	}

	return partners, nil
}

func (r *partnerRepository) GetByID(ctx context.Context, id int64) (*models.Partner, error) {
	query := partnerColumns + ` WHERE p.id = $1`

	p := &models.Partner{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Platform, &p.Username, &p.Status,
		&p.CreatedAt, &p.UpdatedAt, &p.TotalLinks, &p.ActiveLinks,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}

	return p, nil
}

func (r *partnerRepository) Delete(ctx context.Context, id int64) error {
	// Каскад на ссылки/клики/транзакции обеспечивает схема (ON DELETE CASCADE)
	query := `DELETE FROM affiliate_partners WHERE id = $1`

	result, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete partner: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPartnerNotFound
	}

	return nil
}
