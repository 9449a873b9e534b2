package repository

import (
	"context"
	"fmt"
)

// schema создаётся идемпотентно при старте сервиса.
// Каскады повторяют семантику предметной области: удаление партнёра
// уносит его ссылки, удаление ссылки — её клики и транзакции.
const schema = `
CREATE TABLE IF NOT EXISTS affiliate_partners (
	id         BIGSERIAL PRIMARY KEY,
	name       VARCHAR(100) NOT NULL,
	platform   VARCHAR(100) NOT NULL,
	username   VARCHAR(100),
	status     VARCHAR(20) NOT NULL DEFAULT 'active',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS affiliate_links (
	id              BIGSERIAL PRIMARY KEY,
	partner_id      BIGINT NOT NULL REFERENCES affiliate_partners(id) ON DELETE CASCADE,
	brand_name      VARCHAR(100) NOT NULL,
	product_name    VARCHAR(200),
	affiliate_url   TEXT NOT NULL,
	original_url    TEXT,
	commission_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
	status          VARCHAR(20) NOT NULL DEFAULT 'active',
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS click_events (
	id         BIGSERIAL PRIMARY KEY,
	link_id    BIGINT NOT NULL REFERENCES affiliate_links(id) ON DELETE CASCADE,
	ip_address VARCHAR(45),
	user_agent TEXT,
	referer    TEXT,
	clicked_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS transactions (
	id               BIGSERIAL PRIMARY KEY,
	link_id          BIGINT NOT NULL REFERENCES affiliate_links(id) ON DELETE CASCADE,
	order_id         VARCHAR(100),
	amount_collected DOUBLE PRECISION NOT NULL DEFAULT 0,
	amount_paid      DOUBLE PRECISION NOT NULL DEFAULT 0,
	currency         VARCHAR(3) NOT NULL DEFAULT 'USD',
	status           VARCHAR(20) NOT NULL DEFAULT 'pending',
	transaction_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	payout_date      TIMESTAMPTZ,
	notes            TEXT
);

CREATE INDEX IF NOT EXISTS idx_links_partner_id ON affiliate_links(partner_id);
CREATE INDEX IF NOT EXISTS idx_clicks_link_id ON click_events(link_id);
CREATE INDEX IF NOT EXISTS idx_clicks_clicked_at ON click_events(clicked_at);
CREATE INDEX IF NOT EXISTS idx_transactions_link_id ON transactions(link_id);
CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions(status);
`

// Migrate применяет схему БД
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
