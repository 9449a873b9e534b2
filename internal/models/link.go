package models

import (
	"time"
)

// Статусы ссылок
const (
	LinkStatusActive   = "active"
	LinkStatusInactive = "inactive"
	LinkStatusExpired  = "expired"
)

type Link struct {
	ID             int64     `json:"id"`
	PartnerID      int64     `json:"partner_id"`
	PartnerName    string    `json:"partner_name"`
	BrandName      string    `json:"brand_name"`
	ProductName    *string   `json:"product_name"`
	AffiliateURL   string    `json:"affiliate_url"`
	OriginalURL    *string   `json:"original_url"`
	CommissionRate float64   `json:"commission_rate"` // процент
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	Stats          LinkStats `json:"stats"`
}

// LinkStats агрегаты по ссылке; денежные суммы округлены до 2 знаков
type LinkStats struct {
	TotalClicks    int64   `json:"total_clicks"`
	TotalCollected float64 `json:"total_collected"`
	TotalPaid      float64 `json:"total_paid"`
	PendingAmount  float64 `json:"pending_amount"`
	ConversionRate float64 `json:"conversion_rate"` // транзакции / клики * 100
}

type CreateLinkInput struct {
	PartnerID      int64   `json:"partner_id" binding:"required"`
	BrandName      string  `json:"brand_name" binding:"required"`
	ProductName    *string `json:"product_name,omitempty"`
	AffiliateURL   string  `json:"affiliate_url" binding:"required,url"`
	OriginalURL    *string `json:"original_url,omitempty"`
	CommissionRate float64 `json:"commission_rate,omitempty"`
	Status         string  `json:"status,omitempty"`
}

// LinkFilter фильтры списка ссылок (оба опциональны)
type LinkFilter struct {
	PartnerID *int64
	Status    string
}
