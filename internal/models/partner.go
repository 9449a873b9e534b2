package models

import (
	"time"
)

// Статусы партнёров
const (
	PartnerStatusActive   = "active"
	PartnerStatusInactive = "inactive"
	PartnerStatusPending  = "pending"
)

type Partner struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Platform    string    `json:"platform"`
	Username    *string   `json:"username"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	TotalLinks  int64     `json:"total_links"`
	ActiveLinks int64     `json:"active_links"`
}

type CreatePartnerInput struct {
	Name     string  `json:"name" binding:"required"`
	Platform string  `json:"platform" binding:"required"`
	Username *string `json:"username,omitempty"`
	Status   string  `json:"status,omitempty"`
}
