package models

import (
	"time"
)

type Click struct {
	ID        int64     `json:"id"`
	LinkID    int64     `json:"link_id"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	Referer   string    `json:"referer"`
	ClickedAt time.Time `json:"clicked_at"`
}

// ClickEvent событие клика до записи в БД (заполняется redirect-хендлером)
type ClickEvent struct {
	LinkID    int64
	IPAddress string
	UserAgent string
	Referer   string
}

type DailyClickStats struct {
	Date   string `json:"date"`
	Clicks int64  `json:"clicks"`
}
