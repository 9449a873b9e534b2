package models

// Overview сводные показатели по всем партнёрам/ссылкам/транзакциям.
// Считается на стороне сервера, клиентом потребляется только на чтение.
type Overview struct {
	ActivePartners int64   `json:"active_partners"`
	ActiveLinks    int64   `json:"active_links"`
	TotalClicks    int64   `json:"total_clicks"`
	TotalCollected float64 `json:"total_collected"`
	TotalPaid      float64 `json:"total_paid"`
	PendingAmount  float64 `json:"pending_amount"`
}

// TopLink ссылка с выручкой для рейтинга на дашборде
type TopLink struct {
	Link    Link    `json:"link"`
	Revenue float64 `json:"revenue"`
}

type OverviewResponse struct {
	Overview           Overview      `json:"overview"`
	TopLinks           []TopLink     `json:"top_links"`
	RecentTransactions []Transaction `json:"recent_transactions"`
}

// PartnerStats агрегаты по одному партнёру
type PartnerStats struct {
	TotalLinks     int64   `json:"total_links"`
	TotalClicks    int64   `json:"total_clicks"`
	TotalCollected float64 `json:"total_collected"`
	TotalPaid      float64 `json:"total_paid"`
	ConversionRate float64 `json:"conversion_rate"`
}

type PartnerAnalyticsResponse struct {
	Partner Partner      `json:"partner"`
	Stats   PartnerStats `json:"stats"`
}
