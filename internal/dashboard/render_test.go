package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjp009/affiliate-tracker/internal/models"
)

// TestRenderPartnerCards_EmptyState пустой список даёт пустое состояние с подсказкой
func TestRenderPartnerCards_EmptyState(t *testing.T) {
	html, err := RenderPartnerCards(nil)
	require.NoError(t, err)

	assert.Contains(t, string(html), "No partners yet")
	assert.Contains(t, string(html), "Add your first affiliate partner to get started")
	assert.Contains(t, string(html), "💼")
}

// TestRenderPartnerCards карточка содержит имя, платформу и счётчики ссылок
func TestRenderPartnerCards(t *testing.T) {
	partners := []models.Partner{
		{ID: 3, Name: "Tech Blog", Platform: "blog", Status: "active", TotalLinks: 5, ActiveLinks: 4},
	}

	html, err := RenderPartnerCards(partners)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "Tech Blog")
	assert.Contains(t, out, `data-id="3"`)
	assert.Contains(t, out, "/dashboard/partners/delete/3")
	assert.Contains(t, out, "/dashboard/partners/details/3")
}

// TestRenderLinksTable_EmptyState пустой список ссылок
func TestRenderLinksTable_EmptyState(t *testing.T) {
	html, err := RenderLinksTable(nil, nil)
	require.NoError(t, err)

	assert.Contains(t, string(html), "No links found")
	assert.Contains(t, string(html), "Add your first affiliate link to start tracking")
	assert.Contains(t, string(html), "🔗")
}

// TestRenderLinksTable_PartnerResolution имя партнёра резолвится из кэша,
// после его удаления остаётся денормализованное имя, без него - Unknown
func TestRenderLinksTable_PartnerResolution(t *testing.T) {
	links := []models.Link{
		{ID: 1, PartnerID: 1, PartnerName: "stale name", BrandName: "Amazon", AffiliateURL: "https://a.example"},
		{ID: 2, PartnerID: 2, PartnerName: "Deleted Partner", BrandName: "eBay", AffiliateURL: "https://b.example"},
		{ID: 3, PartnerID: 3, BrandName: "Etsy", AffiliateURL: "https://c.example"},
	}
	partners := []models.Partner{{ID: 1, Name: "Tech Blog"}}

	html, err := RenderLinksTable(links, partners)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "Tech Blog")
	assert.NotContains(t, out, "stale name")
	assert.Contains(t, out, "Deleted Partner")
	assert.Contains(t, out, "Unknown")
}

// TestRenderLinksTable_Escaping враждебные данные из API экранируются при рендере
func TestRenderLinksTable_Escaping(t *testing.T) {
	links := []models.Link{
		{ID: 1, PartnerID: 1, BrandName: `<script>alert("xss")</script>`, AffiliateURL: "https://a.example"},
	}

	html, err := RenderLinksTable(links, nil)
	require.NoError(t, err)

	out := string(html)
	assert.NotContains(t, out, `<script>alert`)
	assert.Contains(t, out, "&lt;script&gt;")
}

// TestRenderTransactionsTable_MarkPaidForm у pending транзакции есть форма выплаты
// с собранной суммой, у paid - нет
func TestRenderTransactionsTable_MarkPaidForm(t *testing.T) {
	date := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	brand := "Amazon"
	transactions := []models.Transaction{
		{ID: 42, BrandName: &brand, AmountCollected: 19.99, Status: "pending", TransactionDate: date},
		{ID: 43, BrandName: &brand, AmountCollected: 10, AmountPaid: 10, Status: "paid", TransactionDate: date},
	}

	html, err := RenderTransactionsTable(transactions)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "/dashboard/transactions/pay/42")
	assert.Contains(t, out, `value="19.99"`)
	assert.NotContains(t, out, "/dashboard/transactions/pay/43")
	assert.Contains(t, out, "14.03.2025")
	assert.Contains(t, out, "$19.99")
}

// TestRenderTransactionsTable_EmptyState пустой список транзакций
func TestRenderTransactionsTable_EmptyState(t *testing.T) {
	html, err := RenderTransactionsTable(nil)
	require.NoError(t, err)

	assert.Contains(t, string(html), "No transactions yet")
	assert.Contains(t, string(html), "Add transactions as they occur from your affiliate platforms")
	assert.Contains(t, string(html), "💰")
}

// TestRenderOverview сводка: показатели, топ ссылок, свежие транзакции
func TestRenderOverview(t *testing.T) {
	product := "Echo Dot"
	brand := "Amazon"
	data := &models.OverviewResponse{
		Overview: models.Overview{
			ActivePartners: 2,
			ActiveLinks:    3,
			TotalClicks:    150,
			TotalCollected: 99.9,
			TotalPaid:      50,
			PendingAmount:  49.9,
		},
		TopLinks: []models.TopLink{
			{
				Link: models.Link{
					BrandName:   "Amazon",
					ProductName: &product,
					Stats:       models.LinkStats{TotalClicks: 100, ConversionRate: 2.5},
				},
				Revenue: 60,
			},
		},
		RecentTransactions: []models.Transaction{
			{BrandName: &brand, AmountCollected: 19.99, Status: "pending", TransactionDate: time.Now()},
		},
	}

	html, err := RenderOverview(data)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "$99.90")
	assert.Contains(t, out, "$49.90")
	assert.Contains(t, out, "Amazon - Echo Dot")
	assert.Contains(t, out, "100 clicks")
	assert.Contains(t, out, "2.5% conversion")
}

// TestRenderOverview_Empty сводка без ссылок и транзакций
func TestRenderOverview_Empty(t *testing.T) {
	html, err := RenderOverview(&models.OverviewResponse{})
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "No links yet")
	assert.Contains(t, out, "No transactions yet")
	assert.Contains(t, out, "$0.00")
}

// TestRenderPage активный пункт навигации и уведомление
func TestRenderPage(t *testing.T) {
	body, err := renderPage(page{
		Title:   "Links",
		Active:  "links",
		Notice:  `Please add a partner first!`,
		Content: "<p>content</p>",
	})
	require.NoError(t, err)

	out := string(body)
	assert.Contains(t, out, "Please add a partner first!")
	assert.Contains(t, out, "<p>content</p>")

	// Активен ровно один пункт навигации
	assert.Equal(t, 1, strings.Count(out, `nav-link active`))
}

// TestRenderPage_NoticeEscaped уведомление из query-параметра экранируется
func TestRenderPage_NoticeEscaped(t *testing.T) {
	body, err := renderPage(page{
		Title:   "Links",
		Active:  "links",
		Notice:  `<img src=x onerror=alert(1)>`,
		Content: "",
	})
	require.NoError(t, err)

	assert.NotContains(t, string(body), "<img src=x")
}
