package dashboard

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/benjp009/affiliate-tracker/internal/models"
)

// Рендер построен на html/template: всё, что пришло из API (бренды,
// названия продуктов, имена партнёров), экранируется самим шаблонизатором.
// Разметка несёт идентификаторы в data-атрибутах и обычных формах,
// без inline-обработчиков.

const shortDateLayout = "02.01.2006"

// emptyState пустое состояние представления: иконка, заголовок, подсказка
type emptyState struct {
	Icon    string
	Message string
	Hint    string
}

var (
	emptyPartners = emptyState{
		Icon:    "💼",
		Message: "No partners yet",
		Hint:    "Add your first affiliate partner to get started",
	}
	emptyLinks = emptyState{
		Icon:    "🔗",
		Message: "No links found",
		Hint:    "Add your first affiliate link to start tracking",
	}
	emptyTransactions = emptyState{
		Icon:    "💰",
		Message: "No transactions yet",
		Hint:    "Add transactions as they occur from your affiliate platforms",
	}
)

// RenderPartnerCards карточки партнёров или пустое состояние
func RenderPartnerCards(partners []models.Partner) (template.HTML, error) {
	if len(partners) == 0 {
		return renderBlock("empty_state", emptyPartners)
	}
	return renderBlock("partner_cards", partners)
}

type linkRow struct {
	ID           int64
	Brand        string
	Product      string
	Partner      string
	Commission   string
	Clicks       int64
	Revenue      string
	Status       string
	AffiliateURL string
}

// RenderLinksTable таблица ссылок или пустое состояние.
// Имя партнёра резолвится через текущий кэш партнёров; если партнёр
// исчез между загрузками, остаётся денормализованное имя из ответа API,
// а без него - "Unknown".
func RenderLinksTable(links []models.Link, partners []models.Partner) (template.HTML, error) {
	if len(links) == 0 {
		return renderBlock("empty_state", emptyLinks)
	}

	byID := make(map[int64]string, len(partners))
	for _, p := range partners {
		byID[p.ID] = p.Name
	}

	rows := make([]linkRow, 0, len(links))
	for _, l := range links {
		partnerName := byID[l.PartnerID]
		if partnerName == "" {
			partnerName = l.PartnerName
		}
		if partnerName == "" {
			partnerName = "Unknown"
		}

		rows = append(rows, linkRow{
			ID:           l.ID,
			Brand:        l.BrandName,
			Product:      dashIfEmpty(l.ProductName),
			Partner:      partnerName,
			Commission:   strconv.FormatFloat(l.CommissionRate, 'f', -1, 64) + "%",
			Clicks:       l.Stats.TotalClicks,
			Revenue:      money(l.Stats.TotalCollected),
			Status:       l.Status,
			AffiliateURL: l.AffiliateURL,
		})
	}

	return renderBlock("links_table", rows)
}

type transactionRow struct {
	ID        int64
	Date      string
	Brand     string
	OrderID   string
	Collected string
	Paid      string
	Status    string
	Pending   bool
	// PayAmount сумма для формы "Mark Paid": собранная сумма транзакции
	PayAmount string
}

// RenderTransactionsTable таблица транзакций или пустое состояние
func RenderTransactionsTable(transactions []models.Transaction) (template.HTML, error) {
	if len(transactions) == 0 {
		return renderBlock("empty_state", emptyTransactions)
	}

	rows := make([]transactionRow, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, transactionRow{
			ID:        t.ID,
			Date:      t.TransactionDate.Format(shortDateLayout),
			Brand:     unknownIfEmpty(t.BrandName),
			OrderID:   dashIfEmpty(t.OrderID),
			Collected: money(t.AmountCollected),
			Paid:      money(t.AmountPaid),
			Status:    t.Status,
			Pending:   t.Status == models.TransactionStatusPending,
			PayAmount: strconv.FormatFloat(t.AmountCollected, 'f', 2, 64),
		})
	}

	return renderBlock("transactions_table", rows)
}

type overviewStats struct {
	Partners  int64
	Links     int64
	Clicks    int64
	Collected string
	Paid      string
	Pending   string
}

type dataItem struct {
	Title string
	Value string
	Meta  string
}

type overviewView struct {
	Stats              overviewStats
	TopLinks           []dataItem
	RecentTransactions []dataItem
}

// RenderOverview шесть показателей, топ ссылок по выручке и свежие транзакции
func RenderOverview(data *models.OverviewResponse) (template.HTML, error) {
	view := overviewView{
		Stats: overviewStats{
			Partners:  data.Overview.ActivePartners,
			Links:     data.Overview.ActiveLinks,
			Clicks:    data.Overview.TotalClicks,
			Collected: money(data.Overview.TotalCollected),
			Paid:      money(data.Overview.TotalPaid),
			Pending:   money(data.Overview.PendingAmount),
		},
	}

	for _, item := range data.TopLinks {
		view.TopLinks = append(view.TopLinks, dataItem{
			Title: item.Link.BrandName + " - " + productLabel(item.Link.ProductName),
			Value: money(item.Revenue),
			Meta: fmt.Sprintf("%d clicks · %s%% conversion",
				item.Link.Stats.TotalClicks,
				strconv.FormatFloat(item.Link.Stats.ConversionRate, 'f', -1, 64)),
		})
	}

	for _, t := range data.RecentTransactions {
		view.RecentTransactions = append(view.RecentTransactions, dataItem{
			Title: unknownIfEmpty(t.BrandName),
			Value: money(t.AmountCollected),
			Meta:  t.TransactionDate.Format(shortDateLayout) + " · " + t.Status,
		})
	}

	return renderBlock("overview", view)
}

// RenderOptions список <option> для пикера
func RenderOptions(options []Option) (template.HTML, error) {
	return renderBlock("options", options)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func dashIfEmpty(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func unknownIfEmpty(v *string) string {
	if v == nil || *v == "" {
		return "Unknown"
	}
	return *v
}

func renderBlock(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// page полный документ представления
type page struct {
	Title   string
	Active  string // маркер активного пункта навигации
	Notice  string // неблокирующее уведомление (ошибки мутаций, отказ модалки)
	Content template.HTML
}

func renderPage(p page) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "page", p); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

var pageTemplates = template.Must(template.New("dashboard").Parse(`
{{define "empty_state"}}
<div class="empty-state">
    <div class="empty-state-icon">{{.Icon}}</div>
    <p class="empty-state-message">{{.Message}}</p>
    <p>{{.Hint}}</p>
</div>
{{end}}

{{define "partner_cards"}}
<div class="partner-grid">
{{range .}}
    <div class="partner-card" data-id="{{.ID}}">
        <div class="partner-header">
            <div>
                <div class="partner-name">{{.Name}}</div>
                <div class="partner-platform">{{.Platform}}</div>
            </div>
            <span class="badge {{.Status}}">{{.Status}}</span>
        </div>
        <div class="partner-stats">
            <div class="partner-stat">
                <div class="partner-stat-value">{{.TotalLinks}}</div>
                <div class="partner-stat-label">Total Links</div>
            </div>
            <div class="partner-stat">
                <div class="partner-stat-value">{{.ActiveLinks}}</div>
                <div class="partner-stat-label">Active</div>
            </div>
        </div>
        <div class="partner-actions">
            <a class="btn btn-sm btn-primary" href="/dashboard/partners/details/{{.ID}}">View Details</a>
            <a class="btn btn-sm btn-danger" href="/dashboard/partners/delete/{{.ID}}">Delete</a>
        </div>
    </div>
{{end}}
</div>
{{end}}

{{define "links_table"}}
<table>
    <thead>
        <tr>
            <th>Brand</th>
            <th>Product</th>
            <th>Partner</th>
            <th>Commission</th>
            <th>Clicks</th>
            <th>Revenue</th>
            <th>Status</th>
            <th>Actions</th>
        </tr>
    </thead>
    <tbody>
    {{range .}}
        <tr data-id="{{.ID}}">
            <td><strong>{{.Brand}}</strong></td>
            <td>{{.Product}}</td>
            <td>{{.Partner}}</td>
            <td>{{.Commission}}</td>
            <td>{{.Clicks}}</td>
            <td>{{.Revenue}}</td>
            <td><span class="badge {{.Status}}">{{.Status}}</span></td>
            <td>
                <a class="btn btn-sm btn-primary" href="{{.AffiliateURL}}" target="_blank" rel="noopener">Open</a>
                <a class="btn btn-sm btn-danger" href="/dashboard/links/delete/{{.ID}}">Delete</a>
            </td>
        </tr>
    {{end}}
    </tbody>
</table>
{{end}}

{{define "transactions_table"}}
<table>
    <thead>
        <tr>
            <th>Date</th>
            <th>Brand</th>
            <th>Order ID</th>
            <th>Collected</th>
            <th>Paid</th>
            <th>Status</th>
            <th>Actions</th>
        </tr>
    </thead>
    <tbody>
    {{range .}}
        <tr data-id="{{.ID}}">
            <td>{{.Date}}</td>
            <td>{{.Brand}}</td>
            <td>{{.OrderID}}</td>
            <td>{{.Collected}}</td>
            <td>{{.Paid}}</td>
            <td><span class="badge {{.Status}}">{{.Status}}</span></td>
            <td>
            {{if .Pending}}
                <form method="post" action="/dashboard/transactions/pay/{{.ID}}">
                    <input type="hidden" name="amount" value="{{.PayAmount}}">
                    <button class="btn btn-sm btn-primary" type="submit">Mark Paid</button>
                </form>
            {{else}}
                -
            {{end}}
            </td>
        </tr>
    {{end}}
    </tbody>
</table>
{{end}}

{{define "overview"}}
<div class="stats-grid">
    <div class="stat-card"><div class="stat-value" id="stat-partners">{{.Stats.Partners}}</div><div class="stat-label">Active Partners</div></div>
    <div class="stat-card"><div class="stat-value" id="stat-links">{{.Stats.Links}}</div><div class="stat-label">Active Links</div></div>
    <div class="stat-card"><div class="stat-value" id="stat-clicks">{{.Stats.Clicks}}</div><div class="stat-label">Total Clicks</div></div>
    <div class="stat-card"><div class="stat-value" id="stat-collected">{{.Stats.Collected}}</div><div class="stat-label">Collected</div></div>
    <div class="stat-card"><div class="stat-value" id="stat-paid">{{.Stats.Paid}}</div><div class="stat-label">Paid Out</div></div>
    <div class="stat-card"><div class="stat-value" id="stat-pending">{{.Stats.Pending}}</div><div class="stat-label">Pending</div></div>
</div>
<div class="dashboard-columns">
    <section>
        <h2>Top Links</h2>
        <div id="top-links">
        {{if .TopLinks}}
            {{range .TopLinks}}{{template "data_item" .}}{{end}}
        {{else}}
            <div class="empty-state"><p>No links yet</p></div>
        {{end}}
        </div>
    </section>
    <section>
        <h2>Recent Transactions</h2>
        <div id="recent-transactions">
        {{if .RecentTransactions}}
            {{range .RecentTransactions}}{{template "data_item" .}}{{end}}
        {{else}}
            <div class="empty-state"><p>No transactions yet</p></div>
        {{end}}
        </div>
    </section>
</div>
{{end}}

{{define "data_item"}}
<div class="data-item">
    <div class="data-item-header">
        <span class="data-item-title">{{.Title}}</span>
        <span class="data-item-value">{{.Value}}</span>
    </div>
    <div class="data-item-meta">{{.Meta}}</div>
</div>
{{end}}

{{define "toolbar"}}
<div class="toolbar">
    <a class="btn btn-primary" href="{{.CreateURL}}">{{.CreateLabel}}</a>
</div>
{{end}}

{{define "links_toolbar"}}
<div class="toolbar">
    <form method="get" action="/dashboard/links" class="filters">
        <select name="partner_id" id="filter-partner">{{.PartnerOptions}}</select>
        <select name="status" id="filter-status">{{.StatusOptions}}</select>
        <button class="btn" type="submit">Filter</button>
    </form>
    <a class="btn btn-primary" href="/dashboard/links/create">Add Link</a>
</div>
{{end}}

{{define "options"}}{{range .}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}{{end}}

{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>{{.Title}} - Affiliate Tracker</title>
    <link rel="stylesheet" href="/static/style.css">
</head>
<body>
    <nav class="navbar">
        <span class="brand">Affiliate Tracker</span>
        <a class="nav-link{{if eq .Active "dashboard"}} active{{end}}" href="/dashboard">Dashboard</a>
        <a class="nav-link{{if eq .Active "partners"}} active{{end}}" href="/dashboard/partners">Partners</a>
        <a class="nav-link{{if eq .Active "links"}} active{{end}}" href="/dashboard/links">Links</a>
        <a class="nav-link{{if eq .Active "transactions"}} active{{end}}" href="/dashboard/transactions">Transactions</a>
    </nav>
    {{if .Notice}}<div class="notice" role="alert">{{.Notice}}</div>{{end}}
    <main class="view active">
        {{.Content}}
    </main>
</body>
</html>
{{end}}

{{define "partner_form"}}
<section class="modal-panel">
    <h2>Add Partner</h2>
    <form method="post" action="/dashboard/partners/create">
        <label>Name <input type="text" name="name" value="{{.Values.name}}" required></label>
        <label>Platform <input type="text" name="platform" value="{{.Values.platform}}" required></label>
        <label>Username <input type="text" name="username" value="{{.Values.username}}"></label>
        <label>Status
            <select name="status">
                <option value="active">active</option>
                <option value="inactive">inactive</option>
                <option value="pending">pending</option>
            </select>
        </label>
        <button class="btn btn-primary" type="submit">Save</button>
        <a class="btn" href="/dashboard/partners">Cancel</a>
    </form>
</section>
{{end}}

{{define "link_form"}}
<section class="modal-panel">
    <h2>Add Link</h2>
    <form method="post" action="/dashboard/links/create">
        <label>Partner
            <select name="partner_id" id="link-partner-select" required>{{.PartnerOptions}}</select>
        </label>
        <label>Brand <input type="text" name="brand_name" value="{{.Values.brand_name}}" required></label>
        <label>Product <input type="text" name="product_name" value="{{.Values.product_name}}"></label>
        <label>Affiliate URL <input type="url" name="affiliate_url" value="{{.Values.affiliate_url}}" required></label>
        <label>Commission Rate (%) <input type="text" name="commission_rate" value="{{.Values.commission_rate}}"></label>
        <button class="btn btn-primary" type="submit">Save</button>
        <a class="btn" href="/dashboard/links">Cancel</a>
    </form>
</section>
{{end}}

{{define "transaction_form"}}
<section class="modal-panel">
    <h2>Add Transaction</h2>
    <form method="post" action="/dashboard/transactions/create">
        <label>Link
            <select name="link_id" id="transaction-link-select" required>{{.LinkOptions}}</select>
        </label>
        <label>Order ID <input type="text" name="order_id" value="{{.Values.order_id}}"></label>
        <label>Amount Collected <input type="text" name="amount_collected" value="{{.Values.amount_collected}}"></label>
        <label>Amount Paid <input type="text" name="amount_paid" value="{{.Values.amount_paid}}"></label>
        <button class="btn btn-primary" type="submit">Save</button>
        <a class="btn" href="/dashboard/transactions">Cancel</a>
    </form>
</section>
{{end}}

{{define "confirm_delete"}}
<section class="modal-panel">
    <h2>Confirm Deletion</h2>
    <p>{{.Message}}</p>
    <form method="post" action="{{.Action}}">
        <button class="btn btn-danger" type="submit">Delete</button>
        <a class="btn" href="{{.CancelURL}}">Cancel</a>
    </form>
</section>
{{end}}

{{define "partner_details"}}
<section class="modal-panel">
    <h2>{{.Partner.Name}} Analytics</h2>
    <ul class="analytics-list">
        <li>Total Links: {{.Stats.TotalLinks}}</li>
        <li>Total Clicks: {{.Stats.TotalClicks}}</li>
        <li>Total Collected: {{.Collected}}</li>
        <li>Total Paid: {{.Paid}}</li>
        <li>Conversion Rate: {{.Conversion}}%</li>
    </ul>
    <a class="btn" href="/dashboard/partners">Back</a>
</section>
{{end}}
`))
