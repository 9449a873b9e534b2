package dashboard

import (
	"context"
	_ "embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/benjp009/affiliate-tracker/internal/models"
)

//go:embed style.css
var styleCSS []byte

// Handler контроллер server-rendered дашборда. Все данные он получает
// через APIClient, держит их в Store и рендерит заново на каждый запрос.
// Неудачное чтение логируется и оставляет предыдущий снапшот как есть;
// неудачная мутация превращается в неблокирующее уведомление на странице.
type Handler struct {
	api    *APIClient
	store  *Store
	logger *zap.Logger
}

func NewHandler(api *APIClient, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		api:    api,
		store:  NewStore(),
		logger: logger,
	}
}

// Store текущее состояние дашборда
func (h *Handler) Store() *Store {
	return h.store
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})
	r.GET("/static/style.css", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/css; charset=utf-8", styleCSS)
	})

	d := r.Group("/dashboard")
	{
		d.GET("", h.showDashboard)
		d.GET("/partners", h.showPartners)
		d.GET("/links", h.showLinks)
		d.GET("/transactions", h.showTransactions)

		d.GET("/partners/create", h.showPartnerForm)
		d.POST("/partners/create", h.submitPartner)
		d.GET("/partners/details/:id", h.showPartnerDetails)
		d.GET("/partners/delete/:id", h.confirmDeletePartner)
		d.POST("/partners/delete/:id", h.deletePartner)

		d.GET("/links/create", h.showLinkForm)
		d.POST("/links/create", h.submitLink)
		d.GET("/links/delete/:id", h.confirmDeleteLink)
		d.POST("/links/delete/:id", h.deleteLink)

		d.GET("/transactions/create", h.showTransactionForm)
		d.POST("/transactions/create", h.submitTransaction)
		d.POST("/transactions/pay/:id", h.payTransaction)
	}
}

// Навигация: каждый переход отмечает активное представление и
// перезапрашивает его данные; рендер всегда идёт из снапшота Store,
// так что упавшая загрузка показывает последние успешные данные.

func (h *Handler) showDashboard(c *gin.Context) {
	h.store.SetCurrentView(ViewDashboard)

	var overview models.OverviewResponse
	if err := h.api.Get(c.Request.Context(), "/analytics/overview", &overview); err != nil {
		h.logger.Error("failed to load overview", zap.Error(err))
	}

	content, err := RenderOverview(&overview)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.writePage(c, page{
		Title:   "Dashboard",
		Active:  "dashboard",
		Notice:  c.Query("notice"),
		Content: content,
	})
}

func (h *Handler) showPartners(c *gin.Context) {
	h.store.SetCurrentView(ViewPartners)
	h.refreshPartners(c.Request.Context())

	cards, err := RenderPartnerCards(h.store.Partners())
	if err != nil {
		h.fail(c, err)
		return
	}
	toolbar, err := renderBlock("toolbar", toolbarData{
		CreateURL:   "/dashboard/partners/create",
		CreateLabel: "Add Partner",
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.writePage(c, page{
		Title:   "Partners",
		Active:  "partners",
		Notice:  c.Query("notice"),
		Content: toolbar + cards,
	})
}

func (h *Handler) showLinks(c *gin.Context) {
	h.store.SetCurrentView(ViewLinks)

	partnerID := c.Query("partner_id")
	status := c.Query("status")

	// Партнёры нужны фильтру и резолву имён в таблице
	h.refreshPartners(c.Request.Context())
	h.refreshLinks(c.Request.Context(), partnerID, status)

	partners := h.store.Partners()
	table, err := RenderLinksTable(h.store.Links(), partners)
	if err != nil {
		h.fail(c, err)
		return
	}

	partnerOptions, err := RenderOptions(PartnerOptions(partners, "All Partners", partnerID))
	if err != nil {
		h.fail(c, err)
		return
	}
	statusOptions, err := RenderOptions(StatusOptions(
		[]string{models.LinkStatusActive, models.LinkStatusInactive, models.LinkStatusExpired},
		"All Statuses", status))
	if err != nil {
		h.fail(c, err)
		return
	}
	toolbar, err := renderBlock("links_toolbar", linksToolbarData{
		PartnerOptions: partnerOptions,
		StatusOptions:  statusOptions,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.writePage(c, page{
		Title:   "Links",
		Active:  "links",
		Notice:  c.Query("notice"),
		Content: toolbar + table,
	})
}

func (h *Handler) showTransactions(c *gin.Context) {
	h.store.SetCurrentView(ViewTransactions)
	h.refreshTransactions(c.Request.Context())

	table, err := RenderTransactionsTable(h.store.Transactions())
	if err != nil {
		h.fail(c, err)
		return
	}
	toolbar, err := renderBlock("toolbar", toolbarData{
		CreateURL:   "/dashboard/transactions/create",
		CreateLabel: "Add Transaction",
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.writePage(c, page{
		Title:   "Transactions",
		Active:  "transactions",
		Notice:  c.Query("notice"),
		Content: toolbar + table,
	})
}

type toolbarData struct {
	CreateURL   string
	CreateLabel string
}

type linksToolbarData struct {
	PartnerOptions template.HTML
	StatusOptions  template.HTML
}

func (h *Handler) refreshPartners(ctx context.Context) {
	gen := h.store.BeginLoad(ViewPartners)
	var partners []models.Partner
	if err := h.api.Get(ctx, "/partners", &partners); err != nil {
		h.logger.Error("failed to load partners", zap.Error(err))
		return
	}
	h.store.ReplacePartners(gen, partners)
}

func (h *Handler) refreshLinks(ctx context.Context, partnerID, status string) {
	gen := h.store.BeginLoad(ViewLinks)

	q := url.Values{}
	if partnerID != "" {
		q.Set("partner_id", partnerID)
	}
	if status != "" {
		q.Set("status", status)
	}
	path := "/links"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var links []models.Link
	if err := h.api.Get(ctx, path, &links); err != nil {
		h.logger.Error("failed to load links", zap.Error(err))
		return
	}
	h.store.ReplaceLinks(gen, links)
}

func (h *Handler) refreshTransactions(ctx context.Context) {
	gen := h.store.BeginLoad(ViewTransactions)
	var transactions []models.Transaction
	if err := h.api.Get(ctx, "/transactions", &transactions); err != nil {
		h.logger.Error("failed to load transactions", zap.Error(err))
		return
	}
	h.store.ReplaceTransactions(gen, transactions)
}

func (h *Handler) writePage(c *gin.Context, p page) {
	body, err := renderPage(p)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

func (h *Handler) fail(c *gin.Context, err error) {
	h.logger.Error("failed to render dashboard page", zap.Error(err))
	c.String(http.StatusInternalServerError, "internal error")
}

// noticeURL добавляет уведомление к адресу представления
func noticeURL(view, notice string) string {
	return view + "?notice=" + url.QueryEscape(notice)
}
