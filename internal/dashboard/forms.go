package dashboard

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/benjp009/affiliate-tracker/internal/models"
)

// Формы создания сущностей. Числовые поля приводятся по правилам:
// идентификатор из пикера обязателен (без него форма возвращается с
// уведомлением), денежные поля и комиссия при нечитаемом вводе
// становятся нулём. В JSON числа уходят числами, не строками.

type partnerFormData struct {
	Values map[string]string
}

type linkFormData struct {
	Values         map[string]string
	PartnerOptions template.HTML
}

type transactionFormData struct {
	Values      map[string]string
	LinkOptions template.HTML
}

func formValues(c *gin.Context) map[string]string {
	_ = c.Request.ParseForm()
	values := make(map[string]string, len(c.Request.PostForm))
	for key := range c.Request.PostForm {
		values[key] = c.PostForm(key)
	}
	return values
}

func (h *Handler) showPartnerForm(c *gin.Context) {
	h.renderPartnerForm(c, map[string]string{}, "")
}

func (h *Handler) renderPartnerForm(c *gin.Context, values map[string]string, notice string) {
	content, err := renderBlock("partner_form", partnerFormData{Values: values})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.writePage(c, page{Title: "Add Partner", Active: "partners", Notice: notice, Content: content})
}

func (h *Handler) submitPartner(c *gin.Context) {
	values := formValues(c)

	payload := map[string]any{
		"name":     values["name"],
		"platform": values["platform"],
		"status":   values["status"],
	}
	if values["username"] != "" {
		payload["username"] = values["username"]
	}

	if err := h.api.Post(c.Request.Context(), "/partners", payload, nil); err != nil {
		h.logger.Error("failed to create partner", zap.Error(err))
		h.renderPartnerForm(c, values, "Error creating partner")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/partners")
}

// showLinkForm открывает форму ссылки только при непустом кэше партнёров:
// кэш сначала перезагружается, чтобы решение не принималось по устаревшему
// снапшоту
func (h *Handler) showLinkForm(c *gin.Context) {
	h.refreshPartners(c.Request.Context())
	if len(h.store.Partners()) == 0 {
		c.Redirect(http.StatusSeeOther, noticeURL("/dashboard/links", "Please add a partner first!"))
		return
	}
	h.renderLinkForm(c, map[string]string{}, "")
}

func (h *Handler) renderLinkForm(c *gin.Context, values map[string]string, notice string) {
	options, err := RenderOptions(PartnerOptions(h.store.Partners(), "Select Partner", values["partner_id"]))
	if err != nil {
		h.fail(c, err)
		return
	}
	content, err := renderBlock("link_form", linkFormData{Values: values, PartnerOptions: options})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.writePage(c, page{Title: "Add Link", Active: "links", Notice: notice, Content: content})
}

func (h *Handler) submitLink(c *gin.Context) {
	values := formValues(c)

	partnerID, err := strconv.ParseInt(values["partner_id"], 10, 64)
	if err != nil {
		h.renderLinkForm(c, values, "Please select a partner")
		return
	}
	commission, err := strconv.ParseFloat(values["commission_rate"], 64)
	if err != nil {
		commission = 0
	}

	payload := map[string]any{
		"partner_id":      partnerID,
		"brand_name":      values["brand_name"],
		"affiliate_url":   values["affiliate_url"],
		"commission_rate": commission,
	}
	if values["product_name"] != "" {
		payload["product_name"] = values["product_name"]
	}

	if err := h.api.Post(c.Request.Context(), "/links", payload, nil); err != nil {
		h.logger.Error("failed to create link", zap.Error(err))
		h.renderLinkForm(c, values, "Error creating link")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/links")
}

// showTransactionForm симметричен showLinkForm, но проверяет кэш ссылок
func (h *Handler) showTransactionForm(c *gin.Context) {
	h.refreshLinks(c.Request.Context(), "", "")
	if len(h.store.Links()) == 0 {
		c.Redirect(http.StatusSeeOther, noticeURL("/dashboard/transactions", "Please add a link first!"))
		return
	}
	h.renderTransactionForm(c, map[string]string{}, "")
}

func (h *Handler) renderTransactionForm(c *gin.Context, values map[string]string, notice string) {
	options, err := RenderOptions(LinkOptions(h.store.Links(), "Select Link", values["link_id"]))
	if err != nil {
		h.fail(c, err)
		return
	}
	content, err := renderBlock("transaction_form", transactionFormData{Values: values, LinkOptions: options})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.writePage(c, page{Title: "Add Transaction", Active: "transactions", Notice: notice, Content: content})
}

func (h *Handler) submitTransaction(c *gin.Context) {
	values := formValues(c)

	linkID, err := strconv.ParseInt(values["link_id"], 10, 64)
	if err != nil {
		h.renderTransactionForm(c, values, "Please select a link")
		return
	}
	collected, err := strconv.ParseFloat(values["amount_collected"], 64)
	if err != nil {
		collected = 0
	}
	paid, err := strconv.ParseFloat(values["amount_paid"], 64)
	if err != nil {
		paid = 0
	}

	payload := map[string]any{
		"link_id":          linkID,
		"amount_collected": collected,
		"amount_paid":      paid,
	}
	if values["order_id"] != "" {
		payload["order_id"] = values["order_id"]
	}

	if err := h.api.Post(c.Request.Context(), "/transactions", payload, nil); err != nil {
		h.logger.Error("failed to create transaction", zap.Error(err))
		h.renderTransactionForm(c, values, "Error creating transaction")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/transactions")
}

// payTransaction переводит транзакцию в paid, выплаченная сумма берётся
// из скрытого поля формы (собранная сумма строки)
func (h *Handler) payTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/dashboard/transactions")
		return
	}

	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil {
		amount = 0
	}

	payload := map[string]any{
		"status":      models.TransactionStatusPaid,
		"amount_paid": amount,
	}
	if err := h.api.Put(c.Request.Context(), "/transactions/"+strconv.FormatInt(id, 10), payload, nil); err != nil {
		h.logger.Error("failed to mark transaction as paid", zap.Error(err), zap.Int64("id", id))
		c.Redirect(http.StatusSeeOther, noticeURL("/dashboard/transactions", "Error updating transaction"))
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/transactions")
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
