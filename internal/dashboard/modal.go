package dashboard

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/benjp009/affiliate-tracker/internal/models"
)

// Страницы-подтверждения удаления и карточка аналитики партнёра.
// Удаление всегда проходит через явное подтверждение отдельной страницей.

type confirmData struct {
	Message   string
	Action    string
	CancelURL string
}

func (h *Handler) confirmDeletePartner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/dashboard/partners")
		return
	}

	content, err := renderBlock("confirm_delete", confirmData{
		Message:   "Are you sure you want to delete this partner? This will also delete all associated links.",
		Action:    "/dashboard/partners/delete/" + strconv.FormatInt(id, 10),
		CancelURL: "/dashboard/partners",
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.writePage(c, page{Title: "Delete Partner", Active: "partners", Content: content})
}

func (h *Handler) deletePartner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/dashboard/partners")
		return
	}

	if err := h.api.Delete(c.Request.Context(), "/partners/"+strconv.FormatInt(id, 10)); err != nil {
		h.logger.Error("failed to delete partner", zap.Error(err), zap.Int64("id", id))
		c.Redirect(http.StatusSeeOther, noticeURL("/dashboard/partners", "Error deleting partner"))
		return
	}
	// Представление перезагрузит кэш и пересоберёт пикеры без удалённого партнёра
	c.Redirect(http.StatusSeeOther, "/dashboard/partners")
}

func (h *Handler) confirmDeleteLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/dashboard/links")
		return
	}

	content, err := renderBlock("confirm_delete", confirmData{
		Message:   "Are you sure you want to delete this link?",
		Action:    "/dashboard/links/delete/" + strconv.FormatInt(id, 10),
		CancelURL: "/dashboard/links",
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.writePage(c, page{Title: "Delete Link", Active: "links", Content: content})
}

func (h *Handler) deleteLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/dashboard/links")
		return
	}

	if err := h.api.Delete(c.Request.Context(), "/links/"+strconv.FormatInt(id, 10)); err != nil {
		h.logger.Error("failed to delete link", zap.Error(err), zap.Int64("id", id))
		c.Redirect(http.StatusSeeOther, noticeURL("/dashboard/links", "Error deleting link"))
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/links")
}

type partnerDetailsData struct {
	Partner    models.Partner
	Stats      models.PartnerStats
	Collected  string
	Paid       string
	Conversion string
}

func (h *Handler) showPartnerDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/dashboard/partners")
		return
	}

	var analytics models.PartnerAnalyticsResponse
	if err := h.api.Get(c.Request.Context(), "/analytics/partner/"+strconv.FormatInt(id, 10), &analytics); err != nil {
		h.logger.Error("failed to load partner analytics", zap.Error(err), zap.Int64("id", id))
		c.Redirect(http.StatusSeeOther, noticeURL("/dashboard/partners", "Error loading partner analytics"))
		return
	}

	content, err := renderBlock("partner_details", partnerDetailsData{
		Partner:    analytics.Partner,
		Stats:      analytics.Stats,
		Collected:  money(analytics.Stats.TotalCollected),
		Paid:       money(analytics.Stats.TotalPaid),
		Conversion: strconv.FormatFloat(analytics.Stats.ConversionRate, 'f', -1, 64),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.writePage(c, page{Title: analytics.Partner.Name, Active: "partners", Content: content})
}
