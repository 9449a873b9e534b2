package handler

import (
	"net/http"

	"github.com/benjp009/affiliate-tracker/internal/dashboard"
	"github.com/benjp009/affiliate-tracker/internal/middleware"
	"github.com/benjp009/affiliate-tracker/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(
	partnerService service.PartnerService,
	linkService service.LinkService,
	transactionService service.TransactionService,
	analyticsService service.AnalyticsService,
	clickProcessor service.ClickProcessor,
	rateLimiter *middleware.RateLimiter,
	apiKeyMiddleware gin.HandlerFunc,
	dash *dashboard.Handler,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.Default()

	// Middleware для логгирования
	router.Use(func(c *gin.Context) {
		logger.Info("Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("ip", c.ClientIP()),
		)
		c.Next()
	})

	// Rate limiting для всех запросов
	router.Use(rateLimiter.Middleware())

	partnerHandler := NewPartnerHandler(partnerService, logger)
	linkHandler := NewLinkHandler(linkService, clickProcessor, logger)
	transactionHandler := NewTransactionHandler(transactionService, logger)
	analyticsHandler := NewAnalyticsHandler(analyticsService, logger)

	// REST API: фиксированный префикс /api
	api := router.Group("/api")
	{
		api.GET("/health", HealthCheck)

		// API Key middleware только для защищённых эндпоинтов
		if apiKeyMiddleware != nil {
			api.Use(apiKeyMiddleware)
		}

		api.GET("/partners", partnerHandler.ListPartners)
		api.POST("/partners", partnerHandler.CreatePartner)
		api.DELETE("/partners/:id", partnerHandler.DeletePartner)

		api.GET("/links", linkHandler.ListLinks)
		api.POST("/links", linkHandler.CreateLink)
		api.DELETE("/links/:id", linkHandler.DeleteLink)
		api.GET("/links/:id/clicks/daily", linkHandler.GetDailyClicks)

		api.GET("/transactions", transactionHandler.ListTransactions)
		api.POST("/transactions", transactionHandler.CreateTransaction)
		api.PUT("/transactions/:id", transactionHandler.UpdateTransaction)

		api.GET("/analytics/overview", analyticsHandler.GetOverview)
		api.GET("/analytics/partner/:id", analyticsHandler.GetPartnerAnalytics)
	}

	// Трекинговый редирект - без API key проверки
	router.GET("/r/:id", linkHandler.Redirect)

	// Server-rendered дашборд
	if dash != nil {
		dash.Register(router)
	}

	return router
}

// HealthCheck проверка живости сервиса
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "affiliate-tracker",
	})
}
