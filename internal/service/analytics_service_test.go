package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjp009/affiliate-tracker/internal/models"
	"github.com/benjp009/affiliate-tracker/internal/repository"
	"github.com/benjp009/affiliate-tracker/internal/service"
	"github.com/benjp009/affiliate-tracker/internal/service/mocks"
)

// TestAnalyticsService_GetOverview сводка собирается из показателей, топа ссылок и свежих транзакций
func TestAnalyticsService_GetOverview(t *testing.T) {
	analyticsRepo := mocks.NewMockAnalyticsRepository()
	analyticsRepo.Overview = models.Overview{
		ActivePartners: 2,
		ActiveLinks:    3,
		TotalClicks:    150,
		TotalCollected: 99.90,
		TotalPaid:      50,
		PendingAmount:  49.90,
	}
	analyticsRepo.TopLinks = []models.TopLink{
		{Link: models.Link{ID: 1, BrandName: "Amazon"}, Revenue: 60},
		{Link: models.Link{ID: 2, BrandName: "eBay"}, Revenue: 39.90},
	}

	partnerRepo := mocks.NewMockPartnerRepository()
	txRepo := mocks.NewMockTransactionRepository()
	ctx := context.Background()
	for i := 0; i < 7; i++ {
		require.NoError(t, txRepo.Create(ctx, &models.Transaction{LinkID: 1, AmountCollected: 10}))
	}

	analyticsService := service.NewAnalyticsService(analyticsRepo, partnerRepo, txRepo)

	overview, err := analyticsService.GetOverview(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), overview.Overview.ActivePartners)
	assert.Equal(t, 99.90, overview.Overview.TotalCollected)
	assert.Len(t, overview.TopLinks, 2)
	assert.Equal(t, "Amazon", overview.TopLinks[0].Link.BrandName)
	// Секция свежих транзакций усечена до лимита
	assert.Len(t, overview.RecentTransactions, 5)
}

// TestAnalyticsService_GetPartnerAnalytics карточка партнёра с агрегатами
func TestAnalyticsService_GetPartnerAnalytics(t *testing.T) {
	analyticsRepo := mocks.NewMockAnalyticsRepository()
	partnerRepo := mocks.NewMockPartnerRepository()
	txRepo := mocks.NewMockTransactionRepository()

	ctx := context.Background()
	partner := &models.Partner{Name: "Tech Blog", Platform: "blog", Status: "active"}
	require.NoError(t, partnerRepo.Create(ctx, partner))

	analyticsRepo.PartnerStats[partner.ID] = &models.PartnerStats{
		TotalLinks:     4,
		TotalClicks:    200,
		TotalCollected: 120.50,
		TotalPaid:      80,
		ConversionRate: 2.5,
	}

	analyticsService := service.NewAnalyticsService(analyticsRepo, partnerRepo, txRepo)

	analytics, err := analyticsService.GetPartnerAnalytics(ctx, partner.ID)
	require.NoError(t, err)

	assert.Equal(t, "Tech Blog", analytics.Partner.Name)
	assert.Equal(t, int64(4), analytics.Stats.TotalLinks)
	assert.Equal(t, 2.5, analytics.Stats.ConversionRate)
}

// TestAnalyticsService_GetPartnerAnalytics_NotFound несуществующий партнёр
func TestAnalyticsService_GetPartnerAnalytics_NotFound(t *testing.T) {
	analyticsService := service.NewAnalyticsService(
		mocks.NewMockAnalyticsRepository(),
		mocks.NewMockPartnerRepository(),
		mocks.NewMockTransactionRepository(),
	)

	ctx := context.Background()
	analytics, err := analyticsService.GetPartnerAnalytics(ctx, 999)

	assert.ErrorIs(t, err, repository.ErrPartnerNotFound)
	assert.Nil(t, analytics)
}
