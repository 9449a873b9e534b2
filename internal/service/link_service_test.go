package service_test

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjp009/affiliate-tracker/internal/models"
	"github.com/benjp009/affiliate-tracker/internal/repository"
	"github.com/benjp009/affiliate-tracker/internal/service"
	"github.com/benjp009/affiliate-tracker/internal/service/mocks"
)

// setupLinkService создаёт тестовое окружение с моковыми репозиториями
func setupLinkService() (service.LinkService, *mocks.MockLinkRepository, *mocks.MockCacheRepository) {
	linkRepo := mocks.NewMockLinkRepository()
	cacheRepo := mocks.NewMockCacheRepository()
	logger, _ := zap.NewDevelopment()
	linkService := service.NewLinkService(linkRepo, cacheRepo, logger)
	return linkService, linkRepo, cacheRepo
}

// TestLinkService_CreateLink_Success проверяет успешное создание ссылки
func TestLinkService_CreateLink_Success(t *testing.T) {
	linkService, _, _ := setupLinkService()

	input := &models.CreateLinkInput{
		PartnerID:      1,
		BrandName:      "Amazon",
		AffiliateURL:   "https://amazon.com/dp/B000?tag=me",
		CommissionRate: 4.5,
	}

	ctx := context.Background()
	link, err := linkService.CreateLink(ctx, input)

	require.NoError(t, err)
	assert.NotZero(t, link.ID)
	assert.Equal(t, "Amazon", link.BrandName)
	assert.Equal(t, models.LinkStatusActive, link.Status)
	assert.Equal(t, 4.5, link.CommissionRate)
}

// TestLinkService_CreateLink_InvalidURL проверяет отклонение невалидного URL
func TestLinkService_CreateLink_InvalidURL(t *testing.T) {
	invalidURLs := []string{
		"not-a-url",
		"ftp://example.com",
		"",
		"example.com",
	}

	for _, url := range invalidURLs {
		linkService, _, _ := setupLinkService()
		input := &models.CreateLinkInput{
			PartnerID:    1,
			BrandName:    "Amazon",
			AffiliateURL: url,
		}

		ctx := context.Background()
		link, err := linkService.CreateLink(ctx, input)

		assert.ErrorIs(t, err, service.ErrInvalidURL, "URL должен быть невалидным: %s", url)
		assert.Nil(t, link)
	}
}

// TestLinkService_CreateLink_InvalidCommission комиссия вне диапазона 0-100
func TestLinkService_CreateLink_InvalidCommission(t *testing.T) {
	for _, rate := range []float64{-1, 100.5} {
		linkService, _, _ := setupLinkService()
		input := &models.CreateLinkInput{
			PartnerID:      1,
			BrandName:      "Amazon",
			AffiliateURL:   "https://amazon.com/dp/B000",
			CommissionRate: rate,
		}

		ctx := context.Background()
		link, err := linkService.CreateLink(ctx, input)

		assert.ErrorIs(t, err, service.ErrInvalidCommission)
		assert.Nil(t, link)
	}
}

// TestLinkService_CreateLink_CachesLink созданная ссылка попадает в кэш редиректа
func TestLinkService_CreateLink_CachesLink(t *testing.T) {
	linkService, _, cacheRepo := setupLinkService()

	ctx := context.Background()
	link, err := linkService.CreateLink(ctx, &models.CreateLinkInput{
		PartnerID:    1,
		BrandName:    "Amazon",
		AffiliateURL: "https://amazon.com/dp/B000",
	})
	require.NoError(t, err)

	cached, err := cacheRepo.Get(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, link.AffiliateURL, cached.AffiliateURL)
}

// TestLinkService_GetLink_FallsBackToDB при пустом кэше ссылка берётся из БД и кэшируется
func TestLinkService_GetLink_FallsBackToDB(t *testing.T) {
	linkService, _, cacheRepo := setupLinkService()

	ctx := context.Background()
	link, err := linkService.CreateLink(ctx, &models.CreateLinkInput{
		PartnerID:    1,
		BrandName:    "Amazon",
		AffiliateURL: "https://amazon.com/dp/B000",
	})
	require.NoError(t, err)

	// Сбрасываем кэш и читаем снова
	require.NoError(t, cacheRepo.Delete(ctx, link.ID))

	retrieved, err := linkService.GetLink(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, link.ID, retrieved.ID)

	// Ссылка снова в кэше
	_, err = cacheRepo.Get(ctx, link.ID)
	assert.NoError(t, err)
}

// TestLinkService_GetLink_NotFound проверяет обработку несуществующей ссылки
func TestLinkService_GetLink_NotFound(t *testing.T) {
	linkService, _, _ := setupLinkService()

	ctx := context.Background()
	link, err := linkService.GetLink(ctx, 999)

	assert.ErrorIs(t, err, repository.ErrLinkNotFound)
	assert.Nil(t, link)
}

// TestLinkService_DeleteLink_Success удаление инвалидирует кэш и БД
func TestLinkService_DeleteLink_Success(t *testing.T) {
	linkService, linkRepo, cacheRepo := setupLinkService()

	ctx := context.Background()
	link, err := linkService.CreateLink(ctx, &models.CreateLinkInput{
		PartnerID:    1,
		BrandName:    "Amazon",
		AffiliateURL: "https://amazon.com/dp/B000",
	})
	require.NoError(t, err)

	err = linkService.DeleteLink(ctx, link.ID)
	require.NoError(t, err)

	_, err = cacheRepo.Get(ctx, link.ID)
	assert.Error(t, err)

	_, err = linkRepo.GetByID(ctx, link.ID)
	assert.ErrorIs(t, err, repository.ErrLinkNotFound)
}

// TestLinkService_ListLinks_Filter проверяет фильтрацию по партнёру и статусу
func TestLinkService_ListLinks_Filter(t *testing.T) {
	linkService, _, _ := setupLinkService()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		partnerID := int64(1)
		status := models.LinkStatusActive
		if i%2 == 1 {
			partnerID = 2
			status = models.LinkStatusInactive
		}
		_, err := linkService.CreateLink(ctx, &models.CreateLinkInput{
			PartnerID:    partnerID,
			BrandName:    fmt.Sprintf("Brand %d", i),
			AffiliateURL: fmt.Sprintf("https://example.com/%d", i),
			Status:       status,
		})
		require.NoError(t, err)
	}

	partnerID := int64(1)
	links, err := linkService.ListLinks(ctx, models.LinkFilter{PartnerID: &partnerID})
	require.NoError(t, err)
	assert.Len(t, links, 2)

	links, err = linkService.ListLinks(ctx, models.LinkFilter{Status: models.LinkStatusInactive})
	require.NoError(t, err)
	assert.Len(t, links, 2)

	links, err = linkService.ListLinks(ctx, models.LinkFilter{})
	require.NoError(t, err)
	assert.Len(t, links, 4)
}

// TestLinkService_ConcurrentAccess проверяет потокобезопасность при одновременном доступе
func TestLinkService_ConcurrentAccess(t *testing.T) {
	linkService, _, _ := setupLinkService()

	ctx := context.Background()
	done := make(chan bool, 10)

	for i := 0; i < 10; i++ {
		go func(id int) {
			link, err := linkService.CreateLink(ctx, &models.CreateLinkInput{
				PartnerID:    1,
				BrandName:    fmt.Sprintf("Brand %d", id),
				AffiliateURL: fmt.Sprintf("https://example.com/%d", id),
			})
			assert.NoError(t, err)
			assert.NotNil(t, link)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
