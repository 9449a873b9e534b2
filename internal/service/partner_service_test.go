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

// TestPartnerService_CreatePartner_Success проверяет успешное создание партнёра
func TestPartnerService_CreatePartner_Success(t *testing.T) {
	partnerService := service.NewPartnerService(mocks.NewMockPartnerRepository())

	username := "techblog"
	input := &models.CreatePartnerInput{
		Name:     "Tech Blog",
		Platform: "blog",
		Username: &username,
		Status:   "active",
	}

	ctx := context.Background()
	partner, err := partnerService.CreatePartner(ctx, input)

	require.NoError(t, err)
	assert.NotZero(t, partner.ID)
	assert.Equal(t, "Tech Blog", partner.Name)
	assert.Equal(t, "active", partner.Status)
	assert.NotZero(t, partner.CreatedAt)
}

// TestPartnerService_CreatePartner_DefaultStatus пустой статус становится active
func TestPartnerService_CreatePartner_DefaultStatus(t *testing.T) {
	partnerService := service.NewPartnerService(mocks.NewMockPartnerRepository())

	input := &models.CreatePartnerInput{
		Name:     "Instagram Shop",
		Platform: "instagram",
	}

	ctx := context.Background()
	partner, err := partnerService.CreatePartner(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, models.PartnerStatusActive, partner.Status)
}

// TestPartnerService_CreatePartner_InvalidStatus проверяет отклонение неизвестного статуса
func TestPartnerService_CreatePartner_InvalidStatus(t *testing.T) {
	partnerService := service.NewPartnerService(mocks.NewMockPartnerRepository())

	input := &models.CreatePartnerInput{
		Name:     "Tech Blog",
		Platform: "blog",
		Status:   "suspended",
	}

	ctx := context.Background()
	partner, err := partnerService.CreatePartner(ctx, input)

	assert.ErrorIs(t, err, service.ErrInvalidStatus)
	assert.Nil(t, partner)
}

// TestPartnerService_DeletePartner_Success проверяет удаление партнёра
func TestPartnerService_DeletePartner_Success(t *testing.T) {
	partnerRepo := mocks.NewMockPartnerRepository()
	partnerService := service.NewPartnerService(partnerRepo)

	ctx := context.Background()
	partner, err := partnerService.CreatePartner(ctx, &models.CreatePartnerInput{
		Name:     "Tech Blog",
		Platform: "blog",
	})
	require.NoError(t, err)

	err = partnerService.DeletePartner(ctx, partner.ID)
	require.NoError(t, err)

	_, err = partnerService.GetPartner(ctx, partner.ID)
	assert.ErrorIs(t, err, repository.ErrPartnerNotFound)
}

// TestPartnerService_DeletePartner_NotFound удаление несуществующего партнёра
func TestPartnerService_DeletePartner_NotFound(t *testing.T) {
	partnerService := service.NewPartnerService(mocks.NewMockPartnerRepository())

	ctx := context.Background()
	err := partnerService.DeletePartner(ctx, 999)

	assert.ErrorIs(t, err, repository.ErrPartnerNotFound)
}

// TestPartnerService_ListPartners проверяет список партнёров
func TestPartnerService_ListPartners(t *testing.T) {
	partnerService := service.NewPartnerService(mocks.NewMockPartnerRepository())

	ctx := context.Background()
	for _, name := range []string{"Blog A", "Blog B", "Blog C"} {
		_, err := partnerService.CreatePartner(ctx, &models.CreatePartnerInput{
			Name:     name,
			Platform: "blog",
		})
		require.NoError(t, err)
	}

	partners, err := partnerService.ListPartners(ctx)
	require.NoError(t, err)
	assert.Len(t, partners, 3)
}
