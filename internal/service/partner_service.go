package service

import (
	"context"
	"errors"

	"github.com/benjp009/affiliate-tracker/internal/models"
	"github.com/benjp009/affiliate-tracker/internal/repository"
)

// Ошибки сервисов
var (
	ErrInvalidStatus = errors.New("invalid status value")
)

// PartnerService интерфейс сервиса партнёров
type PartnerService interface {
	CreatePartner(ctx context.Context, input *models.CreatePartnerInput) (*models.Partner, error)
	ListPartners(ctx context.Context) ([]models.Partner, error)
	GetPartner(ctx context.Context, id int64) (*models.Partner, error)
	DeletePartner(ctx context.Context, id int64) error
}

type partnerService struct {
	partnerRepo repository.PartnerRepository
}

func NewPartnerService(partnerRepo repository.PartnerRepository) PartnerService {
	return &partnerService{partnerRepo: partnerRepo}
}

func (s *partnerService) CreatePartner(ctx context.Context, input *models.CreatePartnerInput) (*models.Partner, error) {
	status := input.Status
	if status == "" {
		status = models.PartnerStatusActive
	}
	if !validPartnerStatus(status) {
		return nil, ErrInvalidStatus
	}

	partner := &models.Partner{
		Name:     input.Name,
		Platform: input.Platform,
		Username: input.Username,
		Status:   status,
	}

	if err := s.partnerRepo.Create(ctx, partner); err != nil {
		return nil, err
	}

	return partner, nil
}

func (s *partnerService) ListPartners(ctx context.Context) ([]models.Partner, error) {
	return s.partnerRepo.List(ctx)
}

func (s *partnerService) GetPartner(ctx context.Context, id int64) (*models.Partner, error) {
	return s.partnerRepo.GetByID(ctx, id)
}

// DeletePartner удаляет партнёра; ссылки, клики и транзакции уходят каскадом на стороне БД
func (s *partnerService) DeletePartner(ctx context.Context, id int64) error {
	return s.partnerRepo.Delete(ctx, id)
}

func validPartnerStatus(status string) bool {
	switch status {
	case models.PartnerStatusActive, models.PartnerStatusInactive, models.PartnerStatusPending:
		return true
	}
	return false
}
