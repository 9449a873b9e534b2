package service

import (
	"context"

	"github.com/benjp009/affiliate-tracker/internal/models"
	"github.com/benjp009/affiliate-tracker/internal/repository"
)

// Размеры выборок для дашборда
const (
	topLinksLimit           = 5
	recentTransactionsLimit = 5
)

// AnalyticsService сводная аналитика для дашборда
type AnalyticsService interface {
	GetOverview(ctx context.Context) (*models.OverviewResponse, error)
	GetPartnerAnalytics(ctx context.Context, partnerID int64) (*models.PartnerAnalyticsResponse, error)
}

type analyticsService struct {
	analyticsRepo   repository.AnalyticsRepository
	partnerRepo     repository.PartnerRepository
	transactionRepo repository.TransactionRepository
}

func NewAnalyticsService(
	analyticsRepo repository.AnalyticsRepository,
	partnerRepo repository.PartnerRepository,
	transactionRepo repository.TransactionRepository,
) AnalyticsService {
	return &analyticsService{
		analyticsRepo:   analyticsRepo,
		partnerRepo:     partnerRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *analyticsService) GetOverview(ctx context.Context) (*models.OverviewResponse, error) {
	overview, err := s.analyticsRepo.GetOverview(ctx)
	if err != nil {
		return nil, err
	}

	topLinks, err := s.analyticsRepo.GetTopLinks(ctx, topLinksLimit)
	if err != nil {
		return nil, err
	}

	// Список уже отсортирован по дате, берём последние
	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(transactions) > recentTransactionsLimit {
		transactions = transactions[:recentTransactionsLimit]
	}

	return &models.OverviewResponse{
		Overview:           *overview,
		TopLinks:           topLinks,
		RecentTransactions: transactions,
	}, nil
}

func (s *analyticsService) GetPartnerAnalytics(ctx context.Context, partnerID int64) (*models.PartnerAnalyticsResponse, error) {
	partner, err := s.partnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	stats, err := s.analyticsRepo.GetPartnerStats(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	return &models.PartnerAnalyticsResponse{
		Partner: *partner,
		Stats:   *stats,
	}, nil
}
