package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/benjp009/affiliate-tracker/internal/models"
	"github.com/benjp009/affiliate-tracker/internal/repository"
	"go.uber.org/zap"
)

// Ошибки сервиса ссылок
var (
	ErrInvalidURL        = errors.New("invalid affiliate URL")
	ErrInvalidCommission = errors.New("commission rate out of range")
)

// cacheTTL время жизни ссылки в кэше редиректа. Короткое намеренно:
// после каскадного удаления партнёра ссылка может пережить его в кэше не дольше TTL.
const cacheTTL = 10 * time.Minute

var urlPattern = regexp.MustCompile(`^https?://[^\s]+$`)

// LinkService интерфейс сервиса партнёрских ссылок
type LinkService interface {
	CreateLink(ctx context.Context, input *models.CreateLinkInput) (*models.Link, error)
	ListLinks(ctx context.Context, filter models.LinkFilter) ([]models.Link, error)
	GetLink(ctx context.Context, id int64) (*models.Link, error)
	DeleteLink(ctx context.Context, id int64) error
}

type linkService struct {
	linkRepo  repository.LinkRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
}

func NewLinkService(linkRepo repository.LinkRepository, cacheRepo repository.CacheRepository, logger *zap.Logger) LinkService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &linkService{
		linkRepo:  linkRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

func (s *linkService) CreateLink(ctx context.Context, input *models.CreateLinkInput) (*models.Link, error) {
	if !urlPattern.MatchString(input.AffiliateURL) {
		return nil, ErrInvalidURL
	}
	if input.CommissionRate < 0 || input.CommissionRate > 100 {
		return nil, ErrInvalidCommission
	}

	status := input.Status
	if status == "" {
		status = models.LinkStatusActive
	}
	if !validLinkStatus(status) {
		return nil, ErrInvalidStatus
	}

	link := &models.Link{
		PartnerID:      input.PartnerID,
		BrandName:      input.BrandName,
		ProductName:    input.ProductName,
		AffiliateURL:   input.AffiliateURL,
		OriginalURL:    input.OriginalURL,
		CommissionRate: input.CommissionRate,
		Status:         status,
	}

	if err := s.linkRepo.Create(ctx, link); err != nil {
		return nil, err
	}

	// Кэширование для редиректа; ошибка кэша не мешает созданию
	if err := s.cacheRepo.Set(ctx, link, cacheTTL); err != nil {
		s.logger.Debug("Failed to cache link", zap.Int64("link_id", link.ID), zap.Error(err))
	}

	return link, nil
}

func (s *linkService) ListLinks(ctx context.Context, filter models.LinkFilter) ([]models.Link, error) {
	return s.linkRepo.List(ctx, filter)
}

// GetLink получает ссылку по ID: сначала из кэша, затем из БД (cache-aside)
func (s *linkService) GetLink(ctx context.Context, id int64) (*models.Link, error) {
	link, err := s.cacheRepo.Get(ctx, id)
	if err == nil {
		return link, nil
	}

	link, err = s.linkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepo.Set(ctx, link, cacheTTL); err != nil {
		s.logger.Debug("Failed to cache link", zap.Int64("link_id", link.ID), zap.Error(err))
	}

	return link, nil
}

func (s *linkService) DeleteLink(ctx context.Context, id int64) error {
	// Сначала кэш, чтобы редирект не воскресил удалённую ссылку
	if err := s.cacheRepo.Delete(ctx, id); err != nil {
		s.logger.Debug("Failed to invalidate link cache", zap.Int64("link_id", id), zap.Error(err))
	}

	return s.linkRepo.Delete(ctx, id)
}

func validLinkStatus(status string) bool {
	switch status {
	case models.LinkStatusActive, models.LinkStatusInactive, models.LinkStatusExpired:
		return true
	}
	return false
}
