package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/benjp009/affiliate-tracker/internal/models"
	"github.com/benjp009/affiliate-tracker/internal/repository"
)

// MockPartnerRepository implements repository.PartnerRepository for testing
type MockPartnerRepository struct {
	mu       sync.RWMutex
	partners map[int64]*models.Partner
	nextID   int64
}

func NewMockPartnerRepository() *MockPartnerRepository {
	return &MockPartnerRepository{
		partners: make(map[int64]*models.Partner),
		nextID:   1,
	}
}

func (m *MockPartnerRepository) Create(ctx context.Context, partner *models.Partner) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	partner.ID = m.nextID
	partner.CreatedAt = time.Now()
	partner.UpdatedAt = partner.CreatedAt
	m.nextID++
	m.partners[partner.ID] = partner
	return nil
}

func (m *MockPartnerRepository) List(ctx context.Context) ([]models.Partner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	partners := []models.Partner{}
	for _, p := range m.partners {
		partners = append(partners, *p)
	}
	return partners, nil
}

func (m *MockPartnerRepository) GetByID(ctx context.Context, id int64) (*models.Partner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	partner, exists := m.partners[id]
	if !exists {
		return nil, repository.ErrPartnerNotFound
	}
	return partner, nil
}

func (m *MockPartnerRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.partners[id]; !exists {
		return repository.ErrPartnerNotFound
	}
	delete(m.partners, id)
	return nil
}

// MockLinkRepository implements repository.LinkRepository for testing
type MockLinkRepository struct {
	mu     sync.RWMutex
	links  map[int64]*models.Link
	nextID int64
}

func NewMockLinkRepository() *MockLinkRepository {
	return &MockLinkRepository{
		links:  make(map[int64]*models.Link),
		nextID: 1,
	}
}

func (m *MockLinkRepository) Create(ctx context.Context, link *models.Link) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	link.ID = m.nextID
	link.CreatedAt = time.Now()
	m.nextID++
	m.links[link.ID] = link
	return nil
}

func (m *MockLinkRepository) List(ctx context.Context, filter models.LinkFilter) ([]models.Link, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	links := []models.Link{}
	for _, l := range m.links {
		if filter.PartnerID != nil && l.PartnerID != *filter.PartnerID {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		links = append(links, *l)
	}
	return links, nil
}

func (m *MockLinkRepository) GetByID(ctx context.Context, id int64) (*models.Link, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	link, exists := m.links[id]
	if !exists {
		return nil, repository.ErrLinkNotFound
	}
	return link, nil
}

func (m *MockLinkRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.links[id]; !exists {
		return repository.ErrLinkNotFound
	}
	delete(m.links, id)
	return nil
}

// MockCacheRepository implements repository.CacheRepository for testing
type MockCacheRepository struct {
	mu    sync.RWMutex
	cache map[int64]*models.Link
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{
		cache: make(map[int64]*models.Link),
	}
}

func (m *MockCacheRepository) Get(ctx context.Context, linkID int64) (*models.Link, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	link, exists := m.cache[linkID]
	if !exists {
		return nil, repository.ErrLinkNotFound
	}
	return link, nil
}

func (m *MockCacheRepository) Set(ctx context.Context, link *models.Link, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache[link.ID] = link
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, linkID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cache, linkID)
	return nil
}

// MockTransactionRepository implements repository.TransactionRepository for testing
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[int64]*models.Transaction
	nextID       int64
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[int64]*models.Transaction),
		nextID:       1,
	}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx.ID = m.nextID
	m.nextID++
	m.transactions[tx.ID] = tx
	return nil
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	transactions := []models.Transaction{}
	for _, tx := range m.transactions {
		transactions = append(transactions, *tx)
	}
	return transactions, nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tx, exists := m.transactions[id]
	if !exists {
		return nil, repository.ErrTransactionNotFound
	}
	return tx, nil
}

func (m *MockTransactionRepository) Update(ctx context.Context, id int64, input *models.UpdateTransactionInput) (*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx, exists := m.transactions[id]
	if !exists {
		return nil, repository.ErrTransactionNotFound
	}

	tx.Status = input.Status
	tx.AmountPaid = input.AmountPaid
	if input.PayoutDate != nil {
		tx.PayoutDate = input.PayoutDate
	} else if input.Status == models.TransactionStatusPaid && tx.PayoutDate == nil {
		now := time.Now()
		tx.PayoutDate = &now
	}
	return tx, nil
}

// MockAnalyticsRepository implements repository.AnalyticsRepository for testing.
// Returned values are configured directly through the struct fields.
type MockAnalyticsRepository struct {
	Overview     models.Overview
	TopLinks     []models.TopLink
	PartnerStats map[int64]*models.PartnerStats
}

func NewMockAnalyticsRepository() *MockAnalyticsRepository {
	return &MockAnalyticsRepository{
		PartnerStats: make(map[int64]*models.PartnerStats),
	}
}

func (m *MockAnalyticsRepository) GetOverview(ctx context.Context) (*models.Overview, error) {
	overview := m.Overview
	return &overview, nil
}

func (m *MockAnalyticsRepository) GetTopLinks(ctx context.Context, limit int) ([]models.TopLink, error) {
	if len(m.TopLinks) > limit {
		return m.TopLinks[:limit], nil
	}
	return m.TopLinks, nil
}

func (m *MockAnalyticsRepository) GetPartnerStats(ctx context.Context, partnerID int64) (*models.PartnerStats, error) {
	stats, exists := m.PartnerStats[partnerID]
	if !exists {
		return &models.PartnerStats{}, nil
	}
	return stats, nil
}

// MockClickRepository implements repository.ClickRepository for testing
type MockClickRepository struct {
	mu     sync.RWMutex
	clicks map[int64][]*models.Click // link_id -> clicks
}

func NewMockClickRepository() *MockClickRepository {
	return &MockClickRepository{
		clicks: make(map[int64][]*models.Click),
	}
}

func (m *MockClickRepository) RecordClick(ctx context.Context, click *models.Click) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clicks[click.LinkID] = append(m.clicks[click.LinkID], click)
	return nil
}

func (m *MockClickRepository) GetDailyStats(ctx context.Context, linkID int64, days int) ([]models.DailyClickStats, error) {
	return []models.DailyClickStats{}, nil
}

func (m *MockClickRepository) CountClicks(linkID int64) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clicks[linkID])
}
