package service

import (
	"context"
	"sync"
	"time"

	"github.com/benjp009/affiliate-tracker/internal/models"
	"github.com/benjp009/affiliate-tracker/internal/repository"
	"go.uber.org/zap"
)

// Константы worker pool
const (
	defaultWorkerCount   = 3    // Количество воркеров
	defaultChannelBuffer = 1000 // Размер буфера канала
	maxRetries           = 3    // Максимальное количество попыток записи
)

// ClickProcessor интерфейс для асинхронного учёта кликов по партнёрским ссылкам
type ClickProcessor interface {
	Start()
	Stop()
	RecordClick(ctx context.Context, event *models.ClickEvent) error
	GetDailyStats(ctx context.Context, linkID int64, days int) ([]models.DailyClickStats, error)
}

// clickProcessor реализация процессора кликов с использованием Worker Pool
type clickProcessor struct {
	clickRepo    repository.ClickRepository
	logger       *zap.Logger
	clickChannel chan *models.ClickEvent // Канал для событий кликов
	workerCount  int                     // Количество воркеров
	wg           sync.WaitGroup          // WaitGroup для ожидания завершения воркеров
	ctx          context.Context
	cancel       context.CancelFunc
}

// NewClickProcessor создаёт новый экземпляр процессора кликов
func NewClickProcessor(clickRepo repository.ClickRepository, logger *zap.Logger) ClickProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &clickProcessor{
		clickRepo:    clickRepo,
		logger:       logger,
		clickChannel: make(chan *models.ClickEvent, defaultChannelBuffer),
		workerCount:  defaultWorkerCount,
	}
}

// Start запускает worker pool
func (p *clickProcessor) Start() {
	p.ctx, p.cancel = context.WithCancel(context.Background())

	p.logger.Info("Запуск воркеров процессора кликов", zap.Int("count", p.workerCount))

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Stop корректно останавливает worker pool
func (p *clickProcessor) Stop() {
	p.logger.Info("Остановка процессора кликов...")
	p.cancel()
	p.wg.Wait()
	p.logger.Info("Процессор кликов остановлен")
}

// worker обрабатывает события кликов из канала
func (p *clickProcessor) worker(id int) {
	defer p.wg.Done()

	p.logger.Debug("Воркер кликов запущен", zap.Int("id", id))

	for {
		select {
		case <-p.ctx.Done():
			p.logger.Debug("Воркер кликов остановлен", zap.Int("id", id))
			return

		case event, ok := <-p.clickChannel:
			if !ok {
				return
			}
			p.processClick(event)
		}
	}
}

// processClick обрабатывает одно событие клика с retry логикой
func (p *clickProcessor) processClick(event *models.ClickEvent) {
	ctx, cancel := context.WithTimeout(p.ctx, 5*time.Second)
	defer cancel()

	click := &models.Click{
		LinkID:    event.LinkID,
		IPAddress: event.IPAddress,
		UserAgent: event.UserAgent,
		Referer:   event.Referer,
		ClickedAt: time.Now(),
	}

	// Retry логика для записи в БД
	var err error
	for i := 0; i < maxRetries; i++ {
		if err = p.clickRepo.RecordClick(ctx, click); err == nil {
			return
		}
		if i < maxRetries-1 {
			p.logger.Debug("Повторная попытка записи клика",
				zap.Int64("link_id", event.LinkID),
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(time.Duration(i+1) * 100 * time.Millisecond)
		}
	}

	p.logger.Error("Не удалось записать клик после всех попыток",
		zap.Int64("link_id", event.LinkID),
		zap.Error(err),
	)
}

// RecordClick отправляет событие клика в worker pool (неблокирующая операция)
func (p *clickProcessor) RecordClick(ctx context.Context, event *models.ClickEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.clickChannel <- event:
		return nil
	default:
		// Канал заполнен: теряем статистику, но не блокируем редирект
		p.logger.Warn("Буфер канала кликов заполнен, событие потеряно",
			zap.Int64("link_id", event.LinkID),
		)
		return nil
	}
}

// GetDailyStats получает дневную статистику кликов по ссылке
func (p *clickProcessor) GetDailyStats(ctx context.Context, linkID int64, days int) ([]models.DailyClickStats, error) {
	return p.clickRepo.GetDailyStats(ctx, linkID, days)
}
