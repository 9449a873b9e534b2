package dashboard

import (
	"sync"

	"github.com/benjp009/affiliate-tracker/internal/models"
)

// View одно из четырёх представлений дашборда
type View string

const (
	ViewDashboard    View = "dashboard"
	ViewPartners     View = "partners"
	ViewLinks        View = "links"
	ViewTransactions View = "transactions"
)

// Store держит снапшоты последних ответов API по трём спискам сущностей
// и маркер активного представления. Снапшот заменяется только целиком:
// никакого точечного слияния или мутации полей.
//
// Поздний ответ устаревшей загрузки не должен перетирать более свежий
// снапшот, поэтому каждая загрузка получает номер поколения: BeginLoad
// выдаёт номер, Replace* принимает список только при совпадении номера
// с последним выданным.
type Store struct {
	mu          sync.RWMutex
	currentView View

	partners     []models.Partner
	links        []models.Link
	transactions []models.Transaction

	generations map[View]uint64
}

func NewStore() *Store {
	return &Store{
		currentView: ViewDashboard,
		generations: make(map[View]uint64),
	}
}

func (s *Store) CurrentView() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentView
}

// SetCurrentView отмечает активное представление при навигации
func (s *Store) SetCurrentView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentView = v
}

// BeginLoad регистрирует новую загрузку представления и возвращает её поколение
func (s *Store) BeginLoad(v View) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[v]++
	return s.generations[v]
}

// ReplacePartners целиком заменяет кэш партнёров; устаревшее поколение отбрасывается
func (s *Store) ReplacePartners(gen uint64, partners []models.Partner) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generations[ViewPartners] {
		return false
	}
	s.partners = partners
	return true
}

func (s *Store) ReplaceLinks(gen uint64, links []models.Link) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generations[ViewLinks] {
		return false
	}
	s.links = links
	return true
}

func (s *Store) ReplaceTransactions(gen uint64, transactions []models.Transaction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generations[ViewTransactions] {
		return false
	}
	s.transactions = transactions
	return true
}

// Partners возвращает копию текущего снапшота партнёров
func (s *Store) Partners() []models.Partner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Partner, len(s.partners))
	copy(out, s.partners)
	return out
}

func (s *Store) Links() []models.Link {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Link, len(s.links))
	copy(out, s.links)
	return out
}

func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}
