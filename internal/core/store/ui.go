package store

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
)

// BrowseFilters narrows the storefront browse views.
type BrowseFilters struct {
	Type      domain.MerchantType
	PriceMin  *decimal.Decimal
	PriceMax  *decimal.Decimal
	MinRating *float64
}

// UIStore owns ephemeral view state: search text, active filters and
// the sidebar flag. Nothing here is persisted.
type UIStore struct {
	mu sync.Mutex

	sidebarOpen bool
	searchQuery string
	filters     BrowseFilters
}

func NewUIStore() *UIStore {
	return &UIStore{}
}

func (s *UIStore) SetSidebarOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = open
}

func (s *UIStore) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

// SetFilters replaces the active filters wholesale.
func (s *UIStore) SetFilters(f BrowseFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
}

func (s *UIStore) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = BrowseFilters{}
}

func (s *UIStore) SidebarOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebarOpen
}

func (s *UIStore) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

func (s *UIStore) Filters() BrowseFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}
