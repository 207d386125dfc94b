package store

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
)

// OrdersStore is a pure cache of the customer's placed orders plus the
// currently viewed one. All mutation inputs arrive from API responses
// owned by the caller; the store makes no network calls and never
// invents order states. The server is the sole authority on status
// transitions: merges are applied as given, a non-forward transition is
// only logged.
type OrdersStore struct {
	mu  sync.Mutex
	log zerolog.Logger

	orders  []domain.Order
	current *domain.Order
	loading bool
}

func NewOrdersStore(log zerolog.Logger) *OrdersStore {
	return &OrdersStore{log: log}
}

// SetOrders replaces the full cache, e.g. after a list fetch.
func (s *OrdersStore) SetOrders(orders []domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make([]domain.Order, len(orders))
	copy(s.orders, orders)
}

// AddOrder prepends a newly created order (most-recent-first).
func (s *OrdersStore) AddOrder(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]domain.Order{order}, s.orders...)
}

// UpdateOrder merges patch into the matching cached order. When that
// order is also the currently viewed one the same merge applies there,
// so the two views never diverge.
func (s *OrdersStore) UpdateOrder(orderID string, patch domain.OrderPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		s.warnOnBackwardTransition(s.orders[i].Status, patch)
		patch.Apply(&s.orders[i])
		break
	}

	if s.current != nil && s.current.ID == orderID {
		patch.Apply(s.current)
	}
}

// SetCurrentOrder sets the detail-view selection independent of the
// list. Pass nil to clear it.
func (s *OrdersStore) SetCurrentOrder(order *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order == nil {
		s.current = nil
		return
	}
	o := *order
	s.current = &o
}

func (s *OrdersStore) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// Orders returns a copy of the cached list, most recent first.
func (s *OrdersStore) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// CurrentOrder returns a copy of the detail-view selection, or nil.
func (s *OrdersStore) CurrentOrder() *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	o := *s.current
	return &o
}

func (s *OrdersStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// warnOnBackwardTransition flags merges the forward state machine does
// not allow. The merge still applies: the server decides.
func (s *OrdersStore) warnOnBackwardTransition(from domain.OrderStatus, patch domain.OrderPatch) {
	if patch.Status == nil || *patch.Status == from {
		return
	}
	if !from.CanTransitionTo(*patch.Status) {
		s.log.Warn().
			Str("from", string(from)).
			Str("to", string(*patch.Status)).
			Msg("server reported a non-forward status transition")
	}
}
