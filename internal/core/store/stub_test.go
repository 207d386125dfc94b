package store

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
	"github.com/fred1edm/jaguarexpress/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs for the store collaborators
// ---------------------------------------------------------------------------

type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *fakeNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *fakeNotifier) lastError() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.errors) == 0 {
		return ""
	}
	return n.errors[len(n.errors)-1]
}

// memStorage mirrors storage.Memory without the import cycle risk of
// reaching into infrastructure from core tests.
type memStorage struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string]string)}
}

func (m *memStorage) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return v, nil
}

func (m *memStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStorage) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memStorage) Close() error { return nil }

func (m *memStorage) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

// stubAuthAPI answers credential calls with canned results, optionally
// blocking until released so tests can interleave operations.
type stubAuthAPI struct {
	mu        sync.Mutex
	user      *domain.User
	token     string
	err       error
	logoutErr error

	loginCalls  int
	updateCalls int

	// When set, Login blocks until the channel is closed.
	gate chan struct{}
}

var _ ports.AuthAPI = (*stubAuthAPI)(nil)

func (s *stubAuthAPI) result() (*ports.AuthResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	u := *s.user
	return &ports.AuthResult{User: &u, Token: s.token}, nil
}

func (s *stubAuthAPI) Login(_ context.Context, _ ports.LoginInput) (*ports.AuthResult, error) {
	s.mu.Lock()
	s.loginCalls++
	gate := s.gate
	s.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return s.result()
}

func (s *stubAuthAPI) Register(_ context.Context, _ ports.RegisterInput) (*ports.AuthResult, error) {
	return s.result()
}

func (s *stubAuthAPI) Logout(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logoutErr
}

func (s *stubAuthAPI) Profile(context.Context) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	u := *s.user
	return &u, nil
}

func (s *stubAuthAPI) UpdateProfile(_ context.Context, in ports.ProfileUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateCalls++
	if s.err != nil {
		return nil, s.err
	}
	u := *s.user
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Phone != "" {
		u.Phone = in.Phone
	}
	if in.Address != "" {
		u.Address = in.Address
	}
	return &u, nil
}

func (s *stubAuthAPI) ChangePassword(context.Context, ports.ChangePasswordInput) error {
	return s.err
}

func (s *stubAuthAPI) ForgotPassword(context.Context, string) error { return s.err }

func (s *stubAuthAPI) ResetPassword(context.Context, string, string) error { return s.err }

// stubGeolocator returns a fixed coordinate or error.
type stubGeolocator struct {
	at  domain.Coordinates
	err error
}

func (g *stubGeolocator) Current(context.Context) (domain.Coordinates, error) {
	if g.err != nil {
		return domain.Coordinates{}, g.err
	}
	return g.at, nil
}

// testProduct builds a product priced in whole pesos.
func testProduct(id, merchantID string, price int64) domain.Product {
	return domain.Product{
		ID:         id,
		Name:       "Producto " + id,
		Price:      decimal.NewFromInt(price),
		Category:   "general",
		Available:  true,
		MerchantID: merchantID,
	}
}
