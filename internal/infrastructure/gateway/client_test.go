package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
	"github.com/fred1edm/jaguarexpress/internal/core/ports"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *recordingNotifier) lastError() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.errors) == 0 {
		return ""
	}
	return n.errors[len(n.errors)-1]
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordingNotifier, *bool) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	n := &recordingNotifier{}
	unauthorized := false
	c := New(Options{
		BaseURL:        srv.URL,
		TokenSource:    func() string { return "tok-123" },
		Notifier:       n,
		OnUnauthorized: func() { unauthorized = true },
		Logger:         zerolog.Nop(),
	})
	return c, n, &unauthorized
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var got string
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{}}`))
	})

	_, err := c.Auth().Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", got)
}

func TestClient_NoHeaderWithoutToken(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	t.Cleanup(srv.Close)

	c := New(Options{BaseURL: srv.URL, TokenSource: func() string { return "" }, Logger: zerolog.Nop()})
	_, err := c.Config().Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClient_UnauthorizedFiresHook(t *testing.T) {
	c, n, unauthorized := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Orders().ByID(context.Background(), "o1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.True(t, *unauthorized, "401 must trigger the forced-logout hook")
	assert.Empty(t, n.errors, "401 redirects, it does not toast")
}

func TestClient_ServerErrorNotice(t *testing.T) {
	c, n, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Merchants().Popular(context.Background())
	assert.ErrorIs(t, err, domain.ErrServer)
	assert.Equal(t, "Error del servidor. Intenta nuevamente.", n.lastError())
}

func TestClient_StructuredMessageSurfaced(t *testing.T) {
	c, n, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"success":false,"message":"El negocio está cerrado"}`))
	})

	_, err := c.Orders().Create(context.Background(), validOrderInput())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "El negocio está cerrado", apiErr.Message)
	assert.Equal(t, "El negocio está cerrado", n.lastError())
}

func TestClient_MessagelessRejectionFallsBack(t *testing.T) {
	c, n, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{}`))
	})

	_, err := c.Products().ByID(context.Background(), "nope")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Error de conexión. Verifica tu internet.", n.lastError())
}

func TestClient_ConnectivityFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // dead endpoint

	n := &recordingNotifier{}
	c := New(Options{BaseURL: srv.URL, Notifier: n, Logger: zerolog.Nop()})

	_, err := c.Merchants().Popular(context.Background())
	assert.ErrorIs(t, err, domain.ErrConnectivity)
	assert.Equal(t, "Error de conexión. Verifica tu internet.", n.lastError())
}

func validOrderInput() ports.CreateOrderInput {
	return ports.CreateOrderInput{
		MerchantID:      "m1",
		Lines:           []ports.OrderLine{{ProductID: "p1", Quantity: 1}},
		DeliveryAddress: "Calle 1 #2-3",
		PaymentMethod:   domain.PaymentCash,
	}
}

func TestClient_CreateOrderValidatedBeforeNetwork(t *testing.T) {
	called := false
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := c.Orders().Create(context.Background(), ports.CreateOrderInput{})
	require.Error(t, err)
	assert.False(t, called, "invalid checkout payloads never reach the network")
}
