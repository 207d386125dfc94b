package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fred1edm/jaguarexpress/internal/config"
	"github.com/fred1edm/jaguarexpress/internal/core/domain"
	"github.com/fred1edm/jaguarexpress/internal/core/ports"
)

func testSettings(t *testing.T, baseURL string) *config.Settings {
	t.Helper()
	return &config.Settings{
		APIBaseURL:  baseURL,
		Timeout:     5 * time.Second,
		LogLevel:    "disabled",
		StoragePath: filepath.Join(t.TempDir(), "state.json"),
	}
}

func TestApp_LoginPersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.Write([]byte(`{"success":true,"data":{"user":{"id":"u1","nombre":"Ana","email":"ana@test.com"},"token":"tok-1"}}`))
		default:
			w.Write([]byte(`{"success":true}`))
		}
	}))
	t.Cleanup(srv.Close)

	cfg := testSettings(t, srv.URL)

	a, err := New(ctx, cfg, Options{})
	require.NoError(t, err)
	require.NoError(t, a.Session.Login(ctx, "ana@test.com", "secret1"))
	require.True(t, a.Session.IsAuthenticated())
	require.NoError(t, a.Close())

	// Same storage path, fresh process.
	b, err := New(ctx, cfg, Options{})
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })

	b.Bootstrap(ctx)
	assert.True(t, b.Session.IsAuthenticated())
	assert.Equal(t, "tok-1", b.Session.Token())
	require.NotNil(t, b.Session.User())
	assert.Equal(t, "Ana", b.Session.User().Name)
}

func TestApp_UnauthorizedClearsSessionAndNotifiesUI(t *testing.T) {
	ctx := context.Background()

	var authed atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			authed.Store(true)
			w.Write([]byte(`{"success":true,"data":{"user":{"id":"u1","nombre":"Ana","email":"ana@test.com"},"token":"tok-1"}}`))
		case "/api/pedidos":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.Write([]byte(`{"success":true}`))
		}
	}))
	t.Cleanup(srv.Close)

	expired := false
	a, err := New(ctx, testSettings(t, srv.URL), Options{OnAuthExpired: func() { expired = true }})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	require.NoError(t, a.Session.Login(ctx, "ana@test.com", "secret1"))

	_, err = a.Gateway.Orders().List(ctx, ports.OrderFilter{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.True(t, expired, "the forced-logout hook must fire on 401")
	assert.False(t, a.Session.IsAuthenticated())
	assert.Empty(t, a.Session.Token())
}

func TestApp_GatewayUsesSessionToken(t *testing.T) {
	ctx := context.Background()

	var gotAuth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.Write([]byte(`{"success":true,"data":{"user":{"id":"u1","nombre":"Ana","email":"ana@test.com"},"token":"tok-9"}}`))
		default:
			gotAuth.Store(r.Header.Get("Authorization"))
			w.Write([]byte(`{"success":true,"data":[]}`))
		}
	}))
	t.Cleanup(srv.Close)

	a, err := New(ctx, testSettings(t, srv.URL), Options{})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	require.NoError(t, a.Session.Login(ctx, "ana@test.com", "secret1"))
	_, err = a.Gateway.Merchants().Popular(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-9", gotAuth.Load())
}
