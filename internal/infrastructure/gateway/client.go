// Package gateway implements the HTTP client for the Jaguar Express
// API. A single Client attaches the session bearer token to every
// request and centrally maps failure classes: 401 fires the
// unauthorized hook (forced logout), 5xx and transport failures emit
// generic notices, and any response carrying a structured message field
// surfaces that message.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
	"github.com/fred1edm/jaguarexpress/internal/core/ports"
	"github.com/fred1edm/jaguarexpress/internal/metrics"
)

const defaultTimeout = 10 * time.Second

const (
	msgServerError  = "Error del servidor. Intenta nuevamente."
	msgConnectivity = "Error de conexión. Verifica tu internet."
)

// APIError is a structured rejection from the API (4xx with or without
// a message field).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Options configures a Client.
type Options struct {
	// BaseURL is the API host, without the /api prefix.
	BaseURL string
	// Timeout bounds every round trip. Defaults to 10s.
	Timeout time.Duration
	// TokenSource returns the current bearer token, or "" when
	// unauthenticated.
	TokenSource func() string
	// Notifier receives the user-visible failure notices.
	Notifier ports.Notifier
	// OnUnauthorized runs whenever any call returns 401.
	OnUnauthorized func()
	// HTTPClient overrides the underlying client. Timeout is ignored
	// when set.
	HTTPClient *http.Client

	Logger zerolog.Logger
}

// Client is the API gateway. Obtain the per-resource surfaces through
// Auth, Merchants, Products, Orders, Location, Config and
// Notifications.
type Client struct {
	http           *http.Client
	baseURL        string
	tokenSource    func() string
	notifier       ports.Notifier
	onUnauthorized func()
	log            zerolog.Logger
}

func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}

	return &Client{
		http:           httpClient,
		baseURL:        strings.TrimSuffix(opts.BaseURL, "/"),
		tokenSource:    opts.TokenSource,
		notifier:       notifier,
		onUnauthorized: opts.OnUnauthorized,
		log:            opts.Logger,
	}
}

// do performs one round trip. route is the logical path template used
// for metrics and logging; path is the concrete request path under
// /api. When out is non-nil the response body is decoded into it.
func (c *Client) do(ctx context.Context, route, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + "/api" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.APIRequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(route, method, "0").Inc()
		metrics.APIFailuresTotal.WithLabelValues("connectivity").Inc()
		c.log.Warn().Err(err).Str("route", route).Msg("request failed")
		c.notifier.Error(msgConnectivity)
		return fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
	}
	defer resp.Body.Close()

	metrics.APIRequestsTotal.WithLabelValues(route, method, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.APIFailuresTotal.WithLabelValues("connectivity").Inc()
		c.notifier.Error(msgConnectivity)
		return fmt.Errorf("%w: read body: %v", domain.ErrConnectivity, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.mapFailure(route, resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// mapFailure applies the central failure-mapping contract.
func (c *Client) mapFailure(route string, status int, body []byte) error {
	switch {
	case status == http.StatusUnauthorized:
		metrics.APIFailuresTotal.WithLabelValues("unauthorized").Inc()
		c.log.Info().Str("route", route).Msg("session rejected")
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return domain.ErrUnauthorized

	case status >= http.StatusInternalServerError:
		metrics.APIFailuresTotal.WithLabelValues("server").Inc()
		c.log.Error().Int("status", status).Str("route", route).Msg("server error")
		c.notifier.Error(msgServerError)
		return fmt.Errorf("%w: status %d", domain.ErrServer, status)

	default:
		metrics.APIFailuresTotal.WithLabelValues("rejected").Inc()
		msg := gjson.GetBytes(body, "message").String()
		if msg == "" {
			msg = gjson.GetBytes(body, "error").String()
		}
		if msg != "" {
			c.notifier.Error(msg)
		} else {
			c.notifier.Error(msgConnectivity)
		}
		return &APIError{Status: status, Message: msg}
	}
}
