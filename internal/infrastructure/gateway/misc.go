package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
	"github.com/fred1edm/jaguarexpress/internal/core/ports"
)

// ── Location ─────────────────────────────────────────────────────────────────

type locationAPI struct {
	c *Client
}

var _ ports.LocationAPI = (*locationAPI)(nil)

// Location returns the geocoding surface.
func (c *Client) Location() ports.LocationAPI {
	return &locationAPI{c: c}
}

// geocodePayload is the data field of the geocoding endpoints.
type geocodePayload struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formatted_address"`
}

func (l *locationAPI) Geocode(ctx context.Context, address string) (*ports.GeocodeResult, error) {
	q := url.Values{}
	q.Set("address", address)

	var env envelope[geocodePayload]
	if err := l.c.do(ctx, "/ubicacion/geocode", http.MethodGet, "/ubicacion/geocode", q, nil, &env); err != nil {
		return nil, err
	}
	return &ports.GeocodeResult{
		Coordinates:      domain.Coordinates{Lat: env.Data.Lat, Lng: env.Data.Lng},
		FormattedAddress: env.Data.FormattedAddress,
	}, nil
}

func (l *locationAPI) ReverseGeocode(ctx context.Context, at domain.Coordinates) (string, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(at.Lng, 'f', -1, 64))

	var env envelope[geocodePayload]
	if err := l.c.do(ctx, "/ubicacion/reverse-geocode", http.MethodGet, "/ubicacion/reverse-geocode", q, nil, &env); err != nil {
		return "", err
	}
	return env.Data.FormattedAddress, nil
}

// ── Configuration ────────────────────────────────────────────────────────────

type configAPI struct {
	c *Client
}

var _ ports.ConfigAPI = (*configAPI)(nil)

// Config returns the remote configuration surface.
func (c *Client) Config() ports.ConfigAPI {
	return &configAPI{c: c}
}

func (cf *configAPI) Get(ctx context.Context) ([]domain.ConfigEntry, error) {
	var env envelope[[]domain.ConfigEntry]
	if err := cf.c.do(ctx, "/configuracion", http.MethodGet, "/configuracion", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// ── Notifications ────────────────────────────────────────────────────────────

type notificationAPI struct {
	c *Client
}

var _ ports.NotificationAPI = (*notificationAPI)(nil)

// Notifications returns the notification surface.
func (c *Client) Notifications() ports.NotificationAPI {
	return &notificationAPI{c: c}
}

func (n *notificationAPI) List(ctx context.Context, f ports.NotificationFilter) (*ports.NotificationPage, error) {
	q := url.Values{}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Read != nil {
		q.Set("leida", strconv.FormatBool(*f.Read))
	}

	var env pageEnvelope[domain.Notification]
	if err := n.c.do(ctx, "/notificaciones", http.MethodGet, "/notificaciones", q, nil, &env); err != nil {
		return nil, err
	}
	return &ports.NotificationPage{Notifications: env.Data, Pagination: env.Pagination}, nil
}

func (n *notificationAPI) MarkRead(ctx context.Context, id string) error {
	path := "/notificaciones/" + url.PathEscape(id) + "/read"
	return n.c.do(ctx, "/notificaciones/:id/read", http.MethodPut, path, nil, nil, nil)
}

func (n *notificationAPI) MarkAllRead(ctx context.Context) error {
	return n.c.do(ctx, "/notificaciones/read-all", http.MethodPut, "/notificaciones/read-all", nil, nil, nil)
}

func (n *notificationAPI) Delete(ctx context.Context, id string) error {
	path := "/notificaciones/" + url.PathEscape(id)
	return n.c.do(ctx, "/notificaciones/:id", http.MethodDelete, path, nil, nil, nil)
}
