package ports

import (
	"context"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
)

// GeocodeResult is a resolved address with its coordinate.
type GeocodeResult struct {
	Coordinates      domain.Coordinates
	FormattedAddress string
}

// LocationAPI is the server-side geocoding surface.
type LocationAPI interface {
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)
	ReverseGeocode(ctx context.Context, at domain.Coordinates) (string, error)
}

// ConfigAPI exposes the remote marketplace configuration.
type ConfigAPI interface {
	Get(ctx context.Context) ([]domain.ConfigEntry, error)
}

// NotificationFilter narrows GET /notificaciones.
type NotificationFilter struct {
	Page  int
	Limit int
	Read  *bool
}

// NotificationPage is one page of notifications.
type NotificationPage struct {
	Notifications []domain.Notification
	Pagination    Pagination
}

// NotificationAPI is the notification surface of the remote API.
type NotificationAPI interface {
	List(ctx context.Context, f NotificationFilter) (*NotificationPage, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}
