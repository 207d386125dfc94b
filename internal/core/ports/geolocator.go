package ports

import (
	"context"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
)

// Geolocator is the platform geolocation capability. Failures must be
// classified with domain.ErrGeoPermissionDenied, domain.ErrGeoUnavailable
// or domain.ErrGeoTimeout so callers can present the right message.
type Geolocator interface {
	Current(ctx context.Context) (domain.Coordinates, error)
}
