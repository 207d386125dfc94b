package store

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
	"github.com/fred1edm/jaguarexpress/internal/core/ports"
)

// Geolocation failure messages, one per rejection reason.
const (
	msgGeoUnsupported = "Geolocalización no soportada"
	msgGeoDenied      = "Permiso de ubicación denegado"
	msgGeoUnavailable = "Ubicación no disponible"
	msgGeoTimeout     = "Tiempo de espera agotado"
	msgGeoGeneric     = "Error obteniendo ubicación"
)

// LocationStore owns the user's coordinate and resolved address. The
// two are independent: either may be set without the other.
type LocationStore struct {
	mu  sync.Mutex
	geo ports.Geolocator
	log zerolog.Logger

	current *domain.Coordinates
	address string
	errMsg  string
	loading bool
}

func NewLocationStore(geo ports.Geolocator, log zerolog.Logger) *LocationStore {
	return &LocationStore{geo: geo, log: log}
}

// SetLocation stores the coordinate and clears any previous error.
func (s *LocationStore) SetLocation(lat, lng float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &domain.Coordinates{Lat: lat, Lng: lng}
	s.errMsg = ""
}

// SetAddress stores the resolved address text. No cross-validation with
// the coordinate.
func (s *LocationStore) SetAddress(address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.address = address
}

// Locate requests the platform geolocation capability. On success the
// coordinate is stored and any previous error cleared. On failure the
// reason is classified into one of three messages and the previous
// coordinate is left untouched.
func (s *LocationStore) Locate(ctx context.Context) error {
	s.mu.Lock()
	if s.geo == nil {
		s.errMsg = msgGeoUnsupported
		s.mu.Unlock()
		return domain.ErrGeoUnavailable
	}
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	at, err := s.geo.Current(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.errMsg = classifyGeoError(err)
		s.log.Warn().Err(err).Msg("geolocation failed")
		return err
	}

	s.current = &at
	s.errMsg = ""
	return nil
}

// ClearLocation resets coordinate, address and error to absent.
func (s *LocationStore) ClearLocation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.address = ""
	s.errMsg = ""
}

// Current returns a copy of the stored coordinate, or nil.
func (s *LocationStore) Current() *domain.Coordinates {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

func (s *LocationStore) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.address
}

// Err returns the last geolocation failure message, or "".
func (s *LocationStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *LocationStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func classifyGeoError(err error) string {
	switch {
	case errors.Is(err, domain.ErrGeoPermissionDenied):
		return msgGeoDenied
	case errors.Is(err, domain.ErrGeoUnavailable):
		return msgGeoUnavailable
	case errors.Is(err, domain.ErrGeoTimeout):
		return msgGeoTimeout
	default:
		return msgGeoGeneric
	}
}
