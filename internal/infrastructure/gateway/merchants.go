package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
	"github.com/fred1edm/jaguarexpress/internal/core/ports"
)

type merchantAPI struct {
	c *Client
}

var _ ports.MerchantAPI = (*merchantAPI)(nil)

// Merchants returns the business-catalogue surface.
func (c *Client) Merchants() ports.MerchantAPI {
	return &merchantAPI{c: c}
}

func (m *merchantAPI) List(ctx context.Context, f ports.MerchantFilter) (*ports.MerchantPage, error) {
	q := url.Values{}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Type != "" {
		q.Set("tipo", string(f.Type))
	}
	if f.Active != nil {
		q.Set("activo", strconv.FormatBool(*f.Active))
	}

	var env pageEnvelope[domain.Merchant]
	if err := m.c.do(ctx, "/negocios", http.MethodGet, "/negocios", q, nil, &env); err != nil {
		return nil, err
	}
	return &ports.MerchantPage{Merchants: env.Data, Pagination: env.Pagination}, nil
}

func (m *merchantAPI) ByID(ctx context.Context, id string) (*domain.Merchant, error) {
	var env envelope[domain.Merchant]
	if err := m.c.do(ctx, "/negocios/:id", http.MethodGet, "/negocios/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (m *merchantAPI) Nearby(ctx context.Context, at domain.Coordinates, radiusKm float64) ([]domain.Merchant, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(at.Lng, 'f', -1, 64))
	q.Set("radius", strconv.FormatFloat(radiusKm, 'f', -1, 64))

	var env envelope[[]domain.Merchant]
	if err := m.c.do(ctx, "/negocios/nearby", http.MethodGet, "/negocios/nearby", q, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (m *merchantAPI) Popular(ctx context.Context) ([]domain.Merchant, error) {
	var env envelope[[]domain.Merchant]
	if err := m.c.do(ctx, "/negocios/popular", http.MethodGet, "/negocios/popular", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
