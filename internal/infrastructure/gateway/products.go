package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
	"github.com/fred1edm/jaguarexpress/internal/core/ports"
	"github.com/fred1edm/jaguarexpress/internal/core/validate"
)

type productAPI struct {
	c *Client
}

var _ ports.ProductAPI = (*productAPI)(nil)

// Products returns the product-catalogue surface.
func (c *Client) Products() ports.ProductAPI {
	return &productAPI{c: c}
}

func (p *productAPI) ByMerchant(ctx context.Context, merchantID string, f ports.ProductFilter) (*ports.ProductPage, error) {
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
	if f.Category != "" {
		q.Set("categoria", f.Category)
	}
	if f.Available != nil {
		q.Set("disponible", strconv.FormatBool(*f.Available))
	}

	path := "/negocios/" + url.PathEscape(merchantID) + "/productos"
	var env pageEnvelope[domain.Product]
	if err := p.c.do(ctx, "/negocios/:id/productos", http.MethodGet, path, q, nil, &env); err != nil {
		return nil, err
	}
	return &ports.ProductPage{Products: env.Data, Pagination: env.Pagination}, nil
}

func (p *productAPI) ByID(ctx context.Context, id string) (*domain.Product, error) {
	var env envelope[domain.Product]
	if err := p.c.do(ctx, "/productos/:id", http.MethodGet, "/productos/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (p *productAPI) Search(ctx context.Context, s ports.ProductSearch) ([]domain.Product, error) {
	if err := validate.Struct(s); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("q", s.Query)
	if s.Type != "" {
		q.Set("tipo", string(s.Type))
	}
	if s.PriceMin != nil {
		q.Set("precioMin", s.PriceMin.String())
	}
	if s.PriceMax != nil {
		q.Set("precioMax", s.PriceMax.String())
	}

	var env envelope[[]domain.Product]
	if err := p.c.do(ctx, "/productos/search", http.MethodGet, "/productos/search", q, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
