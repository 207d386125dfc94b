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

type orderAPI struct {
	c *Client
}

var _ ports.OrderAPI = (*orderAPI)(nil)

// Orders returns the order surface.
func (c *Client) Orders() ports.OrderAPI {
	return &orderAPI{c: c}
}

func (o *orderAPI) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	var env envelope[domain.Order]
	if err := o.c.do(ctx, "/pedidos", http.MethodPost, "/pedidos", nil, in, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (o *orderAPI) List(ctx context.Context, f ports.OrderFilter) (*ports.OrderPage, error) {
	q := url.Values{}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Status != "" {
		q.Set("estado", string(f.Status))
	}

	var env pageEnvelope[domain.Order]
	if err := o.c.do(ctx, "/pedidos", http.MethodGet, "/pedidos", q, nil, &env); err != nil {
		return nil, err
	}
	return &ports.OrderPage{Orders: env.Data, Pagination: env.Pagination}, nil
}

func (o *orderAPI) ByID(ctx context.Context, id string) (*domain.Order, error) {
	var env envelope[domain.Order]
	if err := o.c.do(ctx, "/pedidos/:id", http.MethodGet, "/pedidos/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (o *orderAPI) Cancel(ctx context.Context, id, reason string) (*domain.Order, error) {
	body := map[string]string{}
	if reason != "" {
		body["motivo"] = reason
	}

	var env envelope[domain.Order]
	path := "/pedidos/" + url.PathEscape(id) + "/cancel"
	if err := o.c.do(ctx, "/pedidos/:id/cancel", http.MethodPut, path, nil, body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (o *orderAPI) Rate(ctx context.Context, id string, in ports.RateOrderInput) error {
	if err := validate.Struct(in); err != nil {
		return err
	}
	path := "/pedidos/" + url.PathEscape(id) + "/rate"
	return o.c.do(ctx, "/pedidos/:id/rate", http.MethodPost, path, nil, in, nil)
}

func (o *orderAPI) Track(ctx context.Context, id string) (*ports.TrackingInfo, error) {
	var env envelope[ports.TrackingInfo]
	path := "/pedidos/" + url.PathEscape(id) + "/track"
	if err := o.c.do(ctx, "/pedidos/:id/track", http.MethodGet, path, nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}
