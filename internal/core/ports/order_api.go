package ports

import (
	"context"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
)

// OrderLine is one product reference inside a checkout payload.
type OrderLine struct {
	ProductID string `json:"productoId" validate:"required"`
	Quantity  int    `json:"cantidad" validate:"required,gt=0"`
	Notes     string `json:"observaciones,omitempty"`
}

// CreateOrderInput is the checkout payload for POST /pedidos.
type CreateOrderInput struct {
	MerchantID      string               `json:"negocioId" validate:"required"`
	Lines           []OrderLine          `json:"productos" validate:"required,min=1,dive"`
	DeliveryAddress string               `json:"direccionEntrega" validate:"required"`
	PaymentMethod   domain.PaymentMethod `json:"metodoPago" validate:"required,oneof=EFECTIVO TARJETA TRANSFERENCIA"`
	Notes           string               `json:"observaciones,omitempty"`
}

// OrderFilter narrows GET /pedidos.
type OrderFilter struct {
	Page   int
	Limit  int
	Status domain.OrderStatus
}

// OrderPage is one page of the customer's orders.
type OrderPage struct {
	Orders     []domain.Order
	Pagination Pagination
}

// RateOrderInput is the payload for POST /pedidos/:id/rate.
type RateOrderInput struct {
	Rating  int    `json:"calificacion" validate:"required,min=1,max=5"`
	Comment string `json:"comentario,omitempty"`
}

// TrackingInfo is the single-poll tracking read for an order.
type TrackingInfo struct {
	Status           domain.OrderStatus  `json:"estado"`
	Location         *domain.Coordinates `json:"ubicacion,omitempty"`
	EstimatedMinutes int                 `json:"tiempoEstimado,omitempty"`
	Courier          *domain.Courier     `json:"repartidor,omitempty"`
}

// OrderAPI is the order surface of the remote API.
type OrderAPI interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	List(ctx context.Context, f OrderFilter) (*OrderPage, error)
	ByID(ctx context.Context, id string) (*domain.Order, error)
	Cancel(ctx context.Context, id, reason string) (*domain.Order, error)
	Rate(ctx context.Context, id string, in RateOrderInput) error
	Track(ctx context.Context, id string) (*TrackingInfo, error)
}
