package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of a placed order. The
// server is the sole authority on transitions; the client only tracks
// them.
type OrderStatus string

const (
	StatusPending       OrderStatus = "PENDIENTE"
	StatusConfirmed     OrderStatus = "CONFIRMADO"
	StatusInPreparation OrderStatus = "EN_PREPARACION"
	StatusInTransit     OrderStatus = "EN_CAMINO"
	StatusDelivered     OrderStatus = "ENTREGADO"
	StatusCancelled     OrderStatus = "CANCELADO"
)

// validTransitions defines the forward state machine. CANCELADO is
// reachable from every non-terminal state.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:       {StatusConfirmed, StatusCancelled},
	StatusConfirmed:     {StatusInPreparation, StatusCancelled},
	StatusInPreparation: {StatusInTransit, StatusCancelled},
	StatusInTransit:     {StatusDelivered, StatusCancelled},
}

// CanTransitionTo reports whether moving from s to next follows the
// forward state machine.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are expected.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// PaymentMethod enumerates the accepted checkout payment methods.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "EFECTIVO"
	PaymentCard     PaymentMethod = "TARJETA"
	PaymentTransfer PaymentMethod = "TRANSFERENCIA"
)

// CourierStatus enumerates courier availability states.
type CourierStatus string

const (
	CourierAvailable CourierStatus = "DISPONIBLE"
	CourierBusy      CourierStatus = "OCUPADO"
	CourierInactive  CourierStatus = "INACTIVO"
)

// Courier (repartidor) delivers orders. Present on an order only once
// the server has assigned one.
type Courier struct {
	ID       string        `json:"id"`
	Name     string        `json:"nombre"`
	Phone    string        `json:"telefono"`
	Email    string        `json:"email,omitempty"`
	Status   CourierStatus `json:"estado"`
	Location *Coordinates  `json:"ubicacionActual,omitempty"`
}

// OrderItem is a single purchased line inside a placed order, priced at
// the moment the order was created.
type OrderItem struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"pedidoId"`
	ProductID string          `json:"productoId"`
	Quantity  int             `json:"cantidad"`
	Price     decimal.Decimal `json:"precio"`
	Notes     string          `json:"notas,omitempty"`
	Product   *Product        `json:"producto,omitempty"`
}

// Order (pedido) is immutable once placed; the local cache only merges
// fields the server reports.
type Order struct {
	ID               string          `json:"id"`
	Number           string          `json:"numero"`
	CustomerID       string          `json:"clienteId"`
	MerchantID       string          `json:"negocioId"`
	CourierID        string          `json:"repartidorId,omitempty"`
	Status           OrderStatus     `json:"estado"`
	DeliveryAddress  string          `json:"direccionEntrega"`
	Phone            string          `json:"telefono"`
	Notes            string          `json:"notas,omitempty"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	DeliveryFee      decimal.Decimal `json:"costoDelivery"`
	Total            decimal.Decimal `json:"total"`
	PaymentMethod    PaymentMethod   `json:"metodoPago"`
	EstimatedMinutes int             `json:"tiempoEstimado,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	Customer         *User           `json:"cliente,omitempty"`
	Merchant         *Merchant       `json:"negocio,omitempty"`
	Courier          *Courier        `json:"repartidor,omitempty"`
	Items            []OrderItem     `json:"productos,omitempty"`
}

// OrderPatch is a typed partial update merged into a cached order.
// Nil fields are left untouched.
type OrderPatch struct {
	Status           *OrderStatus
	CourierID        *string
	Courier          *Courier
	EstimatedMinutes *int
	Notes            *string
	UpdatedAt        *time.Time
}

// Apply merges the non-nil patch fields into o.
func (p OrderPatch) Apply(o *Order) {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.CourierID != nil {
		o.CourierID = *p.CourierID
	}
	if p.Courier != nil {
		c := *p.Courier
		o.Courier = &c
	}
	if p.EstimatedMinutes != nil {
		o.EstimatedMinutes = *p.EstimatedMinutes
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
	if p.UpdatedAt != nil {
		o.UpdatedAt = *p.UpdatedAt
	}
}
