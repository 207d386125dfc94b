package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MerchantType classifies a business on the marketplace.
type MerchantType string

const (
	TypeRestaurant  MerchantType = "RESTAURANTE"
	TypePharmacy    MerchantType = "FARMACIA"
	TypeSupermarket MerchantType = "SUPERMERCADO"
	TypeStore       MerchantType = "TIENDA"
)

// Merchant (negocio) is a business offering products for delivery.
type Merchant struct {
	ID              string          `json:"id"`
	Name            string          `json:"nombre"`
	Description     string          `json:"descripcion"`
	Address         string          `json:"direccion"`
	Phone           string          `json:"telefono"`
	Email           string          `json:"email,omitempty"`
	Type            MerchantType    `json:"tipo"`
	OpensAt         string          `json:"horarioApertura"`
	ClosesAt        string          `json:"horarioCierre"`
	Image           string          `json:"imagen,omitempty"`
	Active          bool            `json:"activo"`
	Rating          float64         `json:"calificacion,omitempty"`
	DeliveryTimeMin int             `json:"tiempoEntrega,omitempty"`
	DeliveryFee     decimal.Decimal `json:"costoDelivery"`
	MinOrderAmount  decimal.Decimal `json:"montoMinimo"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// IsOpenAt reports whether the merchant's opening hours cover t.
// Schedules that cross midnight (e.g. 18:00–02:00) are handled.
func (m Merchant) IsOpenAt(t time.Time) bool {
	open, okOpen := parseClock(m.OpensAt)
	close, okClose := parseClock(m.ClosesAt)
	if !okOpen || !okClose {
		return false
	}

	now := t.Hour()*60 + t.Minute()
	if close < open {
		return now >= open || now <= close
	}
	return now >= open && now <= close
}

// parseClock parses "HH:MM" into minutes since midnight.
func parseClock(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// Product is a purchasable item belonging to exactly one merchant.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Image       string          `json:"imagen,omitempty"`
	Category    string          `json:"categoria"`
	Available   bool            `json:"disponible"`
	MerchantID  string          `json:"negocioId"`
	Merchant    *Merchant       `json:"negocio,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
