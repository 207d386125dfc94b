package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
)

// Pagination describes the server-side paging of a list response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// MerchantFilter narrows GET /negocios.
type MerchantFilter struct {
	Page   int
	Limit  int
	Search string
	Type   domain.MerchantType
	Active *bool
}

// MerchantPage is one page of merchants.
type MerchantPage struct {
	Merchants  []domain.Merchant
	Pagination Pagination
}

// ProductFilter narrows GET /negocios/:id/productos.
type ProductFilter struct {
	Page      int
	Limit     int
	Search    string
	Category  string
	Available *bool
}

// ProductPage is one page of products.
type ProductPage struct {
	Products   []domain.Product
	Pagination Pagination
}

// ProductSearch is a cross-merchant product search.
type ProductSearch struct {
	Query    string `validate:"required"`
	Type     domain.MerchantType
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
}

// MerchantAPI is the business-catalogue surface of the remote API.
type MerchantAPI interface {
	List(ctx context.Context, f MerchantFilter) (*MerchantPage, error)
	ByID(ctx context.Context, id string) (*domain.Merchant, error)
	Nearby(ctx context.Context, at domain.Coordinates, radiusKm float64) ([]domain.Merchant, error)
	Popular(ctx context.Context) ([]domain.Merchant, error)
}

// ProductAPI is the product-catalogue surface of the remote API.
type ProductAPI interface {
	ByMerchant(ctx context.Context, merchantID string, f ProductFilter) (*ProductPage, error)
	ByID(ctx context.Context, id string) (*domain.Product, error)
	Search(ctx context.Context, s ProductSearch) ([]domain.Product, error)
}
