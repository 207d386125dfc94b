package gateway

import "github.com/fred1edm/jaguarexpress/internal/core/ports"

// envelope is the single-resource response shape: {success, data,
// message}.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// pageEnvelope is the paginated list response shape.
type pageEnvelope[T any] struct {
	Success    bool             `json:"success"`
	Data       []T              `json:"data"`
	Pagination ports.Pagination `json:"pagination"`
}
