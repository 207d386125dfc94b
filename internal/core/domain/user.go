package domain

import "time"

const (
	RoleCustomer = "cliente"
	RoleAdmin    = "admin"
)

// User models the authenticated customer as returned by the API. The
// client never invents user fields: every mutation is replaced by the
// server's canonical representation.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefono"`
	Address   string    `json:"direccion,omitempty"`
	Role      string    `json:"rol"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
