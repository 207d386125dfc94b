package domain

import "time"

// ConfigEntry is a remote key/value configuration setting exposed by
// GET /configuracion.
type ConfigEntry struct {
	ID          string    `json:"id"`
	Key         string    `json:"clave"`
	Value       string    `json:"valor"`
	Description string    `json:"descripcion,omitempty"`
	Type        string    `json:"tipo"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Notification is a server-issued message for the customer.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"titulo"`
	Message   string    `json:"mensaje"`
	Read      bool      `json:"leida"`
	CreatedAt time.Time `json:"createdAt"`
}
