package entity

import "time"

// NoProviderName se muestra cuando la referencia del producto no resuelve.
const NoProviderName = "Sin proveedor"

// Provider representa un proveedor.
type Provider struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}
