// Package fixtures contiene los datos de prueba con los que arranca el almacén.
package fixtures

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// DefaultPassword contraseña de los usuarios sembrados.
const DefaultPassword = "123456"

// Set agrupa todas las entidades sembradas.
type Set struct {
	Users     []*entity.User
	Providers []*entity.Provider
	Products  []*entity.Product
	Movements []*entity.Movement
	Sales     []*entity.Sale
}

var passwordHash = sync.OnceValues(func() ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
})

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(fmt.Sprintf("fixtures: fecha inválida %q", s))
	}
	return t
}

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Load construye un Set nuevo; cada llamada devuelve copias independientes.
func Load() (*Set, error) {
	hash, err := passwordHash()
	if err != nil {
		return nil, fmt.Errorf("fixtures: hash de contraseña: %w", err)
	}
	h := string(hash)

	users := []*entity.User{
		{ID: "1", Email: "admin@inventario.com", PasswordHash: h, Name: "Administrador", Role: entity.RoleAdmin, CreatedAt: ts("2024-01-01T00:00:00Z")},
		{ID: "2", Email: "usuario@inventario.com", PasswordHash: h, Name: "Usuario Normal", Role: entity.RoleUsuario, CreatedAt: ts("2024-01-15T00:00:00Z")},
		{ID: "3", Email: "maria@inventario.com", PasswordHash: h, Name: "María García", Role: entity.RoleUsuario, CreatedAt: ts("2024-02-01T00:00:00Z")},
	}
	for _, u := range users {
		u.UpdatedAt = u.CreatedAt
	}

	providers := []*entity.Provider{
		{ID: "1", Name: "Distribuidora Central", Email: "contacto@distribuidoracentral.com", Phone: "+52 55 1234 5678", Address: "Av. Principal 123, Ciudad de México", CreatedAt: ts("2024-01-01T00:00:00Z")},
		{ID: "2", Name: "Suministros del Norte", Email: "ventas@suministrosnorte.com", Phone: "+52 81 9876 5432", Address: "Calle Industrial 456, Monterrey", CreatedAt: ts("2024-01-10T00:00:00Z")},
		{ID: "3", Name: "Importadora Global", Email: "info@importadoraglobal.com", Phone: "+52 33 5555 1234", Address: "Blvd. Comercial 789, Guadalajara", CreatedAt: ts("2024-01-20T00:00:00Z")},
	}

	products := []*entity.Product{
		{ID: "1", Name: "Laptop HP ProBook", Description: `Laptop profesional 15.6" i5 8GB RAM`, Price: money(15999), Stock: 25, MinStock: 5, Category: "Electrónica", ProviderID: "1", CreatedAt: ts("2024-01-05T00:00:00Z"), UpdatedAt: ts("2024-01-20T00:00:00Z")},
		{ID: "2", Name: `Monitor Dell 24"`, Description: "Monitor Full HD IPS 24 pulgadas", Price: money(4599), Stock: 3, MinStock: 10, Category: "Electrónica", ProviderID: "1", CreatedAt: ts("2024-01-06T00:00:00Z"), UpdatedAt: ts("2024-01-18T00:00:00Z")},
		{ID: "3", Name: "Teclado Mecánico RGB", Description: "Teclado mecánico switches rojos", Price: money(1299), Stock: 50, MinStock: 15, Category: "Periféricos", ProviderID: "2", CreatedAt: ts("2024-01-07T00:00:00Z"), UpdatedAt: ts("2024-01-15T00:00:00Z")},
		{ID: "4", Name: "Mouse Inalámbrico", Description: "Mouse ergonómico Bluetooth", Price: money(599), Stock: 8, MinStock: 20, Category: "Periféricos", ProviderID: "2", CreatedAt: ts("2024-01-08T00:00:00Z"), UpdatedAt: ts("2024-01-22T00:00:00Z")},
		{ID: "5", Name: "Silla Ejecutiva", Description: "Silla ergonómica con soporte lumbar", Price: money(3499), Stock: 12, MinStock: 5, Category: "Mobiliario", ProviderID: "3", CreatedAt: ts("2024-01-09T00:00:00Z"), UpdatedAt: ts("2024-01-19T00:00:00Z")},
		{ID: "6", Name: "Escritorio Ajustable", Description: "Escritorio standing desk eléctrico", Price: money(8999), Stock: 2, MinStock: 3, Category: "Mobiliario", ProviderID: "3", CreatedAt: ts("2024-01-10T00:00:00Z"), UpdatedAt: ts("2024-01-21T00:00:00Z")},
		{ID: "7", Name: "Webcam HD 1080p", Description: "Cámara web con micrófono integrado", Price: money(899), Stock: 30, MinStock: 10, Category: "Periféricos", ProviderID: "1", CreatedAt: ts("2024-01-11T00:00:00Z"), UpdatedAt: ts("2024-01-17T00:00:00Z")},
		{ID: "8", Name: "Cable HDMI 2m", Description: "Cable HDMI 2.1 alta velocidad", Price: money(199), Stock: 100, MinStock: 25, Category: "Accesorios", ProviderID: "2", CreatedAt: ts("2024-01-12T00:00:00Z"), UpdatedAt: ts("2024-01-16T00:00:00Z")},
	}

	// Historial: no se reaplica sobre el stock sembrado.
	movements := []*entity.Movement{
		{ID: "1", ProductID: "1", Type: entity.MovementEntry, Quantity: 30, Reason: "Compra inicial de inventario", UserID: "1", StockBefore: 0, StockAfter: 30, CreatedAt: ts("2024-01-05T10:00:00Z")},
		{ID: "2", ProductID: "2", Type: entity.MovementEntry, Quantity: 15, Reason: "Reposición de stock", UserID: "1", StockBefore: 0, StockAfter: 15, CreatedAt: ts("2024-01-06T11:30:00Z")},
		{ID: "3", ProductID: "1", Type: entity.MovementExit, Quantity: 5, Reason: "Venta a cliente mayorista", UserID: "2", StockBefore: 30, StockAfter: 25, CreatedAt: ts("2024-01-10T14:00:00Z")},
		{ID: "4", ProductID: "3", Type: entity.MovementEntry, Quantity: 60, Reason: "Pedido nuevo proveedor", UserID: "1", StockBefore: 0, StockAfter: 60, CreatedAt: ts("2024-01-12T09:00:00Z")},
		{ID: "5", ProductID: "2", Type: entity.MovementExit, Quantity: 12, Reason: "Venta tienda física", UserID: "2", StockBefore: 15, StockAfter: 3, CreatedAt: ts("2024-01-15T16:30:00Z")},
		{ID: "6", ProductID: "4", Type: entity.MovementEntry, Quantity: 25, Reason: "Restock mensual", UserID: "1", StockBefore: 0, StockAfter: 25, CreatedAt: ts("2024-01-18T08:00:00Z")},
		{ID: "7", ProductID: "4", Type: entity.MovementExit, Quantity: 17, Reason: "Pedido online", UserID: "3", StockBefore: 25, StockAfter: 8, CreatedAt: ts("2024-01-20T12:00:00Z")},
		{ID: "8", ProductID: "6", Type: entity.MovementExit, Quantity: 3, Reason: "Venta corporativa", UserID: "2", StockBefore: 5, StockAfter: 2, CreatedAt: ts("2024-01-22T15:00:00Z")},
	}

	sales := []*entity.Sale{
		{ID: "1", Items: []entity.SaleItem{{ProductID: "1", Quantity: 2, UnitPrice: money(15999)}, {ProductID: "3", Quantity: 2, UnitPrice: money(1299)}}, Total: money(34596), UserID: "2", CreatedAt: ts("2024-01-10T14:00:00Z")},
		{ID: "2", Items: []entity.SaleItem{{ProductID: "2", Quantity: 5, UnitPrice: money(4599)}}, Total: money(22995), UserID: "2", CreatedAt: ts("2024-01-15T16:30:00Z")},
		{ID: "3", Items: []entity.SaleItem{{ProductID: "5", Quantity: 3, UnitPrice: money(3499)}, {ProductID: "6", Quantity: 2, UnitPrice: money(8999)}}, Total: money(28495), UserID: "3", CreatedAt: ts("2024-01-20T10:00:00Z")},
		{ID: "4", Items: []entity.SaleItem{{ProductID: "7", Quantity: 10, UnitPrice: money(899)}, {ProductID: "8", Quantity: 10, UnitPrice: money(199)}}, Total: money(10980), UserID: "2", CreatedAt: ts("2024-01-22T11:00:00Z")},
	}

	return &Set{Users: users, Providers: providers, Products: products, Movements: movements, Sales: sales}, nil
}
