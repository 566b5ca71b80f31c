// Package mapper convierte entidades de dominio en DTOs de salida.
package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// DeletedProductName se muestra para movimientos de un producto eliminado.
const DeletedProductName = "Producto eliminado"

// DeletedUserName se muestra para movimientos de un usuario eliminado.
const DeletedUserName = "Usuario eliminado"

// Names resuelve ids a nombres para mostrar.
type Names struct {
	Products  map[string]string
	Providers map[string]string
	Users     map[string]string
}

// NewNames indexa los nombres de las colecciones dadas (cualquiera puede ser nil).
func NewNames(products []*entity.Product, providers []*entity.Provider, users []*entity.User) Names {
	n := Names{
		Products:  make(map[string]string, len(products)),
		Providers: make(map[string]string, len(providers)),
		Users:     make(map[string]string, len(users)),
	}
	for _, p := range products {
		n.Products[p.ID] = p.Name
	}
	for _, p := range providers {
		n.Providers[p.ID] = p.Name
	}
	for _, u := range users {
		n.Users[u.ID] = u.Name
	}
	return n
}

// ProviderName devuelve entity.NoProviderName si la referencia no resuelve.
func (n Names) ProviderName(id string) string {
	if name, ok := n.Providers[id]; ok {
		return name
	}
	return entity.NoProviderName
}

func (n Names) productName(id string) string {
	if name, ok := n.Products[id]; ok {
		return name
	}
	return DeletedProductName
}

func (n Names) userName(id string) string {
	if name, ok := n.Users[id]; ok {
		return name
	}
	return DeletedUserName
}

func Product(p *entity.Product, providerName string) dto.ProductResponse {
	return dto.ProductResponse{
		ID:              p.ID,
		Nombre:          p.Name,
		Descripcion:     p.Description,
		Precio:          p.Price,
		Stock:           p.Stock,
		StockMinimo:     p.MinStock,
		StockBajo:       p.IsLowStock(),
		Categoria:       p.Category,
		ProveedorID:     p.ProviderID,
		ProveedorNombre: providerName,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// Products mapea conservando el orden.
func Products(list []*entity.Product, names Names) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, Product(p, names.ProviderName(p.ProviderID)))
	}
	return out
}

func Provider(p *entity.Provider) dto.ProviderResponse {
	return dto.ProviderResponse{
		ID:        p.ID,
		Nombre:    p.Name,
		Email:     p.Email,
		Telefono:  p.Phone,
		Direccion: p.Address,
		CreatedAt: p.CreatedAt,
	}
}

// User nunca incluye la contraseña.
func User(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nombre:    u.Name,
		Rol:       u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func Movement(m *entity.Movement, names Names) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		ProductoID:     m.ProductID,
		ProductoNombre: names.productName(m.ProductID),
		Tipo:           m.Type,
		Cantidad:       m.Quantity,
		Motivo:         m.Reason,
		UsuarioID:      m.UserID,
		UsuarioNombre:  names.userName(m.UserID),
		StockAnterior:  m.StockBefore,
		StockNuevo:     m.StockAfter,
		CreatedAt:      m.CreatedAt,
	}
}

func Movements(list []*entity.Movement, names Names) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, Movement(m, names))
	}
	return out
}

func Sale(s *entity.Sale, names Names) dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductoID:     it.ProductID,
			ProductoNombre: names.productName(it.ProductID),
			Cantidad:       it.Quantity,
			PrecioUnitario: it.UnitPrice,
			Subtotal:       it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}
	return dto.SaleResponse{
		ID:            s.ID,
		Productos:     items,
		Total:         s.Total,
		UsuarioID:     s.UserID,
		UsuarioNombre: names.userName(s.UserID),
		CreatedAt:     s.CreatedAt,
	}
}
