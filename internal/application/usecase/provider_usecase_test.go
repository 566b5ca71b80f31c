package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

func TestProviderCreate_ValidaEnOrden(t *testing.T) {
	e := newEnv(t)
	_, err := e.providers.Create(ctx, dto.CreateProviderRequest{Nombre: "Nuevo", Email: "correo-invalido"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "El formato del correo electrónico no es válido", err.Error())

	p, err := e.providers.Create(ctx, dto.CreateProviderRequest{
		Nombre: "Nuevo", Email: "Ventas@Nuevo.MX", Telefono: "555", Direccion: "Calle 1",
	})
	require.NoError(t, err)
	assert.Equal(t, "ventas@nuevo.mx", p.Email)
}

func TestProviderDelete_ProductoQuedaSinProveedor(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.providers.Delete(ctx, "3"))

	_, err := e.providers.GetByID(ctx, "3")
	assert.ErrorIs(t, err, domain.ErrProviderNotFound)

	p, err := e.products.GetByID(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, "3", p.ProveedorID)
	assert.Equal(t, entity.NoProviderName, p.ProveedorNombre)

	list, err := e.products.List(ctx, dto.ProductFilter{Categoria: "Mobiliario"})
	require.NoError(t, err)
	for _, p := range list {
		assert.Equal(t, entity.NoProviderName, p.ProveedorNombre)
	}
}

func TestProviderUpdate_Parcial(t *testing.T) {
	e := newEnv(t)
	p, err := e.providers.Update(ctx, "1", dto.UpdateProviderRequest{Telefono: ptr("+52 55 0000 0000")})
	require.NoError(t, err)
	assert.Equal(t, "Distribuidora Central", p.Nombre)
	assert.Equal(t, "+52 55 0000 0000", p.Telefono)

	_, err = e.providers.Update(ctx, "1", dto.UpdateProviderRequest{Direccion: ptr("  ")})
	require.Error(t, err)
	assert.Equal(t, "La dirección es requerida", err.Error())

	_, err = e.providers.Update(ctx, "999", dto.UpdateProviderRequest{})
	assert.ErrorIs(t, err, domain.ErrProviderNotFound)
}

func TestProviderList_Busqueda(t *testing.T) {
	e := newEnv(t)
	got, err := e.providers.List(ctx, "norte")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got, err = e.providers.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
