package inventory_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

func TestApplyMovement_EntradaSuma(t *testing.T) {
	got, err := inventory.ApplyMovement(25, entity.MovementEntry, 10)
	require.NoError(t, err)
	assert.Equal(t, 35, got)
}

func TestApplyMovement_SalidaResta(t *testing.T) {
	got, err := inventory.ApplyMovement(10, entity.MovementExit, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, got, "una salida igual al stock deja el stock en cero")
}

func TestApplyMovement_SalidaMayorAlStock(t *testing.T) {
	got, err := inventory.ApplyMovement(3, entity.MovementExit, 8)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, "Stock insuficiente. Disponible: 3 unidades", err.Error())
	assert.Equal(t, 3, got, "el stock no cambia cuando se rechaza la salida")
}

func TestApplyMovement_EntradasInvalidas(t *testing.T) {
	_, err := inventory.ApplyMovement(5, entity.MovementEntry, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = inventory.ApplyMovement(5, "ajuste", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovement_EntradaQueDesborda(t *testing.T) {
	got, err := inventory.ApplyMovement(25, entity.MovementEntry, math.MaxInt)
	require.Error(t, err)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, inventory.MsgStockOverflow, verr.Message)
	assert.Equal(t, 25, got)

	got, err = inventory.ApplyMovement(0, entity.MovementEntry, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got, "justo en el límite se acepta")
}

func TestNewestFirst_OrdenaPorFechaDescendente(t *testing.T) {
	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	movs := []*entity.Movement{
		{ID: "1", CreatedAt: base},
		{ID: "2", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "3", CreatedAt: base.Add(time.Hour)},
	}
	got := inventory.NewestFirst(movs)
	require.Len(t, got, 3)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
	assert.Equal(t, "1", got[2].ID)
	assert.Equal(t, "1", movs[0].ID, "no modifica el slice original")
}

func TestNewestFirst_EmpateQuedaPrimeroElUltimoRegistrado(t *testing.T) {
	ts := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	movs := []*entity.Movement{{ID: "a", CreatedAt: ts}, {ID: "b", CreatedAt: ts}}
	got := inventory.NewestFirst(movs)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}
