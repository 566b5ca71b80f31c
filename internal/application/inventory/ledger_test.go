package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/fixtures"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memory"
)

type ledgerEnv struct {
	store     *memory.Store
	products  *memory.ProductRepo
	movements *memory.MovementRepo
	uc        *inventory.LedgerUseCase
}

func newLedgerEnv(t *testing.T) ledgerEnv {
	t.Helper()
	seed, err := fixtures.Load()
	require.NoError(t, err)
	store := memory.NewStore(seed)
	env := ledgerEnv{
		store:     store,
		products:  memory.NewProductRepository(store),
		movements: memory.NewMovementRepository(store),
	}
	env.uc = inventory.NewLedgerUseCase(
		memory.NewTxRunner(store),
		env.products,
		memory.NewUserRepository(store),
		env.movements,
	)
	return env
}

func (e ledgerEnv) stock(t *testing.T, id string) int {
	t.Helper()
	p, err := e.products.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func (e ledgerEnv) ledgerLen(t *testing.T) int {
	t.Helper()
	movs, err := e.movements.List(context.Background())
	require.NoError(t, err)
	return len(movs)
}

func movement(productID, tipo, cantidad, motivo string) dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{
		ProductoID: productID,
		Tipo:       tipo,
		Cantidad:   dto.Numeric(cantidad),
		Motivo:     motivo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_EntradaSumaStockYQuedaPrimera(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()
	before := env.ledgerLen(t)

	res, err := env.uc.RecordMovement(ctx, "1", movement("1", "entrada", "10", "restock"))
	require.NoError(t, err)
	assert.Equal(t, 35, res.NuevoStock)
	assert.Equal(t, 25, res.Movimiento.StockAnterior)
	assert.Equal(t, 35, res.Movimiento.StockNuevo)
	assert.Equal(t, "Laptop HP ProBook", res.Movimiento.ProductoNombre)
	assert.Equal(t, "Administrador", res.Movimiento.UsuarioNombre)
	assert.NotEmpty(t, res.Movimiento.ID)

	assert.Equal(t, 35, env.stock(t, "1"))
	assert.Equal(t, before+1, env.ledgerLen(t))

	list, err := env.uc.ListMovements(ctx, dto.MovementFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, list)
	assert.Equal(t, res.Movimiento.ID, list[0].ID)
}

func TestRecordMovement_SalidaMayorAlStockSeRechaza(t *testing.T) {
	env := newLedgerEnv(t)
	before := env.ledgerLen(t)

	_, err := env.uc.RecordMovement(context.Background(), "2", movement("2", "salida", "8", "venta"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, "Stock insuficiente. Disponible: 3 unidades", err.Error())

	assert.Equal(t, 3, env.stock(t, "2"))
	assert.Equal(t, before, env.ledgerLen(t))
}

func TestRecordMovement_EntradaQueDesbordaElStock(t *testing.T) {
	env := newLedgerEnv(t)
	before := env.ledgerLen(t)

	_, err := env.uc.RecordMovement(context.Background(), "1", movement("1", "entrada", "9223372036854775807", "restock"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "La cantidad supera el stock máximo permitido", err.Error())

	assert.Equal(t, 25, env.stock(t, "1"))
	assert.Equal(t, before, env.ledgerLen(t))
}

func TestRecordMovement_AliasEnIngles(t *testing.T) {
	env := newLedgerEnv(t)

	res, err := env.uc.RecordMovement(context.Background(), "1", dto.RegisterMovementRequest{
		ProductID: "8",
		Kind:      "exit",
		Quantity:  dto.Numeric("40"),
		Reason:    "pedido",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementExit, res.Movimiento.Tipo)
	assert.Equal(t, 60, res.NuevoStock)
}

func TestRecordMovement_ValidacionNoCambiaEstado(t *testing.T) {
	cases := []struct {
		name string
		in   dto.RegisterMovementRequest
		msg  string
	}{
		{"tipo inválido", movement("1", "ajuste", "1", "x"), "El tipo de movimiento no es válido"},
		{"sin producto", movement("", "entrada", "1", "x"), "Selecciona un producto"},
		{"cantidad cero", movement("1", "entrada", "0", "x"), "La cantidad debe ser un número mayor a 0"},
		{"cantidad no numérica", movement("1", "entrada", "abc", "x"), "La cantidad debe ser un número mayor a 0"},
		{"sin motivo", movement("1", "entrada", "1", "   "), "El motivo es requerido"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newLedgerEnv(t)
			before := env.ledgerLen(t)

			_, err := env.uc.RecordMovement(context.Background(), "1", tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			assert.Equal(t, tc.msg, err.Error())
			assert.Equal(t, 25, env.stock(t, "1"))
			assert.Equal(t, before, env.ledgerLen(t))
		})
	}
}

func TestRecordMovement_ProductoInexistente(t *testing.T) {
	env := newLedgerEnv(t)
	_, err := env.uc.RecordMovement(context.Background(), "1", movement("999", "entrada", "1", "x"))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestRecordMovement_SalidasConcurrentesNoDejanStockNegativo(t *testing.T) {
	for i := 0; i < 20; i++ {
		env := newLedgerEnv(t)
		ctx := context.Background()
		p := &entity.Product{ID: "c", Name: "Concurrente", Price: decimal.NewFromInt(1), Stock: 10, Category: "Otros"}
		require.NoError(t, env.products.Create(ctx, p))
		before := env.ledgerLen(t)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for j, qty := range []string{"6", "7"} {
			wg.Add(1)
			go func(j int, qty string) {
				defer wg.Done()
				_, errs[j] = env.uc.RecordMovement(ctx, "1", movement("c", "salida", qty, "venta"))
			}(j, qty)
		}
		wg.Wait()

		failed := 0
		for _, err := range errs {
			if err != nil {
				failed++
				assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			}
		}
		assert.Equal(t, 1, failed, "exactamente una salida debe fallar")
		stock := env.stock(t, "c")
		assert.True(t, stock == 3 || stock == 4, "stock restante %d", stock)
		assert.Equal(t, before+1, env.ledgerLen(t))
	}
}

func TestRecordMovement_ConservacionDelStock(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()
	ops := []dto.RegisterMovementRequest{
		movement("3", "entrada", "5", "a"),
		movement("3", "salida", "20", "b"),
		movement("3", "salida", "100", "rechazada"),
		movement("3", "entrada", "1", "c"),
		movement("3", "salida", "36", "d"),
	}
	for _, op := range ops {
		_, _ = env.uc.RecordMovement(ctx, "1", op)
	}

	movs, err := env.movements.List(ctx)
	require.NoError(t, err)
	delta := 0
	for _, m := range movs[8:] {
		if m.Type == entity.MovementEntry {
			delta += m.Quantity
		} else {
			delta -= m.Quantity
		}
	}
	assert.Equal(t, 50+delta, env.stock(t, "3"))
	assert.Equal(t, 0, env.stock(t, "3"))
}

// mockTxRunner simula un fallo de la sección crítica.
type mockTxRunner struct {
	mock.Mock
}

func (m *mockTxRunner) Run(ctx context.Context, fn func(
	ctx context.Context,
	products repository.ProductRepository,
	movements repository.MovementRepository,
) error) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestRecordMovement_ErrorDelTxRunnerSePropaga(t *testing.T) {
	seed, err := fixtures.Load()
	require.NoError(t, err)
	store := memory.NewStore(seed)
	tx := new(mockTxRunner)
	boom := errors.New("conexión perdida")
	tx.On("Run", mock.Anything).Return(boom)

	uc := inventory.NewLedgerUseCase(tx, memory.NewProductRepository(store), memory.NewUserRepository(store), memory.NewMovementRepository(store))
	_, err = uc.RecordMovement(context.Background(), "1", movement("1", "entrada", "1", "x"))
	assert.ErrorIs(t, err, boom)
	tx.AssertExpectations(t)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListMovements
// ──────────────────────────────────────────────────────────────────────────────

func TestListMovements_MasRecientePrimero(t *testing.T) {
	env := newLedgerEnv(t)
	list, err := env.uc.ListMovements(context.Background(), dto.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, list, 8)
	assert.Equal(t, "8", list[0].ID)
	assert.Equal(t, "1", list[7].ID)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].CreatedAt.After(list[i-1].CreatedAt))
	}
}

func TestListMovements_FiltroPorTipoYTexto(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	salidas, err := env.uc.ListMovements(ctx, dto.MovementFilter{Tipo: "salida"})
	require.NoError(t, err)
	assert.Len(t, salidas, 4)
	for _, m := range salidas {
		assert.Equal(t, entity.MovementExit, m.Tipo)
	}

	exits, err := env.uc.ListMovements(ctx, dto.MovementFilter{Tipo: "exit"})
	require.NoError(t, err)
	assert.Equal(t, salidas, exits)

	byName, err := env.uc.ListMovements(ctx, dto.MovementFilter{Q: "mouse inalambrico"})
	require.NoError(t, err)
	assert.Len(t, byName, 2)

	byReason, err := env.uc.ListMovements(ctx, dto.MovementFilter{Q: "VENTA"})
	require.NoError(t, err)
	assert.Len(t, byReason, 3)

	_, err = env.uc.ListMovements(ctx, dto.MovementFilter{Tipo: "ajuste"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListMovements_ProductoEliminado(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()
	ok, err := env.products.Delete(ctx, "6")
	require.NoError(t, err)
	require.True(t, ok)

	list, err := env.uc.ListMovements(ctx, dto.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, list, 8, "el ledger conserva los movimientos del producto eliminado")
	assert.Equal(t, "Producto eliminado", list[0].ProductoNombre)
}

func TestRecordMovement_RegistraFechaActual(t *testing.T) {
	env := newLedgerEnv(t)
	res, err := env.uc.RecordMovement(context.Background(), "1", movement("1", "entrada", "1", "x"))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), res.Movimiento.CreatedAt, time.Minute)
}
