package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/usecase"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/fixtures"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memory"
)

type env struct {
	store     *memory.Store
	products  *usecase.ProductUseCase
	providers *usecase.ProviderUseCase
	users     *usecase.UserUseCase
	sales     *usecase.SaleUseCase
}

func newEnv(t *testing.T) env {
	t.Helper()
	seed, err := fixtures.Load()
	require.NoError(t, err)
	store := memory.NewStore(seed)
	productRepo := memory.NewProductRepository(store)
	providerRepo := memory.NewProviderRepository(store)
	userRepo := memory.NewUserRepository(store)
	return env{
		store:     store,
		products:  usecase.NewProductUseCase(productRepo, providerRepo, memory.NewTxRunner(store)),
		providers: usecase.NewProviderUseCase(providerRepo),
		users:     usecase.NewUserUseCase(userRepo),
		sales:     usecase.NewSaleUseCase(memory.NewSaleRepository(store), productRepo, userRepo),
	}
}

func ptr[T any](v T) *T { return &v }

var ctx = context.Background()
