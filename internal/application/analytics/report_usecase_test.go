package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) GenerateInventoryPDF(ctx context.Context, report dto.InventoryReportDTO) ([]byte, error) {
	args := m.Called(ctx, report)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func TestInventoryReport_ArmaDatosYNombre(t *testing.T) {
	dash, _ := newDashboard(t)
	gen := new(mockGenerator)
	gen.On("GenerateInventoryPDF", mock.Anything, mock.MatchedBy(func(r dto.InventoryReportDTO) bool {
		return len(r.Productos) == 8 && len(r.StockBajo) == 3 && r.Valuacion.Unidades == 230
	})).Return([]byte("%PDF-1.3"), nil)

	out, name, err := NewReportUseCase(dash, gen).InventoryReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), out)
	assert.Equal(t, "inventario-2024-01-25.pdf", name)
	gen.AssertExpectations(t)
}

func TestInventoryReport_ErrorDelGenerador(t *testing.T) {
	dash, _ := newDashboard(t)
	gen := new(mockGenerator)
	boom := errors.New("sin fuentes")
	gen.On("GenerateInventoryPDF", mock.Anything, mock.Anything).Return(nil, boom)

	_, _, err := NewReportUseCase(dash, gen).InventoryReport(context.Background())
	assert.ErrorIs(t, err, boom)
}
