package export_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/export"
	"github.com/Vannalasai/dhanalaxmi-cli/internal/model"
)

func TestOrdersToExcel(t *testing.T) {
	orders := []model.Order{
		{
			ID:          "o1",
			OrderedAt:   time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
			User:        &model.OrderUser{Name: "Asha", Email: "asha@example.com"},
			TotalAmount: 240,
			OrderStatus: model.OrderProcessing,
			Items: []model.OrderItem{
				{VariantID: "v1", Name: "Turmeric Powder", Weight: "250g", Quantity: 2},
			},
			ShippingAddress: &model.Address{
				Street: "12 MG Road", City: "Guntur", State: "AP", Zip: "522001",
			},
		},
		{
			// Orders without buyer/address details still export.
			ID:          "o2",
			OrderedAt:   time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC),
			TotalAmount: 80,
			OrderStatus: model.OrderDelivered,
		},
	}

	path := filepath.Join(t.TempDir(), "orders.xlsx")
	require.NoError(t, export.OrdersToExcel(orders, path))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Orders", sheet.Name)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "OrderID", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "o1", sheet.Rows[1].Cells[0].Value)
	assert.Equal(t, "Asha", sheet.Rows[1].Cells[2].Value)
	assert.Equal(t, "Turmeric Powder (250g) x2", sheet.Rows[1].Cells[6].Value)
	assert.Contains(t, sheet.Rows[1].Cells[7].Value, "Guntur")

	assert.Equal(t, "o2", sheet.Rows[2].Cells[0].Value)
	assert.Equal(t, "", sheet.Rows[2].Cells[2].Value)
}

func TestOrdersToExcelEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.xlsx")
	require.NoError(t, export.OrdersToExcel(nil, path))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, file.Sheets[0].Rows, 1, "only the header row")
}
