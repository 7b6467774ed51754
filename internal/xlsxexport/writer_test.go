package xlsxexport_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"novabill/internal/domain"
	"novabill/internal/xlsxexport"
)

func TestWriteInvoices(t *testing.T) {
	due := "2026-10-15"
	invoices := []domain.Invoice{
		{
			Number:     "INV-2026-001",
			ClientName: "Acme Corp",
			Items:      domain.LineItems{{Description: "A", Quantity: 2, Rate: 100}},
			Subtotal:   200, TaxRate: 13, TaxAmount: 26, Discount: 0, Total: 226,
			Currency: "CAD", Status: domain.StatusPaid,
			CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			DueDate:   &due,
		},
		{
			Number:     "INV-2026-002",
			ClientName: "Globex",
			Items:      domain.LineItems{{Description: "B", Quantity: 1, Rate: 50}, {Description: "C", Quantity: 3, Rate: 10}},
			Subtotal:   80, TaxRate: 13, TaxAmount: 10.4, Discount: 0, Total: 90.4,
			Currency: "CAD", Status: domain.StatusSent,
			CreatedAt: time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, xlsxexport.WriteInvoices(&buf, invoices))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(xlsxexport.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per invoice")

	assert.Equal(t, "Invoice Number", rows[0][0])
	assert.Equal(t, "INV-2026-001", rows[1][0])
	assert.Equal(t, "Acme Corp", rows[1][1])
	assert.Equal(t, "paid", rows[1][2])
	assert.Equal(t, "226", rows[1][7])
	assert.Equal(t, "INV-2026-002", rows[2][0])
	assert.Equal(t, "2", rows[2][9], "line item count")
}

func TestWriteInvoices_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, xlsxexport.WriteInvoices(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(xlsxexport.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}

func TestBuildFilename(t *testing.T) {
	assert.Regexp(t, `^invoices_\d{4}-\d{2}-\d{2}\.xlsx$`, xlsxexport.BuildFilename())
}
