// Package xlsxexport writes the invoice register as an XLSX workbook.
package xlsxexport

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"novabill/internal/domain"
)

// SheetName is the single worksheet holding the invoice register.
const SheetName = "Invoices"

// columns defines the header row.
var columns = []interface{}{
	"Invoice Number",
	"Client",
	"Status",
	"Subtotal",
	"Tax Rate (%)",
	"Tax Amount",
	"Discount",
	"Total",
	"Currency",
	"Line Item Count",
	"Due Date",
	"Created At",
}

// WriteInvoices builds the workbook for the given invoices and writes it
// to w. Monetary columns carry the stored values verbatim.
func WriteInvoices(w io.Writer, invoices []domain.Invoice) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &columns); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for i := range invoices {
		cell := fmt.Sprintf("A%d", i+2)
		row := invoiceToRow(&invoices[i])
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func invoiceToRow(inv *domain.Invoice) []interface{} {
	due := ""
	if inv.DueDate != nil {
		due = *inv.DueDate
	}
	return []interface{}{
		inv.Number,
		inv.ClientName,
		string(inv.Status),
		inv.Subtotal,
		inv.TaxRate,
		inv.TaxAmount,
		inv.Discount,
		inv.Total,
		inv.Currency,
		len(inv.Items),
		due,
		inv.CreatedAt.Format(time.RFC3339),
	}
}

// BuildFilename returns the suggested filename for Content-Disposition.
// Format: invoices_YYYY-MM-DD.xlsx
func BuildFilename() string {
	return fmt.Sprintf("invoices_%s.xlsx", time.Now().Format("2006-01-02"))
}
