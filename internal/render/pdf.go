// Package render lays out a computed invoice as a paginated A4 PDF.
// The renderer is a pure projection: every monetary figure is formatted
// from the values stored on the invoice record, with no recomputation
// beyond the per-line extension column the document displays.
package render

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"novabill/internal/domain"
	"novabill/internal/money"
	"novabill/internal/port"
)

const (
	pageBreakY = 255.0 // start a new page before drawing past this y (mm)

	colDesc   = 95.0
	colQty    = 25.0
	colRate   = 35.0
	colAmount = 35.0
)

type pdfRenderer struct{}

// NewPDFRenderer creates the gofpdf-backed DocumentRenderer.
func NewPDFRenderer() port.DocumentRenderer {
	return &pdfRenderer{}
}

// Render builds the document page by page and flushes it to w. It checks
// for cancellation between rows; an aborted render returns the context
// error before anything is written to w, so already-flushed output of
// other consumers is never corrupted.
func (r *pdfRenderer) Render(ctx context.Context, inv *domain.Invoice, issuer domain.Issuer, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 15)
	pdf.AddPage()

	drawHeader(pdf, inv, issuer)
	drawBillTo(pdf, inv)
	drawTableHeader(pdf)

	for _, item := range inv.Items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if pdf.GetY() > pageBreakY {
			pdf.AddPage()
			drawTableHeader(pdf)
		}
		drawItemRow(pdf, item)
	}

	if pdf.GetY() > pageBreakY-40 {
		pdf.AddPage()
	}
	drawTotals(pdf, inv)

	if err := ctx.Err(); err != nil {
		return err
	}
	// Output flushes the complete document; a nil return from Render is
	// the end-of-document signal.
	return pdf.Output(w)
}

func drawHeader(pdf *gofpdf.Fpdf, inv *domain.Invoice, issuer domain.Issuer) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(120, 8, issuer.Name)

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(70, 8, "INVOICE", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.Cell(120, 5, issuer.Address)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(70, 5, inv.Number, "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(190, 5, strings.ToUpper(string(inv.Status)), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(8)
}

func drawBillTo(pdf *gofpdf.Fpdf, inv *domain.Invoice) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(95, 5, "BILL TO", "", 0, "L", false, 0, "")
	if inv.DueDate != nil && *inv.DueDate != "" {
		pdf.CellFormat(95, 5, "DUE DATE", "", 1, "R", false, 0, "")
	} else {
		pdf.Ln(5)
	}

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(95, 6, inv.ClientName, "", 0, "L", false, 0, "")
	if inv.DueDate != nil && *inv.DueDate != "" {
		pdf.CellFormat(95, 6, *inv.DueDate, "", 1, "R", false, 0, "")
	} else {
		pdf.Ln(6)
	}
	pdf.Ln(8)
}

func drawTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(colDesc, 7, "Description", "B", 0, "L", true, 0, "")
	pdf.CellFormat(colQty, 7, "Qty", "B", 0, "R", true, 0, "")
	pdf.CellFormat(colRate, 7, "Rate", "B", 0, "R", true, 0, "")
	pdf.CellFormat(colAmount, 7, "Amount", "B", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func drawItemRow(pdf *gofpdf.Fpdf, item domain.LineItem) {
	pdf.CellFormat(colDesc, 7, item.Description, "", 0, "L", false, 0, "")
	pdf.CellFormat(colQty, 7, formatNumber(item.Quantity), "", 0, "R", false, 0, "")
	pdf.CellFormat(colRate, 7, formatAmount(item.Rate), "", 0, "R", false, 0, "")
	pdf.CellFormat(colAmount, 7, formatAmount(money.Extend(item.Quantity, item.Rate)), "", 1, "R", false, 0, "")
}

func drawTotals(pdf *gofpdf.Fpdf, inv *domain.Invoice) {
	pdf.Ln(4)
	labelW, valueW := 155.0, 35.0

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(labelW, 6, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(valueW, 6, money.Format(inv.Subtotal, inv.Currency), "", 1, "R", false, 0, "")

	if inv.Discount != 0 {
		pdf.CellFormat(labelW, 6, "Discount", "", 0, "R", false, 0, "")
		pdf.CellFormat(valueW, 6, "-"+money.Format(inv.Discount, inv.Currency), "", 1, "R", false, 0, "")
	}

	pdf.CellFormat(labelW, 6, "Tax ("+formatNumber(inv.TaxRate)+"%)", "", 0, "R", false, 0, "")
	pdf.CellFormat(valueW, 6, money.Format(inv.TaxAmount, inv.Currency), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(labelW, 8, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(valueW, 8, money.Format(inv.Total, inv.Currency), "T", 1, "R", false, 0, "")
}

// formatNumber renders quantities and tax rates without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
