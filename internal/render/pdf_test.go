package render_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"novabill/internal/domain"
	"novabill/internal/render"
)

var testIssuer = domain.Issuer{
	Name:    "NovaTech Solutions",
	Address: "200 King Street West, Toronto, ON M5H 3T4",
}

func testInvoice() *domain.Invoice {
	due := "2026-09-30"
	return &domain.Invoice{
		Number:     "INV-2026-001",
		ClientName: "Acme Corp",
		Items: domain.LineItems{
			{Description: "Consulting", Quantity: 2, Rate: 100},
		},
		Subtotal:  200,
		TaxRate:   13,
		TaxAmount: 26,
		Discount:  0,
		Total:     226,
		Currency:  "CAD",
		Status:    domain.StatusSent,
		DueDate:   &due,
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	r := render.NewPDFRenderer()

	var buf bytes.Buffer
	err := r.Render(context.Background(), testInvoice(), testIssuer, &buf)

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output must start with a PDF header")
	assert.Contains(t, string(buf.Bytes()[len(buf.Bytes())-16:]), "%%EOF")
}

func TestRender_ManyItemsPaginates(t *testing.T) {
	r := render.NewPDFRenderer()

	inv := testInvoice()
	inv.Items = nil
	for i := 0; i < 120; i++ {
		inv.Items = append(inv.Items, domain.LineItem{
			Description: fmt.Sprintf("Service line %d", i+1),
			Quantity:    1,
			Rate:        10,
		})
	}

	var buf bytes.Buffer
	err := r.Render(context.Background(), inv, testIssuer, &buf)

	assert.NoError(t, err)
	// 120 rows cannot fit a single A4 page; a multi-page document is
	// meaningfully larger than the single-page baseline.
	var single bytes.Buffer
	assert.NoError(t, r.Render(context.Background(), testInvoice(), testIssuer, &single))
	assert.Greater(t, buf.Len(), single.Len())
}

func TestRender_CanceledContextAborts(t *testing.T) {
	r := render.NewPDFRenderer()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := r.Render(ctx, testInvoice(), testIssuer, &buf)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len(), "no bytes may be flushed for an aborted render")
}

func TestRender_DiscountRowOnlyWhenNonZero(t *testing.T) {
	r := render.NewPDFRenderer()

	withDiscount := testInvoice()
	withDiscount.Discount = 50
	withDiscount.TaxAmount = 19.5
	withDiscount.Total = 169.5

	var a, b bytes.Buffer
	assert.NoError(t, r.Render(context.Background(), testInvoice(), testIssuer, &a))
	assert.NoError(t, r.Render(context.Background(), withDiscount, testIssuer, &b))
	assert.NotEqual(t, a.Bytes(), b.Bytes())
}
