package service

import (
	"github.com/google/uuid"

	"novabill/internal/domain"
	"novabill/internal/money"
)

// Defaults applied by the computation engine when a create request omits
// the quantity or rate of a line item.
const (
	defaultQuantity = 1.0
	defaultRate     = 0.0
)

// ComputeDefaults are the engine defaults for fields a create request may
// omit entirely.
type ComputeDefaults struct {
	TaxRate  float64
	Currency string
}

// LineItemInput is one submitted line item. Quantity defaults to 1 and
// Rate to 0 when omitted.
type LineItemInput struct {
	Description string   `json:"desc"`
	Quantity    *float64 `json:"qty"`
	Rate        *float64 `json:"rate"`
}

// CreateInvoiceInput is the DTO for creating an invoice. Items is
// required and must be non-empty. Number overrides the generated invoice
// number; a collision with an existing number fails the create.
type CreateInvoiceInput struct {
	Number     *string               `json:"invoice_number"`
	ClientID   *uuid.UUID            `json:"client_id"`
	ClientName *string               `json:"client_name"`
	Items      []LineItemInput       `json:"items"`
	TaxRate    *float64              `json:"tax_rate"`
	Discount   *float64              `json:"discount"`
	Currency   *string               `json:"currency"`
	Status     *domain.InvoiceStatus `json:"status"`
	DueDate    *string               `json:"due_date"`
}

// UpdateInvoiceInput is the explicit patch structure for invoice updates.
// Every field carries "absent = keep current" semantics; a present Items
// list replaces the stored list wholesale. The invoice number and
// creation timestamp are immutable and not patchable.
type UpdateInvoiceInput struct {
	ClientID   *uuid.UUID            `json:"client_id"`
	ClientName *string               `json:"client_name"`
	Items      []LineItemInput       `json:"items"`
	TaxRate    *float64              `json:"tax_rate"`
	Discount   *float64              `json:"discount"`
	Currency   *string               `json:"currency"`
	Status     *domain.InvoiceStatus `json:"status"`
	DueDate    *string               `json:"due_date"`
}

// resolveItems applies per-item defaults and fixes the stored order.
func resolveItems(in []LineItemInput) domain.LineItems {
	items := make(domain.LineItems, 0, len(in))
	for _, it := range in {
		item := domain.LineItem{Description: it.Description, Quantity: defaultQuantity, Rate: defaultRate}
		if it.Quantity != nil {
			item.Quantity = *it.Quantity
		}
		if it.Rate != nil {
			item.Rate = *it.Rate
		}
		items = append(items, item)
	}
	return items
}

// derive recomputes the three derived monetary fields from the item list.
// The raw subtotal feeds the tax step unrounded; rounding happens once,
// at the tax amount, then once more when the total is assembled.
func derive(inv *domain.Invoice) {
	extensions := make([]float64, len(inv.Items))
	for i, item := range inv.Items {
		extensions[i] = money.Extend(item.Quantity, item.Rate)
	}
	inv.Subtotal = money.Sum(extensions...)
	inv.TaxAmount = money.Tax(inv.Subtotal, inv.Discount, inv.TaxRate)
	inv.Total = money.Total(inv.Subtotal, inv.Discount, inv.TaxAmount)
}

// ComputeCreate resolves a create request into a fully-computed invoice.
// Pure: no persistence, no number assignment, no client lookup.
func ComputeCreate(in CreateInvoiceInput, defaults ComputeDefaults) (*domain.Invoice, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrItemsRequired
	}

	inv := &domain.Invoice{
		ClientID: in.ClientID,
		Items:    resolveItems(in.Items),
		TaxRate:  defaults.TaxRate,
		Currency: defaults.Currency,
		Status:   domain.StatusDraft,
		DueDate:  in.DueDate,
	}
	if in.TaxRate != nil {
		inv.TaxRate = *in.TaxRate
	}
	if in.Discount != nil {
		inv.Discount = *in.Discount
	}
	if in.Currency != nil {
		inv.Currency = *in.Currency
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		inv.Status = *in.Status
	}

	derive(inv)
	return inv, nil
}

// ComputePatch merges a patch into an existing invoice and returns the
// resolved record. Derived fields are recomputed whenever the item list,
// tax rate or discount is patched, so a rate-only update cannot leave
// stale totals behind. Untouched fields pass through the previously
// stored values verbatim. Pure: the existing record is not mutated.
func ComputePatch(existing *domain.Invoice, patch UpdateInvoiceInput) (*domain.Invoice, error) {
	inv := *existing
	inv.Items = append(domain.LineItems(nil), existing.Items...)

	if patch.ClientID != nil {
		inv.ClientID = patch.ClientID
	}
	if patch.ClientName != nil {
		inv.ClientName = *patch.ClientName
	}
	if patch.TaxRate != nil {
		inv.TaxRate = *patch.TaxRate
	}
	if patch.Discount != nil {
		inv.Discount = *patch.Discount
	}
	if patch.Currency != nil {
		inv.Currency = *patch.Currency
	}
	if patch.DueDate != nil {
		inv.DueDate = patch.DueDate
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		inv.Status = *patch.Status
	}

	if patch.Items != nil {
		if len(patch.Items) == 0 {
			return nil, domain.ErrItemsRequired
		}
		inv.Items = resolveItems(patch.Items)
	}

	if patch.Items != nil || patch.TaxRate != nil || patch.Discount != nil {
		derive(&inv)
	}
	return &inv, nil
}
