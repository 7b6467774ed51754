package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Client represents a billable customer.
type Client struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Address   string    `db:"address" json:"address"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// LineItem is a single described quantity x rate entry on an invoice.
// Line items exist only inside an invoice's item list and are never
// addressable on their own.
type LineItem struct {
	Description string  `json:"desc"`
	Quantity    float64 `json:"qty"`
	Rate        float64 `json:"rate"`
}

// LineItems is the ordered item list of an invoice, persisted as a JSONB
// array on the invoice row and expanded at the API boundary.
type LineItems []LineItem

// Value implements driver.Valuer for JSONB storage.
func (l LineItems) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB storage.
func (l *LineItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for LineItems: %T", src)
	}
}

// Invoice represents a billing document with derived monetary fields.
// Subtotal, TaxAmount and Total are always computed by the service layer
// before a write; they are never accepted from the caller directly.
// ClientName is a snapshot captured at write time so the invoice stays
// renderable even if the client record is later edited.
type Invoice struct {
	ID         uuid.UUID     `db:"id" json:"id"`
	Number     string        `db:"invoice_number" json:"invoice_number"`
	ClientID   *uuid.UUID    `db:"client_id" json:"client_id"`
	ClientName string        `db:"client_name" json:"client_name"`
	Items      LineItems     `db:"items" json:"items"`
	Subtotal   float64       `db:"subtotal" json:"subtotal"`
	TaxRate    float64       `db:"tax_rate" json:"tax_rate"`
	TaxAmount  float64       `db:"tax_amount" json:"tax_amount"`
	Discount   float64       `db:"discount" json:"discount"`
	Total      float64       `db:"total" json:"total"`
	Currency   string        `db:"currency" json:"currency"`
	Status     InvoiceStatus `db:"status" json:"status"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
	DueDate    *string       `db:"due_date" json:"due_date"`
}

// Issuer is the identity printed on rendered documents.
type Issuer struct {
	Name    string
	Address string
}

// InvoiceStats holds invoice totals summed per lifecycle status.
type InvoiceStats struct {
	TotalRevenue float64 `db:"total_revenue" json:"total_revenue"`
	Pending      float64 `db:"pending" json:"pending"`
	Overdue      float64 `db:"overdue" json:"overdue"`
}
