package domain

// InvoiceStatus is the lifecycle status of an invoice. Status is a freely
// settable enum: membership is validated on every write but no transition
// ordering is enforced, and no status is terminal.
type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "draft"
	StatusSent    InvoiceStatus = "sent"
	StatusPaid    InvoiceStatus = "paid"
	StatusOverdue InvoiceStatus = "overdue"
)

// InvoiceStatuses lists all valid lifecycle statuses.
var InvoiceStatuses = []InvoiceStatus{StatusDraft, StatusSent, StatusPaid, StatusOverdue}

// Valid reports whether s is a member of the status enum.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	}
	return false
}
