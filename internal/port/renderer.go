package port

import (
	"context"
	"io"

	"novabill/internal/domain"
)

// DocumentRenderer lays out a computed invoice as a paginated document
// and streams it to w. Implementations reproduce the invoice's stored
// figures verbatim and perform no monetary recomputation. A nil return
// is the definitive completion signal; on context cancellation the
// renderer stops producing output and returns the context error without
// corrupting bytes already flushed.
type DocumentRenderer interface {
	Render(ctx context.Context, inv *domain.Invoice, issuer domain.Issuer, w io.Writer) error
}
