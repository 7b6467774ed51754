package noop

import (
	"context"

	"novabill/internal/domain"
	"novabill/internal/port"
)

type noopArchive struct{}

// NewNoopArchive creates a DocumentArchive that rejects every store.
// Used when no archive provider is configured so the archive endpoint
// fails with a clear error instead of dropping documents silently.
func NewNoopArchive() port.DocumentArchive {
	return &noopArchive{}
}

func (a *noopArchive) Store(_ context.Context, _, _ string, _ []byte) (string, error) {
	return "", domain.ErrArchiveDisabled
}
