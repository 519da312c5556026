package providers

import (
	"context"

	"lead-sync/internal/domain"
)

type LeadProvider interface {
	Name() string
	ListLeads(ctx context.Context) ([]domain.Lead, error)
}
