package airtable

import (
	"context"

	"lead-sync/internal/domain"
	"lead-sync/internal/mappers"
)

// Provider adapts the Airtable client into the internal providers.LeadProvider interface.
type Provider struct {
	C *Client
}

func (p Provider) Name() string { return "airtable" }

func (p Provider) ListLeads(ctx context.Context) ([]domain.Lead, error) {
	records, err := p.C.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	return mappers.ToLeads(records), nil
}
