package avm

import (
	"context"
)

// Provider2DisplayName keys Provider 2's entry in the aggregated response.
const Provider2DisplayName = "Provider 2"

// Provider2Client fetches from the Provider 2 AVM API, which responds in
// PascalCase with a flat object under data. Lot size arrives already in acres.
type Provider2Client struct {
	*client
}

// NewProvider2 creates the Provider 2 client.
func NewProvider2(baseURL, apiKey string) *Provider2Client {
	desc := Descriptor{ID: Provider2, DisplayName: Provider2DisplayName}
	return &Provider2Client{client: newClient(desc, baseURL, apiKey)}
}

func (p *Provider2Client) FetchDetails(ctx context.Context, address string) (RawResponse, error) {
	return p.fetchDetails(ctx, address)
}
