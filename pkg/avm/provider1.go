package avm

import (
	"context"
)

// Provider1DisplayName keys Provider 1's entry in the aggregated response.
const Provider1DisplayName = "Provider 1"

// Provider1Client fetches from the Provider 1 AVM API, which responds in
// camelCase with property fields nested under data and a nested features
// object. The upstream may serve a response cached for up to 24 hours and
// flags that with a top-level cached boolean.
type Provider1Client struct {
	*client
}

// NewProvider1 creates the Provider 1 client.
func NewProvider1(baseURL, apiKey string) *Provider1Client {
	desc := Descriptor{ID: Provider1, DisplayName: Provider1DisplayName}
	return &Provider1Client{client: newClient(desc, baseURL, apiKey)}
}

func (p *Provider1Client) FetchDetails(ctx context.Context, address string) (RawResponse, error) {
	return p.fetchDetails(ctx, address)
}
