// Package avm contains the clients for the upstream Automated Valuation Model
// providers. Each provider knows how to build an authenticated request for an
// address and decode that provider's raw JSON response; field mapping into the
// standardized schema happens downstream in the transformers package.
package avm

import (
	"context"
)

// RawResponse is a provider response decoded as-is, before standardization.
// Shape varies per provider and is not validated against a schema.
type RawResponse map[string]interface{}

// ProviderID identifies a provider for standardizer dispatch. Dispatch is by
// ID rather than display name so a renamed provider cannot silently fall
// through to the passthrough branch.
type ProviderID int

const (
	ProviderUnknown ProviderID = iota
	Provider1
	Provider2
)

// String returns the stable label used in logs and metrics.
func (id ProviderID) String() string {
	switch id {
	case Provider1:
		return "provider1"
	case Provider2:
		return "provider2"
	default:
		return "unknown"
	}
}

// Descriptor carries a provider's identity and its display name. The display
// name is presentation only: it keys the aggregated response.
type Descriptor struct {
	ID          ProviderID
	DisplayName string
}

// Provider is the capability every AVM source implements.
type Provider interface {
	// FetchDetails issues exactly one request for the address. The caller is
	// responsible for rejecting empty addresses before this point.
	FetchDetails(ctx context.Context, address string) (RawResponse, error)
	Descriptor() Descriptor
}
