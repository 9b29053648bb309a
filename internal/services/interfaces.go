package services

import (
	"context"

	"homevalue-aggregator/internal/models"
)

// Aggregator drives the fan-out over the configured providers for one address.
type Aggregator interface {
	FetchAll(ctx context.Context, address string) (*models.AggregatedResult, error)
}
