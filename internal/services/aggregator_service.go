package services

import (
	"context"
	"time"

	"homevalue-aggregator/internal/models"
	"homevalue-aggregator/internal/transformers"
	"homevalue-aggregator/internal/validators"
	"homevalue-aggregator/pkg/avm"
	"homevalue-aggregator/pkg/logger"
	"homevalue-aggregator/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

// AggregatorService fetches from every configured provider for one address and
// collects the standardized results keyed by provider display name.
type AggregatorService struct {
	providers    []avm.Provider
	standardizer transformers.PropertyStandardizer
	validator    validators.AddressValidator
}

func NewAggregatorService(
	providers []avm.Provider,
	standardizer transformers.PropertyStandardizer,
	validator validators.AddressValidator,
) *AggregatorService {
	return &AggregatorService{
		providers:    providers,
		standardizer: standardizer,
		validator:    validator,
	}
}

// FetchAll fans out one fetch per provider concurrently. A provider failure of
// any kind becomes that provider's error placeholder and never aborts the
// others: the result always has exactly one entry per configured provider.
// The providers are independent, so each goroutine writes only its own
// pre-allocated slot and the map is assembled after the join.
func (s *AggregatorService) FetchAll(ctx context.Context, address string) (*models.AggregatedResult, error) {
	if err := s.validator.ValidateAddress(address); err != nil {
		return nil, err
	}

	entries := make([]interface{}, len(s.providers))

	g, ctx := errgroup.WithContext(ctx)
	for i, provider := range s.providers {
		g.Go(func() error {
			entries[i] = s.fetchOne(ctx, provider, address)
			return nil
		})
	}
	// Tasks absorb their own failures, so the join cannot error.
	_ = g.Wait()

	result := &models.AggregatedResult{
		Providers: make(map[string]interface{}, len(s.providers)),
	}
	for i, provider := range s.providers {
		result.Providers[provider.Descriptor().DisplayName] = entries[i]
	}
	return result, nil
}

// fetchOne fetches and standardizes a single provider, converting any failure
// into an error placeholder carrying the failure message.
func (s *AggregatorService) fetchOne(ctx context.Context, provider avm.Provider, address string) interface{} {
	desc := provider.Descriptor()
	start := time.Now()

	raw, err := provider.FetchDetails(ctx, address)
	metrics.ProviderRequestDuration.WithLabelValues(desc.ID.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(desc.ID.String(), "error").Inc()
		logger.GlobalLogger.Errorf("Provider fetch failed: provider=%s, address=%s, error=%v", desc.ID, address, err)
		return models.NewErrorPlaceholder(err.Error())
	}

	metrics.ProviderRequestsTotal.WithLabelValues(desc.ID.String(), "success").Inc()
	return s.standardizer.Standardize(desc, raw)
}
