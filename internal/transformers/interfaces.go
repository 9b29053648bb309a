package transformers

import (
	"homevalue-aggregator/pkg/avm"
)

// PropertyStandardizer maps a provider's raw response into the standardized
// property record. Standardize returns *models.PropertyDetails for known
// provider IDs; for an unknown ID it returns the raw document unchanged as a
// best-effort passthrough.
type PropertyStandardizer interface {
	Standardize(desc avm.Descriptor, raw avm.RawResponse) interface{}
}
