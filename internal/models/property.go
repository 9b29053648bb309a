// internal/models/property.go
package models

// PropertyDetails is the standardized record every provider response is mapped
// into. All data fields are pointers: a field the provider did not report stays
// nil and serializes as JSON null, never as a zero value.
type PropertyDetails struct {
	Address       *string  `json:"address"`
	SquareFootage *float64 `json:"squareFootage"`
	LotSize       *float64 `json:"lotSize"` // acres
	YearBuilt     *float64 `json:"yearBuilt"`
	PropertyType  *string  `json:"propertyType"`
	Bedrooms      *float64 `json:"bedrooms"`
	Bathrooms     *float64 `json:"bathrooms"`
	RoomCount     *float64 `json:"roomCount"`
	SepticSystem  *bool    `json:"septicSystem"`
	SalePrice     *float64 `json:"salePrice"`
	Cached        bool     `json:"cached"`
	Error         *string  `json:"error,omitempty"`
}

// AggregatedResult maps each configured provider display name to either a
// *PropertyDetails, an error placeholder, or (for a provider with no known
// mapping) the raw response document.
type AggregatedResult struct {
	Providers map[string]interface{} `json:"providers"`
}

// NewErrorPlaceholder builds the stand-in entry for a failed provider: the
// full standardized key set with every data field null and the failure message.
func NewErrorPlaceholder(message string) *PropertyDetails {
	return &PropertyDetails{
		Cached: false,
		Error:  &message,
	}
}
