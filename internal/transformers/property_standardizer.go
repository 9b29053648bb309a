package transformers

import (
	"math"
	"strings"

	"homevalue-aggregator/internal/models"
	"homevalue-aggregator/pkg/avm"
)

// squareFeetPerAcre is the fixed conversion constant for Provider 1 lot sizes.
const squareFeetPerAcre = 43560.0

type propertyStandardizer struct{}

func NewPropertyStandardizer() PropertyStandardizer {
	return &propertyStandardizer{}
}

func (s *propertyStandardizer) Standardize(desc avm.Descriptor, raw avm.RawResponse) interface{} {
	switch desc.ID {
	case avm.Provider1:
		return s.standardizeProvider1(raw)
	case avm.Provider2:
		return s.standardizeProvider2(raw)
	default:
		// No mapping for this provider. Pass the raw document through
		// unchanged rather than failing the entry.
		return raw
	}
}

// standardizeProvider1 maps the Provider 1 shape: camelCase keys nested under
// data, with roomCount and septicSystem inside a nested features object.
// Lot size arrives in square feet and is converted to acres.
func (s *propertyStandardizer) standardizeProvider1(raw avm.RawResponse) *models.PropertyDetails {
	m := map[string]interface{}(raw)
	return &models.PropertyDetails{
		Address:       getStringPtr(m, "data.formattedAddress"),
		SquareFootage: getFloatPtr(m, "data.squareFootage"),
		LotSize:       convertSqFtToAcres(getFloatPtr(m, "data.lotSizeSqFt")),
		YearBuilt:     getFloatPtr(m, "data.yearBuilt"),
		PropertyType:  getStringPtr(m, "data.propertyType"),
		Bedrooms:      getFloatPtr(m, "data.bedrooms"),
		Bathrooms:     getFloatPtr(m, "data.bathrooms"),
		RoomCount:     getFloatPtr(m, "data.features.roomCount"),
		SepticSystem:  getBoolPtr(m, "data.features.septicSystem"),
		SalePrice:     getFloatPtr(m, "data.lastSalePrice"),
		Cached:        getCachedFlag(m),
	}
}

// standardizeProvider2 maps the Provider 2 shape: PascalCase keys in a flat
// object under data. Lot size is already in acres and passes through as-is.
func (s *propertyStandardizer) standardizeProvider2(raw avm.RawResponse) *models.PropertyDetails {
	m := map[string]interface{}(raw)
	return &models.PropertyDetails{
		Address:       getStringPtr(m, "data.NormalizedAddress"),
		SquareFootage: getFloatPtr(m, "data.SquareFootage"),
		LotSize:       getFloatPtr(m, "data.LotSizeAcres"),
		YearBuilt:     getFloatPtr(m, "data.YearConstructed"),
		PropertyType:  getStringPtr(m, "data.PropertyType"),
		Bedrooms:      getFloatPtr(m, "data.Bedrooms"),
		Bathrooms:     getFloatPtr(m, "data.Bathrooms"),
		RoomCount:     getFloatPtr(m, "data.RoomCount"),
		SepticSystem:  getBoolPtr(m, "data.SepticSystem"),
		SalePrice:     getFloatPtr(m, "data.SalePrice"),
		Cached:        getCachedFlag(m),
	}
}

// convertSqFtToAcres converts square feet to acres, rounded to 2 decimal
// places half away from zero. Nil in, nil out.
func convertSqFtToAcres(sqft *float64) *float64 {
	if sqft == nil {
		return nil
	}
	acres := *sqft / squareFeetPerAcre
	rounded := math.Round(acres*100) / 100
	return &rounded
}

// getCachedFlag reads the informational cached flag from the response
// envelope, defaulting to false when absent.
func getCachedFlag(m map[string]interface{}) bool {
	if cached, ok := m["cached"].(bool); ok {
		return cached
	}
	return false
}

func getStringPtr(m map[string]interface{}, key string) *string {
	val := lookup(m, key)
	if val == nil {
		return nil
	}
	if s, ok := val.(string); ok {
		return &s
	}
	return nil
}

func getFloatPtr(m map[string]interface{}, key string) *float64 {
	val := lookup(m, key)
	if val == nil {
		return nil
	}
	switch v := val.(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	}
	return nil
}

func getBoolPtr(m map[string]interface{}, key string) *bool {
	val := lookup(m, key)
	if val == nil {
		return nil
	}
	if b, ok := val.(bool); ok {
		return &b
	}
	return nil
}

// lookup walks a dotted path through nested objects. Any missing or
// non-object segment reads as nil, never a failure.
func lookup(m map[string]interface{}, key string) interface{} {
	keys := strings.Split(key, ".")
	current := m
	for _, k := range keys[:len(keys)-1] {
		if next, ok := current[k].(map[string]interface{}); ok {
			current = next
		} else {
			return nil
		}
	}
	return current[keys[len(keys)-1]]
}
