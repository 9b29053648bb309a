package transformers

import (
	"fmt"
)

// FormatLotSize renders a nullable acreage for display, e.g. "0.18 Acres".
func FormatLotSize(acres *float64) string {
	if acres == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f Acres", *acres)
}

// FormatBoolean renders a nullable boolean for display.
func FormatBoolean(value *bool) string {
	if value == nil {
		return "N/A"
	}
	if *value {
		return "Yes"
	}
	return "No"
}
