package shopping

import (
	"math"
	"strconv"
)

// displayPromotions lists the unit upgrades applied for readability: 1500 g
// reads better as 1.5 kg. Promotion happens on the rounded value.
var displayPromotions = map[string]struct {
	threshold float64
	unit      string
}{
	"g":  {1000, "kg"},
	"ml": {1000, "l"},
	"mg": {1000, "g"},
}

// Format renders an item's total quantity as a human-friendly string, e.g.
// "700 g" or "1.5 kg". Purely presentational: the item is not modified.
func Format(item ConsolidatedItem) string {
	quantity := roundTo(item.TotalQuantity, 2)
	unit := item.Unit

	if promo, ok := displayPromotions[unit]; ok && quantity >= promo.threshold {
		quantity = roundTo(quantity/promo.threshold, 2)
		unit = promo.unit
	}

	return formatQuantity(quantity) + " " + unit
}

func roundTo(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}

// formatQuantity prints at most two decimals, trimming trailing zeros so
// whole numbers stay whole ("700", "1.5", "0.25").
func formatQuantity(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
