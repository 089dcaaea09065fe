package estimate

import "github.com/peter-kozarec/psecalc/pkg/utility/fixed"

// SellPriceByPercentage is the price reached when buyPrice moves by percent, e.g. 20 and 100 give 40.
func SellPriceByPercentage(buyPrice, percent fixed.Point) fixed.Point {
	return buyPrice.AddPercent(percent)
}

// PercentageDiff is the gain in percent of selling at sellPrice what was bought at buyPrice.
func PercentageDiff(buyPrice, sellPrice fixed.Point) fixed.Point {
	return fixed.PercentChange(buyPrice, sellPrice)
}
