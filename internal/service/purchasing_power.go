package service

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/whatiftr/whatif-backend/internal/model"
)

// referenceGood describes one entry of the purchasing-power comparison.
type referenceGood struct {
	asset  model.AssetCode
	item   string
	unit   string
	places int32
}

// referenceGoods is the fixed comparison set. Goods missing a price at
// either end are left out; in practice that only happens to housing, whose
// square-metre series does not reach back as far as the others.
var referenceGoods = []referenceGood{
	{asset: model.AssetGold, item: "Gold", unit: "gram", places: 1},
	{asset: model.AssetUSD, item: "US Dollar", unit: "USD", places: 2},
	{asset: model.AssetHousing, item: "Housing", unit: "m²", places: 1},
}

// ComparePurchasingPower expresses amount as a quantity of each reference
// good at both snapshot dates. Change is the integer-rounded percentage
// change in affordable quantity: positive means the money buys more of the
// good today than it did then.
//
// Note the sign convention is the inverse of "inflation hurt you" framing:
// it measures quantity affordable, not price paid.
func ComparePurchasingPower(amount float64, start, end model.PriceSnapshot) []model.PurchasingPowerEntry {
	entries := make([]model.PurchasingPowerEntry, 0, len(referenceGoods))

	for _, good := range referenceGoods {
		startPrice, okStart := start.Price(good.asset)
		endPrice, okEnd := end.Price(good.asset)
		if !okStart || !okEnd {
			continue
		}

		then := amount / startPrice
		now := amount / endPrice

		entries = append(entries, model.PurchasingPowerEntry{
			Item:   good.item,
			Unit:   good.unit,
			Then:   roundTo(then, good.places),
			Now:    roundTo(now, good.places),
			Change: int(math.Round((now - then) / then * 100)),
		})
	}

	return entries
}

// roundTo rounds half away from zero at a fixed number of decimal places.
func roundTo(v float64, places int32) float64 {
	rounded, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return rounded
}
