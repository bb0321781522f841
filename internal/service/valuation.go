package service

import (
	"fmt"
	"math"
	"time"

	"github.com/whatiftr/whatif-backend/internal/apperrors"
	"github.com/whatiftr/whatif-backend/internal/model"
)

const (
	dateLayout  = "2006-01-02"
	daysPerYear = 365.0
)

// valuationStrategy selects the formula used to value an asset class.
type valuationStrategy int

const (
	// directQuantity: buy amount/p0 units at the start, sell them at p1.
	directQuantity valuationStrategy = iota
	// btcCrossRate: like directQuantity, but the price is quoted in USD and
	// converted through the local USD rate at both ends.
	btcCrossRate
	// compoundInterest: a deposit compounding annually at the rate
	// prevailing on the start date.
	compoundInterest
)

// strategyFor maps each supported asset to its valuation formula. Codes not
// in the table are valued as a no-op holding.
var strategyFor = map[model.AssetCode]valuationStrategy{
	model.AssetUSD:      directQuantity,
	model.AssetEUR:      directQuantity,
	model.AssetGold:     directQuantity,
	model.AssetSilver:   directQuantity,
	model.AssetHousing:  directQuantity,
	model.AssetCarNew:   directQuantity,
	model.AssetCarUsed:  directQuantity,
	model.AssetBTC:      btcCrossRate,
	model.AssetInterest: compoundInterest,
}

// Valuate computes the outcome of converting amount into asset on startDate
// and holding it until endDate. It is a pure function of its inputs.
//
// Both snapshots must carry a usable price for the asset (and, for BTC, the
// USD rate); otherwise a MissingPriceDataError is returned. An asset code
// without a strategy is treated as a no-op holding, not an error.
func Valuate(asset model.AssetCode, amount float64, start, end model.PriceSnapshot, startDate, endDate time.Time) (model.ValuationResult, error) {
	if amount <= 0 {
		return model.ValuationResult{}, fmt.Errorf("%w: got %v", apperrors.ErrNonPositiveAmount, amount)
	}

	startPrice, ok := start.Price(asset)
	if !ok {
		return model.ValuationResult{}, &apperrors.MissingPriceDataError{Asset: asset, Date: start.Date}
	}
	endPrice, ok := end.Price(asset)
	if !ok {
		return model.ValuationResult{}, &apperrors.MissingPriceDataError{Asset: asset, Date: end.Date}
	}

	var quantity *float64
	var currentValue float64

	strategy, known := strategyFor[asset]
	switch {
	case !known:
		// Unknown code with a price present: explicit no-op holding.
		currentValue = amount

	case strategy == directQuantity:
		q := amount / startPrice
		quantity = &q
		currentValue = q * endPrice

	case strategy == btcCrossRate:
		usdStart, ok := start.Price(model.AssetUSD)
		if !ok {
			return model.ValuationResult{}, &apperrors.MissingPriceDataError{Asset: model.AssetUSD, Date: start.Date}
		}
		usdEnd, ok := end.Price(model.AssetUSD)
		if !ok {
			return model.ValuationResult{}, &apperrors.MissingPriceDataError{Asset: model.AssetUSD, Date: end.Date}
		}
		priceStart := startPrice * usdStart
		priceEnd := endPrice * usdEnd
		q := amount / priceStart
		quantity = &q
		currentValue = q * priceEnd

	case strategy == compoundInterest:
		// The rate prevailing when the deposit was made; the end-date rate
		// is not used.
		years := endDate.Sub(startDate).Hours() / 24 / daysPerYear
		currentValue = amount * math.Pow(1+startPrice/100, years)
	}

	nominalReturn := currentValue - amount

	return model.ValuationResult{
		Asset:                asset,
		InitialAmount:        amount,
		Quantity:             quantity,
		CurrentValue:         currentValue,
		NominalReturn:        nominalReturn,
		NominalReturnPercent: nominalReturn / amount * 100,
		StartPrice:           startPrice,
		EndPrice:             endPrice,
	}, nil
}
