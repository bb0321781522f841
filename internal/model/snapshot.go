package model

import "time"

// PriceSnapshot holds the reference price of every available asset on one
// calendar date (day granularity, UTC midnight). A snapshot is immutable
// once built and is never partially filled: assets without a usable price
// are simply absent from the map.
type PriceSnapshot struct {
	Date   time.Time
	Prices map[AssetCode]float64
}

// Price returns the price for code. The second return value is false when
// the snapshot has no usable price for that asset; non-positive stored
// values are treated as unusable.
func (s PriceSnapshot) Price(code AssetCode) (float64, bool) {
	p, ok := s.Prices[code]
	if !ok || p <= 0 {
		return 0, false
	}
	return p, true
}

// Has reports whether the snapshot contains a usable price for code.
func (s PriceSnapshot) Has(code AssetCode) bool {
	_, ok := s.Price(code)
	return ok
}
