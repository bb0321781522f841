package service

import (
	"context"
	"time"

	"github.com/whatiftr/whatif-backend/internal/apperrors"
)

// CumulativeInflation compounds the annual inflation rate of every calendar
// year in [startDate, endDate], both boundary years included, and returns
// the cumulative percentage. Rates are applied once per year with no
// pro-rating to the day of year; that simplification is part of the
// contract and must not change.
func (s *SimulationService) CumulativeInflation(ctx context.Context, startDate, endDate time.Time) (float64, error) {
	cumulative := 1.0

	for year := startDate.Year(); year <= endDate.Year(); year++ {
		rate, err := s.prices.GetInflationRate(ctx, year)
		if err != nil {
			return 0, err
		}
		cumulative *= 1 + rate/100
	}

	return (cumulative - 1) * 100, nil
}

// RealReturn converts a nominal return and a cumulative inflation rate into
// a real (purchasing-power-adjusted) return via the Fisher relation.
//
// A cumulative inflation of exactly -100% would divide by zero; that input
// is rejected rather than silently producing Inf or NaN.
func RealReturn(nominalPercent, inflationPercent float64) (float64, error) {
	if inflationPercent == -100 {
		return 0, apperrors.ErrDegenerateInflation
	}
	return ((1+nominalPercent/100)/(1+inflationPercent/100) - 1) * 100, nil
}
