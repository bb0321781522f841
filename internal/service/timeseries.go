package service

import (
	"context"
	"log"
	"time"

	"github.com/whatiftr/whatif-backend/internal/model"
)

// maxSeriesPoints bounds the number of chart samples per series.
const maxSeriesPoints = 60

// TimeSeries samples the value of holding amount of asset from startDate at
// a monthly cadence, producing at most maxSeriesPoints points. The step is
// widened for long ranges: max(1, totalMonths/maxSeriesPoints) months.
//
// A failed fetch or valuation for one sample date drops that point with a
// diagnostic; only a missing start snapshot is fatal to the whole series.
func (s *SimulationService) TimeSeries(ctx context.Context, startDate, endDate time.Time, asset model.AssetCode, amount float64) ([]model.TimeSeriesPoint, error) {
	startSnap, err := s.prices.GetPrices(ctx, startDate)
	if err != nil {
		return nil, err
	}

	totalMonths := (endDate.Year()-startDate.Year())*12 + int(endDate.Month()) - int(startDate.Month())
	step := totalMonths / maxSeriesPoints
	if step < 1 {
		step = 1
	}

	series := make([]model.TimeSeriesPoint, 0, maxSeriesPoints)

	for current := startDate; !current.After(endDate) && len(series) < maxSeriesPoints; current = current.AddDate(0, step, 0) {
		snap, err := s.prices.GetPrices(ctx, current)
		if err != nil {
			log.Printf("time series: dropping %s: %v", current.Format(dateLayout), err)
			continue
		}

		result, err := Valuate(asset, amount, startSnap, snap, startDate, current)
		if err != nil {
			log.Printf("time series: dropping %s: %v", current.Format(dateLayout), err)
			continue
		}

		series = append(series, model.TimeSeriesPoint{
			Date:  current.Format(dateLayout),
			Value: result.CurrentValue,
		})
	}

	return series, nil
}
