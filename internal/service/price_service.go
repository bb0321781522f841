package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/whatiftr/whatif-backend/internal/apperrors"
	"github.com/whatiftr/whatif-backend/internal/coingecko"
	"github.com/whatiftr/whatif-backend/internal/evds"
	"github.com/whatiftr/whatif-backend/internal/model"
	"github.com/whatiftr/whatif-backend/internal/repository"
)

// SnapshotCache is the injected cache collaborator for built snapshots.
// A nil cache disables caching.
type SnapshotCache interface {
	GetSnapshot(ctx context.Context, date time.Time) (model.PriceSnapshot, bool)
	SetSnapshot(ctx context.Context, snap model.PriceSnapshot) error
}

// PriceService builds full price snapshots in a single batch operation. Live
// series come from EVDS and CoinGecko; anything they cannot provide falls
// back to the sqlite price store, which is also the only source for the
// manually curated series (silver, housing, cars).
//
// Per-field failures are logged and leave the field absent; the snapshot as
// a whole fails only when no source produced any data at all.
type PriceService struct {
	series        evds.Client
	crypto        coingecko.Client
	priceRepo     *repository.PriceRepository
	inflationRepo *repository.InflationRepository
	cache         SnapshotCache
}

// NewPriceService creates a new PriceService. cache may be nil.
func NewPriceService(
	series evds.Client,
	crypto coingecko.Client,
	priceRepo *repository.PriceRepository,
	inflationRepo *repository.InflationRepository,
	cache SnapshotCache,
) *PriceService {
	return &PriceService{
		series:        series,
		crypto:        crypto,
		priceRepo:     priceRepo,
		inflationRepo: inflationRepo,
		cache:         cache,
	}
}

// GetPrices returns the price snapshot for a calendar date, building it from
// the live APIs and the fallback store. Independent fetches run concurrently.
func (s *PriceService) GetPrices(ctx context.Context, date time.Time) (model.PriceSnapshot, error) {
	day := normalizeDay(date)

	if s.cache != nil {
		if snap, ok := s.cache.GetSnapshot(ctx, day); ok {
			return snap, nil
		}
	}

	var (
		usd, eur, goldOunce, btc, deposit           float64
		usdErr, eurErr, goldErr, btcErr, depositErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		usd, usdErr = s.series.FetchSeriesValue(gctx, evds.SeriesUSDBuy, day)
		return nil
	})
	g.Go(func() error {
		eur, eurErr = s.series.FetchSeriesValue(gctx, evds.SeriesEURBuy, day)
		return nil
	})
	g.Go(func() error {
		goldOunce, goldErr = s.series.FetchSeriesValue(gctx, evds.SeriesGoldOunceUSD, day)
		return nil
	})
	g.Go(func() error {
		deposit, depositErr = s.series.FetchSeriesValue(gctx, evds.SeriesDepositRate, day)
		return nil
	})
	g.Go(func() error {
		btc, btcErr = s.crypto.BitcoinUSD(gctx, day)
		return nil
	})
	// Fetch errors are collected per field, never propagated through the group.
	_ = g.Wait()

	prices := make(map[model.AssetCode]float64)

	setPrice(prices, model.AssetUSD, usd, usdErr)
	setPrice(prices, model.AssetEUR, eur, eurErr)
	setPrice(prices, model.AssetInterest, deposit, depositErr)
	setPrice(prices, model.AssetBTC, btc, btcErr)

	// Gold arrives as ounce-USD and is converted to gram in local currency,
	// so it also needs the USD rate.
	if goldErr == nil && usdErr == nil && goldOunce > 0 && usd > 0 {
		prices[model.AssetGold] = goldOunce * usd / evds.GramsPerOunce
	} else if goldErr != nil {
		log.Printf("price fetch failed for %s on %s: %v", model.AssetGold, day.Format(dateLayout), goldErr)
	}

	// Fallback store: fills anything the live APIs could not provide and is
	// the sole source for the manually curated series.
	stored, err := s.priceRepo.GetPricesForDate(day)
	if err != nil {
		log.Printf("price store lookup failed for %s: %v", day.Format(dateLayout), err)
	} else {
		for code, price := range stored {
			if _, ok := prices[code]; !ok && price > 0 {
				prices[code] = price
			}
		}
	}

	if len(prices) == 0 {
		return model.PriceSnapshot{}, fmt.Errorf("%w: %s", apperrors.ErrSnapshotUnavailable, day.Format(dateLayout))
	}

	snap := model.PriceSnapshot{Date: day, Prices: prices}

	if s.cache != nil {
		if err := s.cache.SetSnapshot(ctx, snap); err != nil {
			log.Printf("failed to cache snapshot for %s: %v", day.Format(dateLayout), err)
		}
	}

	return snap, nil
}

// GetInflationRate returns the stored annual inflation rate for a year,
// 0 if unknown.
func (s *PriceService) GetInflationRate(_ context.Context, year int) (float64, error) {
	rate, ok, err := s.inflationRepo.GetRate(year)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return rate, nil
}

func setPrice(prices map[model.AssetCode]float64, code model.AssetCode, value float64, err error) {
	if err != nil {
		log.Printf("price fetch failed for %s: %v", code, err)
		return
	}
	if value > 0 {
		prices[code] = value
	}
}

func normalizeDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
