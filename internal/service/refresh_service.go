package service

import (
	"context"
	"log"
	"time"

	"github.com/whatiftr/whatif-backend/internal/repository"
)

// RefreshService persists the latest live prices into the sqlite store so
// they survive API outages and serve as the fallback source.
type RefreshService struct {
	prices    PriceSupplier
	priceRepo *repository.PriceRepository
}

// NewRefreshService creates a new RefreshService.
func NewRefreshService(prices PriceSupplier, priceRepo *repository.PriceRepository) *RefreshService {
	return &RefreshService{prices: prices, priceRepo: priceRepo}
}

// RefreshLatest fetches today's snapshot and upserts every price it carries.
// Intended to run from the daily scheduler; failures are returned for the
// caller to log, never retried here.
func (s *RefreshService) RefreshLatest(ctx context.Context) error {
	today := time.Now().UTC()

	snap, err := s.prices.GetPrices(ctx, today)
	if err != nil {
		return err
	}

	for asset, price := range snap.Prices {
		if err := s.priceRepo.UpsertPrice(asset, snap.Date, price); err != nil {
			log.Printf("refresh: failed to store %s price: %v", asset, err)
		}
	}

	return nil
}
