package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/whatiftr/whatif-backend/internal/apperrors"
	"github.com/whatiftr/whatif-backend/internal/model"
)

// PriceSupplier provides price snapshots and annual inflation rates. The
// calculation engine treats each call as a fallible, cancellable I/O
// operation; caching and retries are the supplier's concern.
type PriceSupplier interface {
	// GetPrices returns the full price snapshot for a calendar date.
	GetPrices(ctx context.Context, date time.Time) (model.PriceSnapshot, error)
	// GetInflationRate returns the annual inflation percentage for a year,
	// 0 if unknown.
	GetInflationRate(ctx context.Context, year int) (float64, error)
}

// SimulationService runs alternative-history valuations. All calculation is
// pure; the only I/O is snapshot fetching through the supplier, and
// concurrent requests share no mutable state.
type SimulationService struct {
	prices PriceSupplier
}

// NewSimulationService creates a new SimulationService
func NewSimulationService(prices PriceSupplier) *SimulationService {
	return &SimulationService{prices: prices}
}

// SimulationInput is a validated simulation request.
type SimulationInput struct {
	StartDate time.Time
	EndDate   time.Time
	Amount    float64
	Asset     model.AssetCode
}

// validate enforces the engine-owned preconditions regardless of what the
// HTTP layer already checked.
func (in SimulationInput) validate() error {
	if in.Amount <= 0 {
		return fmt.Errorf("%w: got %v", apperrors.ErrNonPositiveAmount, in.Amount)
	}
	if in.StartDate.After(in.EndDate) {
		return fmt.Errorf("%w: %s > %s", apperrors.ErrInvalidDateRange,
			in.StartDate.Format(dateLayout), in.EndDate.Format(dateLayout))
	}
	if !in.Asset.IsValid() {
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownAsset, in.Asset)
	}
	return nil
}

// Run executes a full simulation: valuation of the selected asset, the
// ranked alternatives, cumulative inflation with the Fisher-adjusted real
// return, and the purchasing-power comparison.
//
// The two snapshot fetches are independent and issued concurrently; every
// computation after them is synchronous and pure.
func (s *SimulationService) Run(ctx context.Context, in SimulationInput) (model.SimulationResult, error) {
	if err := in.validate(); err != nil {
		return model.SimulationResult{}, err
	}

	var startSnap, endSnap model.PriceSnapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		startSnap, err = s.prices.GetPrices(gctx, in.StartDate)
		return err
	})
	g.Go(func() error {
		var err error
		endSnap, err = s.prices.GetPrices(gctx, in.EndDate)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.SimulationResult{}, err
	}

	selected, err := Valuate(in.Asset, in.Amount, startSnap, endSnap, in.StartDate, in.EndDate)
	if err != nil {
		return model.SimulationResult{}, err
	}

	alternatives := RankAlternatives(in.Amount, startSnap, endSnap, in.StartDate, in.EndDate)

	inflation, err := s.CumulativeInflation(ctx, in.StartDate, in.EndDate)
	if err != nil {
		return model.SimulationResult{}, err
	}

	realReturn, err := RealReturn(selected.NominalReturnPercent, inflation)
	if err != nil {
		return model.SimulationResult{}, err
	}

	return model.SimulationResult{
		Selected:          selected,
		Alternatives:      alternatives,
		Inflation:         inflation,
		RealReturnPercent: realReturn,
		PurchasingPower:   ComparePurchasingPower(in.Amount, startSnap, endSnap),
		Period: model.Period{
			Start: in.StartDate.Format(dateLayout),
			End:   in.EndDate.Format(dateLayout),
			Days:  int(in.EndDate.Sub(in.StartDate).Hours() / 24),
		},
	}, nil
}
