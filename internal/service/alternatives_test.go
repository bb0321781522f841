package service

import (
	"testing"

	"github.com/whatiftr/whatif-backend/internal/model"
	"github.com/whatiftr/whatif-backend/internal/testutil"
)

func TestRankAlternatives(t *testing.T) {
	t.Run("sorts descending by nominal return percent", func(t *testing.T) {
		start := testutil.Snapshot(t, "2020-01-01", map[model.AssetCode]float64{
			model.AssetUSD:  10, // x2
			model.AssetEUR:  10, // x4
			model.AssetGold: 10, // x1.5
		})
		end := testutil.Snapshot(t, "2024-01-01", map[model.AssetCode]float64{
			model.AssetUSD:  20,
			model.AssetEUR:  40,
			model.AssetGold: 15,
		})

		results := RankAlternatives(10000, start, end, start.Date, end.Date)

		if len(results) != 3 {
			t.Fatalf("expected 3 ranked results, got %d", len(results))
		}

		expectedOrder := []model.AssetCode{model.AssetEUR, model.AssetUSD, model.AssetGold}
		for i, asset := range expectedOrder {
			if results[i].Asset != asset {
				t.Errorf("position %d: expected %s, got %s", i, asset, results[i].Asset)
			}
		}
	})

	t.Run("skips candidates without prices", func(t *testing.T) {
		start := testutil.Snapshot(t, "2020-01-01", map[model.AssetCode]float64{model.AssetUSD: 10})
		end := testutil.Snapshot(t, "2024-01-01", map[model.AssetCode]float64{model.AssetUSD: 20})

		results := RankAlternatives(10000, start, end, start.Date, end.Date)

		if len(results) != 1 {
			t.Fatalf("expected only USD to survive, got %d results", len(results))
		}
		if results[0].Asset != model.AssetUSD {
			t.Errorf("expected USD, got %s", results[0].Asset)
		}
	})

	t.Run("used cars are never ranked", func(t *testing.T) {
		prices := map[model.AssetCode]float64{}
		for _, asset := range model.AllAssets {
			prices[asset] = 100
		}
		start := testutil.Snapshot(t, "2020-01-01", prices)
		end := testutil.Snapshot(t, "2024-01-01", prices)

		for _, result := range RankAlternatives(10000, start, end, start.Date, end.Date) {
			if result.Asset == model.AssetCarUsed {
				t.Error("CAR_USED appeared in the ranked alternatives")
			}
		}
	})

	t.Run("ties keep candidate-set order", func(t *testing.T) {
		start := testutil.Snapshot(t, "2020-01-01", map[model.AssetCode]float64{
			model.AssetUSD: 10,
			model.AssetEUR: 5,
		})
		end := testutil.Snapshot(t, "2024-01-01", map[model.AssetCode]float64{
			model.AssetUSD: 20,
			model.AssetEUR: 10,
		})

		results := RankAlternatives(10000, start, end, start.Date, end.Date)

		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
		if results[0].Asset != model.AssetUSD || results[1].Asset != model.AssetEUR {
			t.Errorf("expected USD then EUR on a tie, got %s then %s", results[0].Asset, results[1].Asset)
		}
	})
}
