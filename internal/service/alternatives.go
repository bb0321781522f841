package service

import (
	"log"
	"sort"
	"time"

	"github.com/whatiftr/whatif-backend/internal/model"
)

// RankAlternatives values amount against every asset in the candidate set
// and returns the outcomes sorted descending by nominal return percent, best
// first. Ties keep candidate-set order.
//
// Candidates that cannot be valued (missing price data) are skipped with a
// diagnostic, so the result may be shorter than the candidate set; it never
// contains partial entries.
func RankAlternatives(amount float64, start, end model.PriceSnapshot, startDate, endDate time.Time) []model.ValuationResult {
	results := make([]model.ValuationResult, 0, len(model.AlternativeAssets))

	for _, asset := range model.AlternativeAssets {
		result, err := Valuate(asset, amount, start, end, startDate, endDate)
		if err != nil {
			log.Printf("skipping alternative %s: %v", asset, err)
			continue
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].NominalReturnPercent > results[j].NominalReturnPercent
	})

	return results
}
