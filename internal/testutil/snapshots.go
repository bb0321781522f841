package testutil

import (
	"testing"
	"time"

	"github.com/whatiftr/whatif-backend/internal/model"
)

// Date parses a YYYY-MM-DD string, failing the test on bad input.
func Date(t *testing.T, s string) time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return parsed
}

// Snapshot builds a price snapshot for a date from a price map.
func Snapshot(t *testing.T, date string, prices map[model.AssetCode]float64) model.PriceSnapshot {
	t.Helper()

	return model.PriceSnapshot{
		Date:   Date(t, date),
		Prices: prices,
	}
}
