package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/whatiftr/whatif-backend/internal/model"
)

// MockPriceSupplier is a configurable in-memory implementation of the price
// supplier used by the calculation engine. Snapshots are keyed by date
// string (YYYY-MM-DD); a missing key returns Err, or an empty snapshot when
// Err is nil.
type MockPriceSupplier struct {
	mu sync.Mutex

	Snapshots      map[string]model.PriceSnapshot
	InflationRates map[int]float64
	Err            error

	GetPricesCalls    int
	GetInflationCalls int
}

// NewMockPriceSupplier creates an empty mock supplier.
func NewMockPriceSupplier() *MockPriceSupplier {
	return &MockPriceSupplier{
		Snapshots:      make(map[string]model.PriceSnapshot),
		InflationRates: make(map[int]float64),
	}
}

// WithSnapshot registers a snapshot and returns the mock for chaining.
func (m *MockPriceSupplier) WithSnapshot(snap model.PriceSnapshot) *MockPriceSupplier {
	m.Snapshots[snap.Date.Format("2006-01-02")] = snap
	return m
}

// WithInflation registers an annual inflation rate and returns the mock.
func (m *MockPriceSupplier) WithInflation(year int, rate float64) *MockPriceSupplier {
	m.InflationRates[year] = rate
	return m
}

// GetPrices implements service.PriceSupplier.
func (m *MockPriceSupplier) GetPrices(_ context.Context, date time.Time) (model.PriceSnapshot, error) {
	m.mu.Lock()
	m.GetPricesCalls++
	m.mu.Unlock()

	snap, ok := m.Snapshots[date.Format("2006-01-02")]
	if !ok {
		if m.Err != nil {
			return model.PriceSnapshot{}, m.Err
		}
		return model.PriceSnapshot{Date: date, Prices: map[model.AssetCode]float64{}}, nil
	}
	return snap, nil
}

// GetInflationRate implements service.PriceSupplier. Unregistered years
// return 0, matching the real supplier's behavior.
func (m *MockPriceSupplier) GetInflationRate(_ context.Context, year int) (float64, error) {
	m.mu.Lock()
	m.GetInflationCalls++
	m.mu.Unlock()

	return m.InflationRates[year], nil
}
