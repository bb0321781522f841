package model

// ValuationResult is the outcome of valuing one asset over a period.
// NominalReturn and NominalReturnPercent are always derived from
// CurrentValue and InitialAmount, never set independently.
type ValuationResult struct {
	Asset                AssetCode `json:"asset"`
	InitialAmount        float64   `json:"initialAmount"`
	Quantity             *float64  `json:"quantity"`
	CurrentValue         float64   `json:"currentValue"`
	NominalReturn        float64   `json:"nominalReturn"`
	NominalReturnPercent float64   `json:"nominalReturnPercent"`
	StartPrice           float64   `json:"startPrice"`
	EndPrice             float64   `json:"endPrice"`
}

// PurchasingPowerEntry expresses a fixed sum as a quantity of one reference
// good at two points in time. Change is the percentage change in affordable
// quantity, rounded to an integer: positive means more can be bought today.
type PurchasingPowerEntry struct {
	Item   string  `json:"item"`
	Unit   string  `json:"unit"`
	Then   float64 `json:"then"`
	Now    float64 `json:"now"`
	Change int     `json:"change"`
}

// Period describes the simulated time span.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// SimulationResult aggregates everything computed for one simulation
// request. Alternatives is sorted descending by nominal return percent.
type SimulationResult struct {
	Selected          ValuationResult        `json:"selected"`
	Alternatives      []ValuationResult      `json:"alternatives"`
	Inflation         float64                `json:"inflation"`
	RealReturnPercent float64                `json:"realReturnPercent"`
	PurchasingPower   []PurchasingPowerEntry `json:"purchasingPower"`
	Period            Period                 `json:"period"`
}

// TimeSeriesPoint is one sample of a valuation series used for charting.
type TimeSeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
