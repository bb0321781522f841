// Package request defines the JSON request bodies accepted by the API.
package request

// RunSimulationRequest is the body of POST /api/simulation/run.
// EndDate is optional and defaults to today.
type RunSimulationRequest struct {
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate,omitempty"`
	Amount    float64 `json:"amount"`
	Asset     string  `json:"asset"`
}

// TimeSeriesRequest is the body of POST /api/simulation/time-series.
type TimeSeriesRequest struct {
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate,omitempty"`
	Amount    float64 `json:"amount"`
	Asset     string  `json:"asset"`
}

// SetEVDSKeyRequest is the body of PUT /api/system/evds-key.
type SetEVDSKeyRequest struct {
	APIKey string `json:"apiKey"`
}

// ValidateRequest is the body of POST /api/data/validate.
type ValidateRequest struct {
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate,omitempty"`
	Amount    float64 `json:"amount"`
	Asset     string  `json:"asset"`
}
