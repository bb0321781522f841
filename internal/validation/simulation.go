package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/whatiftr/whatif-backend/internal/model"
)

const dateLayout = "2006-01-02"

// Bounds enforced on simulation requests.
const (
	MinAmount = 100.0
	MaxAmount = 1_000_000_000.0
)

// MinDate is the earliest supported simulation start date; the curated data
// set does not reach further back.
var MinDate = time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)

// SimulationParams are the parsed and validated fields shared by the
// simulation and time-series endpoints.
type SimulationParams struct {
	StartDate time.Time
	EndDate   time.Time
	Amount    float64
	Asset     model.AssetCode
}

// ValidateSimulationParams validates the raw request fields and returns the
// parsed parameters. endDate may be empty, defaulting to today.
func ValidateSimulationParams(startDate, endDate string, amount float64, asset string) (SimulationParams, error) {
	fields := make(map[string]string)
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var params SimulationParams

	if startDate == "" {
		fields["startDate"] = "startDate is required"
	} else if parsed, err := time.Parse(dateLayout, startDate); err != nil {
		fields["startDate"] = "startDate must be formatted as YYYY-MM-DD"
	} else {
		params.StartDate = parsed
		if parsed.Before(MinDate) {
			fields["startDate"] = fmt.Sprintf("startDate must not be before %s", MinDate.Format(dateLayout))
		} else if parsed.After(today) {
			fields["startDate"] = "startDate must not be in the future"
		}
	}

	if endDate == "" {
		params.EndDate = today
	} else if parsed, err := time.Parse(dateLayout, endDate); err != nil {
		fields["endDate"] = "endDate must be formatted as YYYY-MM-DD"
	} else {
		params.EndDate = parsed
	}

	if _, ok := fields["startDate"]; !ok {
		if _, ok := fields["endDate"]; !ok && params.StartDate.After(params.EndDate) {
			fields["endDate"] = "endDate must not be before startDate"
		}
	}

	if amount < MinAmount || amount > MaxAmount {
		fields["amount"] = fmt.Sprintf("amount must be between %.0f and %.0f", MinAmount, MaxAmount)
	}
	params.Amount = amount

	params.Asset = model.AssetCode(strings.ToUpper(strings.TrimSpace(asset)))
	if !params.Asset.IsValid() {
		fields["asset"] = "asset must be a supported asset code"
	}

	if err := newError(fields); err != nil {
		return SimulationParams{}, err
	}
	return params, nil
}

// ValidateDate parses a YYYY-MM-DD path parameter.
func ValidateDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, newError(map[string]string{"date": "date must be formatted as YYYY-MM-DD"})
	}
	return parsed, nil
}

// ValidateYear parses and bounds a year path parameter.
func ValidateYear(raw string) (int, error) {
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, newError(map[string]string{"year": "year must be an integer"})
	}
	if year < 2000 || year > time.Now().UTC().Year() {
		return 0, newError(map[string]string{"year": "year is out of the supported range"})
	}
	return year, nil
}
