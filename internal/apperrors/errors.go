package apperrors

import (
	"errors"
	"fmt"
	"time"

	"github.com/whatiftr/whatif-backend/internal/model"
)

// Input errors represent invalid simulation parameters. They are always
// fatal, surfaced directly to the caller and never retried.
var (
	// ErrInvalidInput is the root of the input error family; every input
	// error wraps it so handlers can match with errors.Is.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNonPositiveAmount indicates an amount of zero or less.
	ErrNonPositiveAmount = fmt.Errorf("%w: amount must be positive", ErrInvalidInput)

	// ErrInvalidDateRange indicates that the start date is after the end date.
	ErrInvalidDateRange = fmt.Errorf("%w: start date is after end date", ErrInvalidInput)

	// ErrUnknownAsset indicates an asset code outside the enumeration.
	ErrUnknownAsset = fmt.Errorf("%w: unknown asset code", ErrInvalidInput)
)

// Calculation errors represent conditions detected inside the valuation
// engine itself.
var (
	// ErrDegenerateInflation guards the Fisher relation against a cumulative
	// inflation of exactly -100%, which would divide by zero.
	ErrDegenerateInflation = errors.New("cumulative inflation of -100% makes the real return undefined")

	// ErrSnapshotUnavailable indicates that no price source could produce
	// any data for the requested date.
	ErrSnapshotUnavailable = errors.New("no price data available for date")
)

// Storage errors.
var (
	// ErrSettingNotFound indicates that a system setting key does not exist.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrEncryptionKeyNotConfigured indicates that an operation needing the
	// fernet key was attempted without one configured.
	ErrEncryptionKeyNotConfigured = errors.New("encryption key not configured")
)

// MissingPriceDataError indicates that a required price was absent from a
// snapshot. It is fatal for a single-asset valuation but caught and skipped
// by batch operations (alternatives ranking, time-series sampling).
type MissingPriceDataError struct {
	Asset model.AssetCode
	Date  time.Time
}

func (e *MissingPriceDataError) Error() string {
	return fmt.Sprintf("missing price data for %s on %s", e.Asset, e.Date.Format("2006-01-02"))
}

// IsMissingPriceData reports whether err is (or wraps) a MissingPriceDataError.
func IsMissingPriceData(err error) bool {
	var target *MissingPriceDataError
	return errors.As(err, &target)
}
