package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/whatiftr/whatif-backend/internal/model"
)

// PriceRepository provides data access methods for the asset_price table.
// The table holds manually curated reference prices plus prices persisted by
// the daily refresher, and serves as the fallback source when live APIs
// have no data for a date.
type PriceRepository struct {
	db *sql.DB
}

// NewPriceRepository creates a new PriceRepository with the provided database connection.
func NewPriceRepository(db *sql.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// GetPricesForDate retrieves every stored asset price for one calendar date.
// Returns an empty map if nothing is stored for that date.
func (r *PriceRepository) GetPricesForDate(date time.Time) (map[model.AssetCode]float64, error) {
	query := `
		SELECT asset, price
		FROM asset_price
		WHERE date = ?
	`

	rows, err := r.db.Query(query, date.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query asset_price table: %w", err)
	}
	defer rows.Close()

	prices := make(map[model.AssetCode]float64)

	for rows.Next() {
		var asset string
		var price float64

		if err := rows.Scan(&asset, &price); err != nil {
			return nil, fmt.Errorf("failed to scan asset_price results: %w", err)
		}
		prices[model.AssetCode(asset)] = price
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset_price table: %w", err)
	}

	return prices, nil
}

// GetPrice retrieves the stored price for one asset on one date.
// The second return value is false when no row exists.
func (r *PriceRepository) GetPrice(asset model.AssetCode, date time.Time) (float64, bool, error) {
	query := `
		SELECT price
		FROM asset_price
		WHERE asset = ? AND date = ?
	`

	var price float64
	err := r.db.QueryRow(query, string(asset), date.Format("2006-01-02")).Scan(&price)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query asset_price table: %w", err)
	}

	return price, true, nil
}

// UpsertPrice inserts or updates the stored price for one asset and date.
func (r *PriceRepository) UpsertPrice(asset model.AssetCode, date time.Time, price float64) error {
	query := `
		INSERT INTO asset_price (id, asset, date, price)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(asset, date) DO UPDATE SET price = excluded.price
	`

	_, err := r.db.Exec(query, uuid.New().String(), string(asset), date.Format("2006-01-02"), price)
	if err != nil {
		return fmt.Errorf("failed to upsert asset_price row: %w", err)
	}

	return nil
}
