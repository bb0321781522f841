package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// InflationRepository provides data access methods for the inflation_rate
// table, which stores one annual inflation percentage per calendar year.
type InflationRepository struct {
	db *sql.DB
}

// NewInflationRepository creates a new InflationRepository with the provided database connection.
func NewInflationRepository(db *sql.DB) *InflationRepository {
	return &InflationRepository{db: db}
}

// GetRate retrieves the annual inflation rate for a year.
// The second return value is false when no rate is stored for that year.
func (r *InflationRepository) GetRate(year int) (float64, bool, error) {
	query := `
		SELECT rate
		FROM inflation_rate
		WHERE year = ?
	`

	var rate float64
	err := r.db.QueryRow(query, year).Scan(&rate)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query inflation_rate table: %w", err)
	}

	return rate, true, nil
}

// UpsertRate inserts or updates the annual inflation rate for a year.
func (r *InflationRepository) UpsertRate(year int, rate float64) error {
	query := `
		INSERT INTO inflation_rate (id, year, rate)
		VALUES (?, ?, ?)
		ON CONFLICT(year) DO UPDATE SET rate = excluded.rate
	`

	_, err := r.db.Exec(query, uuid.New().String(), year, rate)
	if err != nil {
		return fmt.Errorf("failed to upsert inflation_rate row: %w", err)
	}

	return nil
}
