package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/whatiftr/whatif-backend/internal/apperrors"
)

// SettingRepository provides data access methods for the system_setting
// table. Values are stored as opaque strings; encryption of sensitive
// values is the caller's responsibility.
type SettingRepository struct {
	db *sql.DB
}

// NewSettingRepository creates a new SettingRepository with the provided database connection.
func NewSettingRepository(db *sql.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get retrieves a setting value by key.
// Returns apperrors.ErrSettingNotFound when the key does not exist.
func (r *SettingRepository) Get(key string) (string, error) {
	query := `
		SELECT value
		FROM system_setting
		WHERE "key" = ?
	`

	var value string
	err := r.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("%w: %s", apperrors.ErrSettingNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query system_setting table: %w", err)
	}

	return value, nil
}

// Set inserts or updates a setting value.
func (r *SettingRepository) Set(key, value string) error {
	query := `
		INSERT INTO system_setting (id, "key", value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT("key") DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query, uuid.New().String(), key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert system_setting row: %w", err)
	}

	return nil
}
