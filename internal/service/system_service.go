package service

import (
	"database/sql"
	"fmt"

	"github.com/fernet/fernet-go"

	"github.com/whatiftr/whatif-backend/internal/apperrors"
	"github.com/whatiftr/whatif-backend/internal/database"
	"github.com/whatiftr/whatif-backend/internal/repository"
)

// evdsKeySetting is the system_setting key holding the encrypted EVDS API key.
const evdsKeySetting = "evds_api_key"

// SystemService covers operational concerns: database health and the
// encrypted storage of the EVDS API credential.
type SystemService struct {
	db        *sql.DB
	settings  *repository.SettingRepository
	fernetKey *fernet.Key
}

// NewSystemService creates a new SystemService. fernetKey may be nil, in
// which case credential operations fail with ErrEncryptionKeyNotConfigured.
func NewSystemService(db *sql.DB, settings *repository.SettingRepository, fernetKey *fernet.Key) *SystemService {
	return &SystemService{db: db, settings: settings, fernetKey: fernetKey}
}

// HealthCheck verifies database connectivity.
func (s *SystemService) HealthCheck() error {
	return database.HealthCheck(s.db)
}

// SetEVDSAPIKey encrypts the EVDS API key and stores it in system_setting.
func (s *SystemService) SetEVDSAPIKey(apiKey string) error {
	if s.fernetKey == nil {
		return apperrors.ErrEncryptionKeyNotConfigured
	}

	token, err := fernet.EncryptAndSign([]byte(apiKey), s.fernetKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt EVDS API key: %w", err)
	}

	return s.settings.Set(evdsKeySetting, string(token))
}

// EVDSAPIKey retrieves and decrypts the stored EVDS API key.
// Returns apperrors.ErrSettingNotFound when no key has been stored.
func (s *SystemService) EVDSAPIKey() (string, error) {
	if s.fernetKey == nil {
		return "", apperrors.ErrEncryptionKeyNotConfigured
	}

	token, err := s.settings.Get(evdsKeySetting)
	if err != nil {
		return "", err
	}

	// TTL 0: stored credentials do not expire.
	plain := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{s.fernetKey})
	if plain == nil {
		return "", fmt.Errorf("stored EVDS API key failed verification")
	}

	return string(plain), nil
}
