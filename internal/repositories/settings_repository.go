package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gym_club_backend/internal/models"
)

// SettingsRepository stores front-desk preferences as key-value pairs.
type SettingsRepository interface {
	GetSettings() ([]models.AppSetting, error)
	GetSetting(key string) (*models.AppSetting, error)
	UpsertSetting(executor SQLExecutor, setting *models.AppSetting) error
}

type settingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new instance of SettingsRepository.
func NewSettingsRepository(db *sql.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetSettings() ([]models.AppSetting, error) {
	rows, err := r.db.Query(`SELECT setting_key, setting_value, updated_at FROM app_settings ORDER BY setting_key`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying settings: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	settings := []models.AppSetting{}
	for rows.Next() {
		var s models.AppSetting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning setting: %v", ErrDatabaseError, err)
		}
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating setting rows: %v", ErrDatabaseError, err)
	}
	return settings, nil
}

func (r *settingsRepository) GetSetting(key string) (*models.AppSetting, error) {
	var s models.AppSetting
	err := r.db.QueryRow(`SELECT setting_key, setting_value, updated_at FROM app_settings WHERE setting_key = ?`, key).
		Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting setting %q: %v", ErrDatabaseError, key, err)
	}
	return &s, nil
}

// UpsertSetting creates the key or overwrites its value.
func (r *settingsRepository) UpsertSetting(executor SQLExecutor, setting *models.AppSetting) error {
	setting.UpdatedAt = time.Now().Format(time.RFC3339)
	_, err := executor.Exec(
		`INSERT INTO app_settings (setting_key, setting_value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(setting_key) DO UPDATE SET setting_value = excluded.setting_value, updated_at = excluded.updated_at`,
		setting.Key, setting.Value, setting.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: saving setting %q: %v", ErrDatabaseError, setting.Key, err)
	}
	return nil
}
