package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gym_club_backend/internal/models"
	"gym_club_backend/internal/repositories"
)

var ErrUnknownSetting = errors.New("unknown setting key")

var settingDefaults = map[string]string{
	models.SettingGymName:      "Gym Club",
	models.SettingDefaultStaff: "",
	models.SettingCurrency:     "",
}

// SettingRequest sets one preference.
type SettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// SettingsService reads and writes front-desk preferences. Keys that were never
// saved report their default value.
type SettingsService interface {
	GetSettings() (map[string]string, error)
	GetSetting(key string) (string, error)
	SaveSetting(req SettingRequest) (*models.AppSetting, error)
}

type settingsService struct {
	repo repositories.SettingsRepository
	db   *sql.DB
}

func NewSettingsService(repo repositories.SettingsRepository, db *sql.DB) SettingsService {
	return &settingsService{repo: repo, db: db}
}

func (s *settingsService) GetSettings() (map[string]string, error) {
	out := make(map[string]string, len(settingDefaults))
	for k, v := range settingDefaults {
		out[k] = v
	}
	stored, err := s.repo.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	for _, st := range stored {
		out[st.Key] = st.Value
	}
	return out, nil
}

func (s *settingsService) GetSetting(key string) (string, error) {
	def, known := settingDefaults[key]
	if !known {
		return "", fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}
	st, err := s.repo.GetSetting(key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return def, nil
		}
		return "", fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return st.Value, nil
}

func (s *settingsService) SaveSetting(req SettingRequest) (*models.AppSetting, error) {
	key := strings.TrimSpace(req.Key)
	if _, known := settingDefaults[key]; !known {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}
	setting := &models.AppSetting{Key: key, Value: strings.TrimSpace(req.Value)}
	if err := s.repo.UpsertSetting(s.db, setting); err != nil {
		return nil, fmt.Errorf("failed to save setting %q: %w", key, err)
	}
	return setting, nil
}
