package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_club_backend/internal/models"
	"gym_club_backend/internal/services"
	"gym_club_backend/pkg/utils"
)

// SettingsHandler serves front-desk preferences and database backups.
type SettingsHandler struct {
	settingsService services.SettingsService
	backupService   services.BackupService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(ss services.SettingsService, bs services.BackupService) *SettingsHandler {
	return &SettingsHandler{settingsService: ss, backupService: bs}
}

// GetSettings returns every preference, defaults filled in.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		utils.LogError(err, "GetSettings: Error from settingsService")
		internalError(c, "Failed to load settings")
		return
	}
	utils.RespondWithData(c, http.StatusOK, settings)
}

// SaveSetting stores one preference.
func (h *SettingsHandler) SaveSetting(c *gin.Context) {
	var req services.SettingRequest
	if !bindJSON(c, &req, "SaveSetting") {
		return
	}
	setting, err := h.settingsService.SaveSetting(req)
	if err != nil {
		utils.LogError(err, "SaveSetting: Error from settingsService")
		if errors.Is(err, services.ErrUnknownSetting) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Unknown setting", err.Error()))
		} else {
			internalError(c, "Failed to save setting")
		}
		return
	}
	utils.RespondWithData(c, http.StatusOK, setting)
}

// ListBackups lists the backups in the configured directory, newest first.
func (h *SettingsHandler) ListBackups(c *gin.Context) {
	backups, err := h.backupService.ListBackups()
	if err != nil {
		utils.LogError(err, "ListBackups: Error from backupService")
		internalError(c, "Failed to list backups")
		return
	}
	if backups == nil {
		backups = []models.BackupInfo{}
	}
	utils.RespondWithData(c, http.StatusOK, backups)
}

// CreateBackup snapshots the database into the backup directory.
func (h *SettingsHandler) CreateBackup(c *gin.Context) {
	info, err := h.backupService.CreateBackup("")
	if err != nil {
		utils.LogError(err, "CreateBackup: Error from backupService")
		if errors.Is(err, services.ErrBackupExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "A backup for this second already exists", err.Error()))
		} else {
			internalError(c, "Failed to create backup")
		}
		return
	}
	utils.RespondWithData(c, http.StatusCreated, info)
}
