package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"gym_club_backend/internal/database"
	"gym_club_backend/pkg/utils"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Scheduler SchedulerConfig
	Log       LogConfig
}

// ServerConfig holds loopback HTTP server options.
type ServerConfig struct {
	Host           string
	Port           string
	AllowedOrigins []string
}

// StorageConfig locates every file the application owns.
type StorageConfig struct {
	DataDir   string
	DBPath    string
	ExportDir string
	PhotoDir  string
	BackupDir string
}

// SchedulerConfig holds cron expressions for background jobs.
type SchedulerConfig struct {
	Enabled     bool
	BackupCron  string
	ExpiryCron  string
	KeepBackups int
}

// LogConfig holds logger options.
type LogConfig struct {
	Level string
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// A missing .env is fine; the desktop wrapper usually passes nothing at all.
		_ = godotenv.Load()
	}

	dataDir := os.Getenv("GYM_DATA_DIR")
	if dataDir == "" {
		dir, err := database.DefaultDataDir()
		if err != nil {
			return nil, err
		}
		dataDir = dir
	}

	keep, err := strconv.Atoi(utils.Getenv("BACKUP_KEEP", "14"))
	if err != nil {
		return nil, fmt.Errorf("BACKUP_KEEP must be an integer: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: utils.Getenv("APP_HOST", "127.0.0.1"),
			Port: utils.Getenv("APP_PORT", "8765"),
			AllowedOrigins: utils.GetenvList("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:5173", "http://127.0.0.1:5173", "app://gym-club",
			}),
		},
		Storage: StorageConfig{
			DataDir:   dataDir,
			DBPath:    utils.Getenv("GYM_DB_PATH", filepath.Join(dataDir, database.DBFileName)),
			ExportDir: utils.Getenv("GYM_EXPORT_DIR", filepath.Join(dataDir, "exports")),
			PhotoDir:  utils.Getenv("GYM_PHOTO_DIR", filepath.Join(dataDir, "photos")),
			BackupDir: utils.Getenv("GYM_BACKUP_DIR", filepath.Join(dataDir, "backups")),
		},
		Scheduler: SchedulerConfig{
			Enabled:     utils.GetenvBool("SCHEDULER_ENABLED", true),
			BackupCron:  utils.Getenv("BACKUP_CRON", "0 3 * * *"),
			ExpiryCron:  utils.Getenv("EXPIRY_CRON", "0 8 * * *"),
			KeepBackups: keep,
		},
		Log: LogConfig{
			Level: utils.Getenv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Host == "" {
		return errors.New("APP_HOST must not be empty")
	}
	if port, err := strconv.Atoi(c.Server.Port); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("APP_PORT must be a valid port, got %q", c.Server.Port)
	}
	if c.Storage.DBPath == "" {
		return errors.New("GYM_DB_PATH must not be empty")
	}
	if c.Storage.ExportDir == "" {
		return errors.New("GYM_EXPORT_DIR must not be empty")
	}
	if c.Scheduler.Enabled {
		if c.Scheduler.BackupCron == "" {
			return errors.New("BACKUP_CRON must be provided when the scheduler is enabled")
		}
		if c.Scheduler.ExpiryCron == "" {
			return errors.New("EXPIRY_CRON must be provided when the scheduler is enabled")
		}
	}
	if c.Scheduler.KeepBackups < 0 {
		return errors.New("BACKUP_KEEP must not be negative")
	}
	return nil
}
