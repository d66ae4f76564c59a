// Package cli holds the gym-club command tree: the loopback server plus the
// maintenance commands a front desk runs by hand.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gym_club_backend/internal/config"
	"gym_club_backend/internal/database"
	"gym_club_backend/internal/services"
	"gym_club_backend/pkg/utils"
)

var (
	dbPath  string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:          "gym-club",
	Short:        "gym-club runs the local data service for the gym front desk",
	Long:         "gym-club stores members, visitors, PT clients and billed services in a local SQLite file and serves them to the desktop shell.",
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (overrides GYM_DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Optional .env file to load")
}

// loadConfig reads the environment and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Storage.DBPath = dbPath
	}
	utils.InitLogger(cfg.Log.Level)
	return cfg, nil
}

// openContainer opens (creating when needed) the database and wires services.
// The caller closes the returned database.
func openContainer(cfg *config.Config) (*services.Container, error) {
	db, err := database.OpenAndInit(cfg.Storage.DBPath)
	if err != nil {
		return nil, err
	}
	svc, err := services.NewContainer(db, services.Paths{
		ExportDir: cfg.Storage.ExportDir,
		PhotoDir:  cfg.Storage.PhotoDir,
		BackupDir: cfg.Storage.BackupDir,
	}, nil)
	if err != nil {
		db.Close()
		return nil, err
	}
	return svc, nil
}
