package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"gym_club_backend/internal/database"
	"gym_club_backend/internal/router"
	"gym_club_backend/internal/scheduler"
	"gym_club_backend/pkg/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the loopback HTTP server for the desktop shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Log.Level != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}

		db, err := database.OpenAndInit(cfg.Storage.DBPath)
		if err != nil {
			utils.LogError(err, "Failed to open data store")
			return fmt.Errorf("open data store: %w", err)
		}
		defer db.Close()
		utils.LogInfo("Database initialized", map[string]interface{}{"path": cfg.Storage.DBPath})

		engine := router.NewEngine(cfg)
		svc, err := router.Setup(engine, db, cfg)
		if err != nil {
			return err
		}

		if cfg.Scheduler.Enabled {
			jobs := scheduler.NewScheduler(cfg.Scheduler, svc.Backup, svc.Members)
			if err := jobs.Start(); err != nil {
				return err
			}
			defer jobs.Stop()
		}

		srv := &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			utils.LogInfo("Server starting", map[string]interface{}{"addr": srv.Addr})
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				utils.LogError(err, "Failed to start server")
				return err
			}
			return nil
		case <-ctx.Done():
		}

		utils.LogInfo("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
