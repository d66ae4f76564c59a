package router

import (
	"database/sql"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"gym_club_backend/internal/bridge"
	"gym_club_backend/internal/config"
	"gym_club_backend/internal/handlers"
	"gym_club_backend/internal/middleware"
	"gym_club_backend/internal/services"
	"gym_club_backend/pkg/utils"
)

// NewEngine returns a gin engine with the middleware chain and the health route.
func NewEngine(cfg *config.Config) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(utils.GinLogger())
	engine.Use(middleware.Recovery())
	engine.Use(middleware.LocalOnly())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.Server.AllowedOrigins
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader}
	corsCfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	engine.Use(cors.New(corsCfg))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return engine
}

// Setup wires repositories, services and handlers and registers every route.
func Setup(engine *gin.Engine, db *sql.DB, cfg *config.Config) (*services.Container, error) {
	svc, err := services.NewContainer(db, services.Paths{
		ExportDir: cfg.Storage.ExportDir,
		PhotoDir:  cfg.Storage.PhotoDir,
		BackupDir: cfg.Storage.BackupDir,
	}, nil)
	if err != nil {
		return nil, err
	}
	Register(engine, svc)
	return svc, nil
}

// Register mounts the REST routes and the bridge over an existing container.
func Register(engine *gin.Engine, svc *services.Container) {
	memberHandler := handlers.NewMemberHandler(svc.Members, svc.Photos, svc.Lookup, svc.Clock)
	visitorHandler := handlers.NewVisitorHandler(svc.Visitors)
	ptHandler := handlers.NewPTClientHandler(svc.PTClients)
	ancillaryHandler := handlers.NewAncillaryHandler(svc.Ancillary)
	reportHandler := handlers.NewReportHandler(svc.Dashboard, svc.Export)
	settingsHandler := handlers.NewSettingsHandler(svc.Settings, svc.Backup)
	bridgeHandler := handlers.NewBridgeHandler(bridge.NewDispatcher(bridge.Services{
		Members:   svc.Members,
		Visitors:  svc.Visitors,
		PTClients: svc.PTClients,
		Ancillary: svc.Ancillary,
		Dashboard: svc.Dashboard,
		Export:    svc.Export,
		Settings:  svc.Settings,
		Backup:    svc.Backup,
		Lookup:    svc.Lookup,
		Clock:     svc.Clock,
	}))

	apiV1 := engine.Group("/api/v1")
	{
		SetupMemberRoutes(apiV1, memberHandler)
		SetupVisitorRoutes(apiV1, visitorHandler)
		SetupPTClientRoutes(apiV1, ptHandler)
		SetupServiceRoutes(apiV1, ancillaryHandler)
		SetupReportRoutes(apiV1, reportHandler)
		SetupSettingsRoutes(apiV1, settingsHandler)
		SetupBridgeRoutes(apiV1, bridgeHandler)
	}
}
