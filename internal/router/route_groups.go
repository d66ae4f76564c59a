package router

import (
	"github.com/gin-gonic/gin"

	"gym_club_backend/internal/handlers"
)

// SetupMemberRoutes sets up the member routes.
func SetupMemberRoutes(api *gin.RouterGroup, h *handlers.MemberHandler) {
	memberRoutes := api.Group("/members")
	{
		memberRoutes.POST("", h.CreateMember)
		memberRoutes.GET("", h.GetMembers)
		memberRoutes.GET("/next-id", h.NextMemberCode)
		memberRoutes.GET("/lookup", h.LookupMember)
		memberRoutes.GET("/:id", h.GetMemberByID)
		memberRoutes.PUT("/:id", h.UpdateMember)
		memberRoutes.DELETE("/:id", h.DeleteMember)
		memberRoutes.POST("/:id/photo", h.UploadPhoto)
	}
}

// SetupVisitorRoutes sets up the visitor log routes.
func SetupVisitorRoutes(api *gin.RouterGroup, h *handlers.VisitorHandler) {
	visitorRoutes := api.Group("/visitors")
	{
		visitorRoutes.POST("", h.AddVisitor)
		visitorRoutes.GET("", h.GetVisitors)
		visitorRoutes.DELETE("/:id", h.DeleteVisitor)
	}
}

// SetupPTClientRoutes sets up the personal-training routes.
func SetupPTClientRoutes(api *gin.RouterGroup, h *handlers.PTClientHandler) {
	ptRoutes := api.Group("/pt-clients")
	{
		ptRoutes.POST("", h.AddPTClient)
		ptRoutes.GET("", h.GetPTClients)
		ptRoutes.DELETE("/:id", h.DeletePTClient)
		ptRoutes.PATCH("/:id/sessions", h.UpdateSessions)
	}
}

// SetupServiceRoutes sets up the InBody and Day-Use routes.
func SetupServiceRoutes(api *gin.RouterGroup, h *handlers.AncillaryHandler) {
	serviceRoutes := api.Group("/services/:kind")
	{
		serviceRoutes.POST("", h.AddService)
		serviceRoutes.GET("", h.GetServices)
		serviceRoutes.DELETE("/:id", h.DeleteService)
	}
}

// SetupReportRoutes sets up the dashboard and export routes.
func SetupReportRoutes(api *gin.RouterGroup, h *handlers.ReportHandler) {
	api.GET("/dashboard/stats", h.GetDashboardStats)
	exportRoutes := api.Group("/exports")
	{
		exportRoutes.POST("/members", h.ExportMembers)
		exportRoutes.POST("/visitors", h.ExportVisitors)
		exportRoutes.POST("/financial", h.ExportFinancialReport)
	}
}

// SetupSettingsRoutes sets up the settings and backup routes.
func SetupSettingsRoutes(api *gin.RouterGroup, h *handlers.SettingsHandler) {
	api.GET("/settings", h.GetSettings)
	api.PUT("/settings", h.SaveSetting)
	api.GET("/backups", h.ListBackups)
	api.POST("/backups", h.CreateBackup)
}

// SetupBridgeRoutes sets up the named-operation endpoint.
func SetupBridgeRoutes(api *gin.RouterGroup, h *handlers.BridgeHandler) {
	api.GET("/invoke", h.Operations)
	api.POST("/invoke/:operation", h.Invoke)
}
