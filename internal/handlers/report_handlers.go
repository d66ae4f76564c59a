package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_club_backend/internal/models"
	"gym_club_backend/internal/services"
	"gym_club_backend/pkg/utils"
)

// ReportHandler serves dashboard figures and spreadsheet exports.
type ReportHandler struct {
	dashboardService services.DashboardService
	exportService    services.ExportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(ds services.DashboardService, es services.ExportService) *ReportHandler {
	return &ReportHandler{dashboardService: ds, exportService: es}
}

// GetDashboardStats recomputes the dashboard aggregates.
func (h *ReportHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.dashboardService.GetDashboardStats()
	if err != nil {
		utils.LogError(err, "GetDashboardStats: Error from dashboardService")
		internalError(c, "Failed to load dashboard stats")
		return
	}
	utils.RespondWithData(c, http.StatusOK, stats)
}

func respondExport(c *gin.Context, res *models.ExportResult, err error, action string) {
	if err != nil {
		utils.LogError(err, action)
		if errors.Is(err, services.ErrExportValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid export filter", err.Error()))
		} else {
			internalError(c, "Failed to "+action)
		}
		return
	}
	utils.RespondWithData(c, http.StatusOK, res)
}

// bindFilter accepts an empty body as "no filters".
func bindFilter(c *gin.Context, dst interface{}) bool {
	if c.Request.Body == nil || c.Request.Body == http.NoBody || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		utils.LogError(err, "export filter: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload", err.Error()))
		return false
	}
	return true
}

// ExportMembers writes the filtered member list to a spreadsheet.
func (h *ReportHandler) ExportMembers(c *gin.Context) {
	var filter models.MemberExportFilter
	if !bindFilter(c, &filter) {
		return
	}
	res, err := h.exportService.ExportMembers(filter)
	respondExport(c, res, err, "export members")
}

// ExportVisitors writes the filtered visitor log to a spreadsheet.
func (h *ReportHandler) ExportVisitors(c *gin.Context) {
	var filter models.VisitorExportFilter
	if !bindFilter(c, &filter) {
		return
	}
	res, err := h.exportService.ExportVisitors(filter)
	respondExport(c, res, err, "export visitors")
}

// ExportFinancialReport writes the multi-sheet financial report.
func (h *ReportHandler) ExportFinancialReport(c *gin.Context) {
	var filter models.FinancialReportFilter
	if !bindFilter(c, &filter) {
		return
	}
	res, err := h.exportService.ExportFinancialReport(filter)
	respondExport(c, res, err, "export financial report")
}
