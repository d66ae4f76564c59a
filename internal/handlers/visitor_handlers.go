package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_club_backend/internal/models"
	"gym_club_backend/internal/services"
	"gym_club_backend/pkg/utils"
)

// VisitorHandler serves the walk-in visitor log.
type VisitorHandler struct {
	visitorService services.VisitorService
}

// NewVisitorHandler creates a new VisitorHandler.
func NewVisitorHandler(vs services.VisitorService) *VisitorHandler {
	return &VisitorHandler{visitorService: vs}
}

// AddVisitor records a walk-in.
func (h *VisitorHandler) AddVisitor(c *gin.Context) {
	var req services.VisitorRequest
	if !bindJSON(c, &req, "AddVisitor") {
		return
	}
	visitor, err := h.visitorService.AddVisitor(req)
	if err != nil {
		utils.LogError(err, "AddVisitor: Error from visitorService.AddVisitor")
		if errors.Is(err, services.ErrVisitorValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed", err.Error()))
		} else {
			internalError(c, "Failed to add visitor")
		}
		return
	}
	utils.RespondWithData(c, http.StatusCreated, visitor)
}

// GetVisitors lists the visitor log, newest first.
func (h *VisitorHandler) GetVisitors(c *gin.Context) {
	visitors, err := h.visitorService.GetVisitors()
	if err != nil {
		utils.LogError(err, "GetVisitors: Error from visitorService.GetVisitors")
		internalError(c, "Failed to load visitors")
		return
	}
	if visitors == nil {
		visitors = []models.Visitor{}
	}
	utils.RespondWithData(c, http.StatusOK, visitors)
}

// DeleteVisitor removes a visitor entry.
func (h *VisitorHandler) DeleteVisitor(c *gin.Context) {
	id, ok := pathID(c, "visitor")
	if !ok {
		return
	}
	if err := h.visitorService.DeleteVisitor(id); err != nil {
		utils.LogError(err, "DeleteVisitor: Error from visitorService.DeleteVisitor")
		if errors.Is(err, services.ErrVisitorNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Visitor not found", ""))
		} else {
			internalError(c, "Failed to delete visitor")
		}
		return
	}
	utils.RespondWithData(c, http.StatusOK, gin.H{"id": id})
}
