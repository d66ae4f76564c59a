package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_club_backend/internal/models"
	"gym_club_backend/internal/services"
	"gym_club_backend/pkg/utils"
)

// AncillaryHandler serves InBody and Day-Use records under /services/:kind.
type AncillaryHandler struct {
	ancillaryService services.AncillaryService
}

// NewAncillaryHandler creates a new AncillaryHandler.
func NewAncillaryHandler(as services.AncillaryService) *AncillaryHandler {
	return &AncillaryHandler{ancillaryService: as}
}

func respondServiceError(c *gin.Context, err error, action string) {
	utils.LogError(err, action)
	switch {
	case errors.Is(err, services.ErrUnknownServiceKind), errors.Is(err, services.ErrServiceNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Service record not found", err.Error()))
	case errors.Is(err, services.ErrServiceValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed", err.Error()))
	default:
		internalError(c, "Failed to "+action)
	}
}

// AddService bills one service of the path's kind.
func (h *AncillaryHandler) AddService(c *gin.Context) {
	kind := c.Param("kind")
	var req services.AncillaryRequest
	if !bindJSON(c, &req, "AddService") {
		return
	}
	record, err := h.ancillaryService.AddService(kind, req)
	if err != nil {
		respondServiceError(c, err, "add "+kind+" service")
		return
	}
	utils.RespondWithData(c, http.StatusCreated, record)
}

// GetServices lists the records of the path's kind.
func (h *AncillaryHandler) GetServices(c *gin.Context) {
	kind := c.Param("kind")
	records, err := h.ancillaryService.GetServices(kind)
	if err != nil {
		respondServiceError(c, err, "load "+kind+" services")
		return
	}
	if records == nil {
		records = []models.AncillaryService{}
	}
	utils.RespondWithData(c, http.StatusOK, records)
}

// DeleteService removes one record of the path's kind.
func (h *AncillaryHandler) DeleteService(c *gin.Context) {
	kind := c.Param("kind")
	id, ok := pathID(c, "service")
	if !ok {
		return
	}
	if err := h.ancillaryService.DeleteService(kind, id); err != nil {
		respondServiceError(c, err, "delete "+kind+" service")
		return
	}
	utils.RespondWithData(c, http.StatusOK, gin.H{"id": id})
}
