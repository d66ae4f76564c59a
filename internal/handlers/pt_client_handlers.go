package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_club_backend/internal/models"
	"gym_club_backend/internal/services"
	"gym_club_backend/pkg/utils"
)

// PTClientHandler serves personal-training enrollments.
type PTClientHandler struct {
	ptService services.PTClientService
}

// NewPTClientHandler creates a new PTClientHandler.
func NewPTClientHandler(ps services.PTClientService) *PTClientHandler {
	return &PTClientHandler{ptService: ps}
}

func respondPTError(c *gin.Context, err error, action string) {
	utils.LogError(err, action)
	switch {
	case errors.Is(err, services.ErrPTClientNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "PT client not found", ""))
	case errors.Is(err, services.ErrPTClientValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed", err.Error()))
	default:
		internalError(c, "Failed to "+action)
	}
}

// AddPTClient enrolls a client in a session package.
func (h *PTClientHandler) AddPTClient(c *gin.Context) {
	var req services.PTClientRequest
	if !bindJSON(c, &req, "AddPTClient") {
		return
	}
	client, err := h.ptService.AddPTClient(req)
	if err != nil {
		respondPTError(c, err, "add PT client")
		return
	}
	utils.RespondWithData(c, http.StatusCreated, client)
}

// GetPTClients lists every enrollment.
func (h *PTClientHandler) GetPTClients(c *gin.Context) {
	clients, err := h.ptService.GetPTClients()
	if err != nil {
		respondPTError(c, err, "load PT clients")
		return
	}
	if clients == nil {
		clients = []models.PTClient{}
	}
	utils.RespondWithData(c, http.StatusOK, clients)
}

// UpdateSessions sets the completed session count.
func (h *PTClientHandler) UpdateSessions(c *gin.Context) {
	id, ok := pathID(c, "PT client")
	if !ok {
		return
	}
	var req services.SessionUpdateRequest
	if !bindJSON(c, &req, "UpdateSessions") {
		return
	}
	client, err := h.ptService.UpdateSessions(id, req.CompletedSessions)
	if err != nil {
		respondPTError(c, err, "update PT session")
		return
	}
	utils.RespondWithData(c, http.StatusOK, client)
}

// DeletePTClient removes an enrollment.
func (h *PTClientHandler) DeletePTClient(c *gin.Context) {
	id, ok := pathID(c, "PT client")
	if !ok {
		return
	}
	if err := h.ptService.DeletePTClient(id); err != nil {
		respondPTError(c, err, "delete PT client")
		return
	}
	utils.RespondWithData(c, http.StatusOK, gin.H{"id": id})
}
