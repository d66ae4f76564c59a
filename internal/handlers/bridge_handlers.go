package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_club_backend/internal/bridge"
	"gym_club_backend/internal/models"
)

// maxPayloadBytes caps a single bridge payload.
const maxPayloadBytes = 1 << 20

// BridgeHandler forwards named operations to the dispatcher. Failures are
// reported in the result body with status 200; only transport problems are
// HTTP errors.
type BridgeHandler struct {
	dispatcher *bridge.Dispatcher
}

// NewBridgeHandler creates a new BridgeHandler.
func NewBridgeHandler(d *bridge.Dispatcher) *BridgeHandler {
	return &BridgeHandler{dispatcher: d}
}

// Invoke runs POST /invoke/:operation with the raw body as payload.
func (h *BridgeHandler) Invoke(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPayloadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("failed to read request body"))
		return
	}
	if len(payload) > maxPayloadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, models.Fail("request body too large"))
		return
	}
	c.JSON(http.StatusOK, h.dispatcher.Invoke(c.Request.Context(), c.Param("operation"), payload))
}

// Operations lists the catalog.
func (h *BridgeHandler) Operations(c *gin.Context) {
	c.JSON(http.StatusOK, models.OK(h.dispatcher.Operations()))
}
