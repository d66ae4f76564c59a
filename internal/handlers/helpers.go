package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_club_backend/pkg/utils"
)

// pathID reads the :id parameter. On failure it has already responded.
func pathID(c *gin.Context, entity string) (int64, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid "+entity+" ID format", err.Error()))
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body and applies binding tags. On failure it has
// already responded.
func bindJSON(c *gin.Context, dst interface{}, action string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.LogError(err, action+": Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload", err.Error()))
		return false
	}
	return true
}

func internalError(c *gin.Context, message string) {
	utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, message, ""))
}
