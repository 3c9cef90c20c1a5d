package api

import (
	"net/http"

	reqdto "nightlife-feedback/internal/handler/dto/request"
	"nightlife-feedback/internal/handler/httperr"
	"nightlife-feedback/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

type PresenceRecorder interface {
	Heartbeat(userID string, focused bool)
}

type PresenceHandler struct {
	presence PresenceRecorder
}

func NewPresenceHandler(presence PresenceRecorder) *PresenceHandler {
	return &PresenceHandler{presence: presence}
}

// @Summary Focus heartbeat
// @Description Report whether the app is in the foreground for the caller
// @Tags presence
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.PresenceRequest true "Focus state"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/presence [put]
func (h *PresenceHandler) Heartbeat(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.PresenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.presence.Heartbeat(userID, *req.Focused)
	c.Status(http.StatusNoContent)
}
