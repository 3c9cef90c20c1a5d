//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"nightlife-feedback/internal/handler/api"
	"nightlife-feedback/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type heartbeatRecorder struct {
	calls map[string]bool
}

func (r *heartbeatRecorder) Heartbeat(userID string, focused bool) {
	r.calls[userID] = focused
}

func TestPresenceHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := &heartbeatRecorder{calls: map[string]bool{}}
	router := gin.New()
	router.PUT("/api/presence", func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Next()
	}, api.NewPresenceHandler(rec).Heartbeat)

	t.Run("records focus", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodPut, "/api/presence", map[string]any{"focused": true}, "bearer-token")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.True(t, rec.calls[testUserID])
	})

	t.Run("records blur", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodPut, "/api/presence", map[string]any{"focused": false}, "bearer-token")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.False(t, rec.calls[testUserID])
	})

	t.Run("focused is required", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodPut, "/api/presence", map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	})
}
