package api

import (
	"net/http"
	"strconv"

	"nightlife-feedback/internal/domain/feedback"
	reqdto "nightlife-feedback/internal/handler/dto/request"
	resdto "nightlife-feedback/internal/handler/dto/response"
	"nightlife-feedback/internal/handler/httperr"
	"nightlife-feedback/internal/handler/middleware"
	"nightlife-feedback/internal/usecase/commands"
	"nightlife-feedback/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FeedbackHandler struct {
	scheduler commands.FeedbackScheduler
	requests  queries.FeedbackRequestQueries
	history   queries.HistoryQueries
}

func NewFeedbackHandler(scheduler commands.FeedbackScheduler, requests queries.FeedbackRequestQueries, history queries.HistoryQueries) *FeedbackHandler {
	return &FeedbackHandler{scheduler: scheduler, requests: requests, history: history}
}

// @Summary Schedule feedback request
// @Description Confirm attendance and schedule the post-event rating prompt
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScheduleFeedbackRequest true "Attended event"
// @Success 201 {object} resdto.FeedbackRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/feedback/requests [post]
func (h *FeedbackHandler) Schedule(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ScheduleFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	created, err := h.scheduler.Schedule(c.Request.Context(), req.ToDomain(userID))
	if err != nil {
		httperr.Abort(c, err, "Schedule feedback failed")
		return
	}
	c.Header("Location", "/api/feedback/requests/"+created.ID().String())
	c.JSON(http.StatusCreated, resdto.FromFeedbackRequestRM(queries.ToFeedbackRequestRM(created)))
}

// @Summary List active feedback requests
// @Description Pending and surfaced prompts of the caller, soonest first
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param status query string false "scheduled or prompted"
// @Success 200 {array} resdto.FeedbackRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/feedback/requests [get]
func (h *FeedbackHandler) ListActive(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var status *feedback.Status
	if v := c.Query("status"); v != "" {
		s, err := feedback.ParseStatus(v)
		if err != nil || !s.IsActive() {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter", nil)
			return
		}
		status = &s
	}
	items := h.requests.ListActiveByUser(userID, status)
	c.JSON(http.StatusOK, gin.H{"requests": resdto.FromFeedbackRequestList(items)})
}

// @Summary Submit feedback
// @Description Rate a surfaced prompt. A failed photo upload keeps the rating.
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Feedback request ID"
// @Param request body reqdto.SubmitFeedbackRequest true "Ratings, comment, tags and optional photo"
// @Success 200 {object} resdto.SubmitFeedbackResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/feedback/requests/{id}/submit [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	id, ok := h.ownedRequest(c)
	if !ok {
		return
	}
	var req reqdto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.scheduler.RespondSubmit(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		httperr.Abort(c, err, "Submit feedback failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubmitResult(result))
}

// @Summary Dismiss feedback prompt
// @Description Postpone the prompt by a day, or expire it once attempts are used up
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param id path string true "Feedback request ID"
// @Success 200 {object} resdto.DismissFeedbackResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/feedback/requests/{id}/dismiss [post]
func (h *FeedbackHandler) Dismiss(c *gin.Context) {
	id, ok := h.ownedRequest(c)
	if !ok {
		return
	}
	tr, err := h.scheduler.RespondDismiss(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Dismiss feedback failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransition(id, tr))
}

// @Summary Feedback history
// @Description Submitted ratings of the caller, newest first, keyset paginated
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.FeedbackRecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/feedback/history [get]
func (h *FeedbackHandler) History(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.history.ListByUser(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to list feedback history")
		return
	}
	resp := gin.H{"records": resdto.FromFeedbackRecordList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// ownedRequest resolves the :id param and answers 404 for requests of other users.
func (h *FeedbackHandler) ownedRequest(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	if _, err := h.requests.GetForUser(id, userID); err != nil {
		httperr.Abort(c, err, "Feedback request not found")
		return uuid.Nil, false
	}
	return id, true
}
