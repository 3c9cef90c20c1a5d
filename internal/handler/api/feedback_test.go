//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	domfeedback "nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/handler/api"
	resdto "nightlife-feedback/internal/handler/dto/response"
	"nightlife-feedback/internal/infra/gateway"
	"nightlife-feedback/internal/usecase/commands"
	"nightlife-feedback/internal/usecase/queries"
	"nightlife-feedback/internal/usecase/readmodel"
	"nightlife-feedback/internal/usecase/shared"
	"nightlife-feedback/tests/common/builder"
	"nightlife-feedback/tests/common/httptest"
	"nightlife-feedback/tests/common/testutil"
	commandsmock "nightlife-feedback/tests/mock/commands"
	queriesmock "nightlife-feedback/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUserID = "user-1"

type FeedbackHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockSched   *commandsmock.MockFeedbackScheduler
	mockReqs    *queriesmock.MockFeedbackRequestQueries
	mockHistory *queriesmock.MockHistoryQueries
	handler     *api.FeedbackHandler
}

func (s *FeedbackHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSched = commandsmock.NewMockFeedbackScheduler(s.mockCtrl)
	s.mockReqs = queriesmock.NewMockFeedbackRequestQueries(s.mockCtrl)
	s.mockHistory = queriesmock.NewMockHistoryQueries(s.mockCtrl)
	s.handler = api.NewFeedbackHandler(s.mockSched, s.mockReqs, s.mockHistory)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", testUserID)
		c.Next()
	}

	s.router.POST("/api/feedback/requests", authMiddleware, s.handler.Schedule)
	s.router.GET("/api/feedback/requests", authMiddleware, s.handler.ListActive)
	s.router.POST("/api/feedback/requests/:id/submit", authMiddleware, s.handler.Submit)
	s.router.POST("/api/feedback/requests/:id/dismiss", authMiddleware, s.handler.Dismiss)
	s.router.GET("/api/feedback/history", authMiddleware, s.handler.History)
}

func (s *FeedbackHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFeedbackHandlerSuite(t *testing.T) {
	suite.Run(t, new(FeedbackHandlerTestSuite))
}

type testCaseFeedback struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestSchedule
// ================================================================================

func (s *FeedbackHandlerTestSuite) TestSchedule() {
	url := "/api/feedback/requests"
	reqBody := map[string]any{
		"eventId":    "evt-warehouse-rave",
		"eventTitle": "Warehouse Rave",
		"eventDate":  builder.DefaultEventEnd.Format(time.RFC3339),
	}

	s.Run("success: 201 with the prompt time", func() {
		created := builder.NewFeedbackRequestBuilder().BuildDomain()
		s.mockSched.EXPECT().Schedule(gomock.Any(), domfeedback.ScheduleInput{
			EventID:    "evt-warehouse-rave",
			EventTitle: "Warehouse Rave",
			EventDate:  builder.DefaultEventEnd,
			UserID:     testUserID,
		}).Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.FeedbackRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal("scheduled", body.Status)
		s.True(builder.DefaultEventEnd.Add(12 * time.Hour).Equal(body.PromptTime))
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": url + "/" + created.ID().String()})
	})

	cases := []testCaseFeedback{
		{name: "missing eventId", mutate: testutil.Field("eventId", nil), expectCode: http.StatusBadRequest},
		{name: "missing eventDate", mutate: testutil.Field("eventDate", nil), expectCode: http.StatusBadRequest},
		{name: "malformed eventDate", mutate: testutil.Field("eventDate", "tomorrow"), expectCode: http.StatusBadRequest},
		{name: "eventId too long", mutate: testutil.Field("eventId", strings.Repeat("e", 129)), expectCode: http.StatusBadRequest},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
		})
	}

	s.Run("error: domain validation maps to 400", func() {
		s.mockSched.EXPECT().Schedule(gomock.Any(), gomock.Any()).Return(nil, domfeedback.ErrEventRequired)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("eventId", "   "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Schedule feedback failed")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestListActive
// ================================================================================

func (s *FeedbackHandlerTestSuite) TestListActive() {
	url := "/api/feedback/requests"
	rm := queries.ToFeedbackRequestRM(builder.NewFeedbackRequestBuilder().WithStatus(domfeedback.StatusPrompted).BuildDomain())

	s.Run("success: without filter", func() {
		s.mockReqs.EXPECT().ListActiveByUser(testUserID, (*domfeedback.Status)(nil)).
			Return([]*readmodel.FeedbackRequestRM{rm})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body struct {
			Requests []resdto.FeedbackRequestResponse `json:"requests"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Requests, 1)
		s.Equal(rm.ID, body.Requests[0].ID)
	})

	s.Run("success: status filter", func() {
		prompted := domfeedback.StatusPrompted
		s.mockReqs.EXPECT().ListActiveByUser(testUserID, &prompted).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=prompted", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"requests":[]}`, rec.Body.String())
	})

	s.Run("error: terminal status is not a valid filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=submitted", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status filter")
	})

	s.Run("error: unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=nope", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status filter")
	})
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *FeedbackHandlerTestSuite) TestSubmit() {
	id := uuid.New()
	url := "/api/feedback/requests/" + id.String() + "/submit"
	reqBody := builder.NewSubmissionBuilder().BuildRequestDTO()
	owned := &readmodel.FeedbackRequestRM{ID: id, UserID: testUserID, Status: "prompted"}
	result := &commands.SubmitResult{
		Record: domfeedback.FeedbackRecord{RequestID: id, OverallRating: 5},
		Ack:    &shared.SubmissionAck{ID: "fb-1", Status: "received"},
	}

	s.Run("success: 200 with the ack", func() {
		s.mockReqs.EXPECT().GetForUser(id, testUserID).Return(owned, nil)
		s.mockSched.EXPECT().RespondSubmit(gomock.Any(), id, reqBody.ToDomain()).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.SubmitFeedbackResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.RequestID)
		s.Equal("submitted", body.Status)
		s.Equal("fb-1", body.AckID)
		s.Empty(body.PhotoError)
	})

	s.Run("success: photo failure is reported but the rating stands", func() {
		withPhoto := builder.NewSubmissionBuilder().With(func(b *builder.SubmissionBuilder) {
			b.Photo = &domfeedback.Photo{Data: []byte("\x89PNG\r\n\x1a\n"), ContentType: "image/png", Filename: "x.png"}
		}).BuildRequestDTO()
		photoResult := *result
		photoResult.PhotoErr = &gateway.TransportError{Op: gateway.ErrPhotoUploadFailed, StatusCode: 500}

		s.mockReqs.EXPECT().GetForUser(id, testUserID).Return(owned, nil)
		s.mockSched.EXPECT().RespondSubmit(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in domfeedback.SubmissionInput) (*commands.SubmitResult, error) {
				s.Require().NotNil(in.Photo)
				s.Equal("image/png", in.Photo.ContentType)
				return &photoResult, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, withPhoto, "bearer-token")

		var body resdto.SubmitFeedbackResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.PhotoUploaded)
		s.NotEmpty(body.PhotoError)
	})

	s.Run("error: category rating out of range is rejected before the scheduler", func() {
		s.mockReqs.EXPECT().GetForUser(id, testUserID).Return(owned, nil)
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("ratings", map[string]int{"music": 6}))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	errCases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"nothing to submit", domfeedback.ErrNothingToSubmit, http.StatusBadRequest, "Submit feedback failed"},
		{"not prompted", domfeedback.ErrNotPrompted, http.StatusConflict, "Submit feedback failed"},
		{"in flight", commands.ErrSubmissionInProgress, http.StatusConflict, "Submit feedback failed"},
		{"transport", &gateway.TransportError{Op: gateway.ErrSubmissionFailed, StatusCode: 503}, http.StatusBadGateway, "Submit feedback failed"},
		{"retired meanwhile", commands.ErrRequestNotFound, http.StatusNotFound, "Submit feedback failed"},
	}
	for _, tc := range errCases {
		s.Run("error: "+tc.name, func() {
			s.mockReqs.EXPECT().GetForUser(id, testUserID).Return(owned, nil)
			s.mockSched.EXPECT().RespondSubmit(gomock.Any(), id, gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.code, tc.message)
		})
	}

	s.Run("error: transport failure is flagged retryable", func() {
		s.mockReqs.EXPECT().GetForUser(id, testUserID).Return(owned, nil)
		s.mockSched.EXPECT().RespondSubmit(gomock.Any(), id, gomock.Any()).
			Return(nil, &gateway.TransportError{Op: gateway.ErrSubmissionFailed, StatusCode: 503})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertRetryable(s.T(), rec, true)
	})

	s.Run("error: another user's request is 404", func() {
		s.mockReqs.EXPECT().GetForUser(id, testUserID).Return(nil, queries.ErrRequestAccess)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Feedback request not found")
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/feedback/requests/not-a-uuid/submit", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestDismiss
// ================================================================================

func (s *FeedbackHandlerTestSuite) TestDismiss() {
	id := uuid.New()
	url := "/api/feedback/requests/" + id.String() + "/dismiss"
	owned := &readmodel.FeedbackRequestRM{ID: id, UserID: testUserID}

	s.Run("success: rescheduled", func() {
		s.mockReqs.EXPECT().GetForUser(id, testUserID).Return(owned, nil)
		s.mockSched.EXPECT().RespondDismiss(gomock.Any(), id).Return(domfeedback.TransitionRescheduled, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.DismissFeedbackResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("rescheduled", body.Outcome)
	})

	s.Run("success: expired at the last attempt", func() {
		s.mockReqs.EXPECT().GetForUser(id, testUserID).Return(owned, nil)
		s.mockSched.EXPECT().RespondDismiss(gomock.Any(), id).Return(domfeedback.TransitionExpired, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.DismissFeedbackResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("expired", body.Outcome)
	})

	s.Run("error: not yet prompted is 409", func() {
		s.mockReqs.EXPECT().GetForUser(id, testUserID).Return(owned, nil)
		s.mockSched.EXPECT().RespondDismiss(gomock.Any(), id).Return(domfeedback.TransitionNone, domfeedback.ErrNotPrompted)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Dismiss feedback failed")
	})

	s.Run("error: unknown request is 404", func() {
		s.mockReqs.EXPECT().GetForUser(id, testUserID).Return(nil, commands.ErrRequestNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestHistory
// ================================================================================

func (s *FeedbackHandlerTestSuite) TestHistory() {
	url := "/api/feedback/history"
	rec1 := &readmodel.FeedbackRecordRM{
		RequestID:     uuid.New(),
		EventID:       "evt-1",
		UserID:        testUserID,
		Ratings:       map[string]int{"music": 5},
		OverallRating: 5,
		Tags:          []string{"techno"},
		SubmittedAt:   builder.DefaultEventEnd.Add(13 * time.Hour),
	}

	s.Run("success: first page with next cursor", func() {
		next := &queries.Cursor{After: "abc"}
		s.mockHistory.EXPECT().ListByUser(gomock.Any(), testUserID, (*queries.Cursor)(nil), 5).
			Return([]*readmodel.FeedbackRecordRM{rec1}, next, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5", nil, "bearer-token")

		var body struct {
			Records    []resdto.FeedbackRecordResponse `json:"records"`
			NextCursor string                          `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Records, 1)
		s.Equal(rec1.RequestID, body.Records[0].RequestID)
		s.Equal(map[string]int{"music": 5}, body.Records[0].Ratings)
		s.Equal("abc", body.NextCursor)
	})

	s.Run("success: cursor is passed through", func() {
		s.mockHistory.EXPECT().ListByUser(gomock.Any(), testUserID, &queries.Cursor{After: "xyz"}, queries.DefaultListLimit).
			Return(nil, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=xyz", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.NotContains(rec.Body.String(), "next_cursor")
	})

	s.Run("error: invalid cursor is 400", func() {
		s.mockHistory.EXPECT().ListByUser(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=broken", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
