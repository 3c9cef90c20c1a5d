//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domfeedback "nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/infra/gateway"
	"nightlife-feedback/internal/pkg/config"
	"nightlife-feedback/internal/pkg/errs"
	"nightlife-feedback/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, h http.Handler) *gateway.HTTPGateway {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	cfg := config.GatewayConfig{
		SubmitURL: srv.URL + "/feedback",
		PhotoURL:  srv.URL + "/feedback/photo",
		Timeout:   time.Second,
	}
	return gateway.NewHTTPGateway(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func payload() shared.SubmissionPayload {
	return shared.SubmissionPayload{
		RequestID:     uuid.New(),
		EventID:       "evt-1",
		UserID:        "user-1",
		Timestamp:     time.Date(2025, 6, 14, 16, 0, 0, 0, time.UTC),
		Ratings:       map[string]int{"music": 5},
		OverallRating: 5,
		Comment:       "great",
		Tags:          []string{},
	}
}

func TestHTTPGateway_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the payload and returns the ack", func(t *testing.T) {
		var got map[string]any
		g := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/feedback", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"fb-1","status":"received"}`))
		}))

		p := payload()
		ack, err := g.Submit(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, &shared.SubmissionAck{ID: "fb-1", Status: "received"}, ack)
		assert.Equal(t, p.RequestID.String(), got["requestId"])
		assert.Equal(t, "evt-1", got["eventId"])
		assert.Equal(t, float64(5), got["overallRating"])
		assert.Equal(t, "2025-06-14T16:00:00Z", got["timestamp"])
	})

	t.Run("empty 2xx body is a success", func(t *testing.T) {
		g := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		ack, err := g.Submit(ctx, payload())
		require.NoError(t, err)
		assert.NotNil(t, ack)
	})

	t.Run("nothing to submit never reaches the network", func(t *testing.T) {
		called := false
		g := newGateway(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

		p := payload()
		p.Ratings = map[string]int{}
		p.OverallRating = 0
		p.Comment = "  "
		_, err := g.Submit(ctx, p)
		assert.ErrorIs(t, err, domfeedback.ErrNothingToSubmit)
		assert.False(t, called)
	})

	t.Run("non-2xx is a typed transport error", func(t *testing.T) {
		g := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "upstream down", http.StatusServiceUnavailable)
		}))

		_, err := g.Submit(ctx, payload())
		require.Error(t, err)
		assert.ErrorIs(t, err, gateway.ErrSubmissionFailed)
		assert.NotErrorIs(t, err, gateway.ErrPhotoUploadFailed)
		assert.True(t, errs.Is(err, errs.ErrTransport))

		var te *gateway.TransportError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, http.StatusServiceUnavailable, te.StatusCode)
		assert.Equal(t, "upstream down", te.Body)
		assert.True(t, te.Retryable())
	})

	t.Run("client error is not retryable", func(t *testing.T) {
		g := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))

		_, err := g.Submit(ctx, payload())
		var te *gateway.TransportError
		require.True(t, errors.As(err, &te))
		assert.False(t, te.Retryable())
	})

	t.Run("network failure", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		g := gateway.NewHTTPGateway(config.GatewayConfig{SubmitURL: url, PhotoURL: url, Timeout: time.Second},
			slog.New(slog.NewTextHandler(io.Discard, nil)))

		_, err := g.Submit(ctx, payload())
		assert.ErrorIs(t, err, gateway.ErrSubmissionFailed)
		var te *gateway.TransportError
		require.True(t, errors.As(err, &te))
		assert.Zero(t, te.StatusCode)
		assert.True(t, te.Retryable())
	})
}

func TestHTTPGateway_UploadPhoto(t *testing.T) {
	ctx := context.Background()
	photo := domfeedback.Photo{Data: []byte("\x89PNG fake"), ContentType: "image/png", Filename: "floor.png"}

	t.Run("sends a multipart form", func(t *testing.T) {
		id := uuid.New()
		g := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/feedback/photo", r.URL.Path)
			assert.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, id.String(), r.FormValue("requestId"))

			f, hdr, err := r.FormFile("photo")
			if !assert.NoError(t, err) {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			defer f.Close()
			data, _ := io.ReadAll(f)
			assert.Equal(t, photo.Data, data)
			assert.Equal(t, "floor.png", hdr.Filename)
			assert.Equal(t, "image/png", hdr.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusOK)
		}))

		require.NoError(t, g.UploadPhoto(ctx, id, photo))
	})

	t.Run("failure is typed as a photo upload error", func(t *testing.T) {
		g := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
		}))

		err := g.UploadPhoto(ctx, uuid.New(), photo)
		assert.ErrorIs(t, err, gateway.ErrPhotoUploadFailed)
		assert.NotErrorIs(t, err, gateway.ErrSubmissionFailed)
	})
}
