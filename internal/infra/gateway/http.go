package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/pkg/config"
	"nightlife-feedback/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxErrorBody = 512

// HTTPGateway posts ratings and photos to the platform's feedback endpoints.
// It never resends a request on its own.
type HTTPGateway struct {
	submitURL string
	photoURL  string
	client    *http.Client
	logger    *slog.Logger
}

func NewHTTPGateway(cfg config.GatewayConfig, logger *slog.Logger) *HTTPGateway {
	return NewHTTPGatewayWithClient(cfg, &http.Client{Timeout: cfg.Timeout}, logger)
}

func NewHTTPGatewayWithClient(cfg config.GatewayConfig, client *http.Client, logger *slog.Logger) *HTTPGateway {
	return &HTTPGateway{
		submitURL: cfg.SubmitURL,
		photoURL:  cfg.PhotoURL,
		client:    client,
		logger:    logger.With(slog.String("component", "submission_gateway")),
	}
}

func (g *HTTPGateway) Submit(ctx context.Context, payload shared.SubmissionPayload) (*shared.SubmissionAck, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.submitURL, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Op: ErrSubmissionFailed, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: ErrSubmissionFailed, Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, ErrSubmissionFailed); err != nil {
		return nil, err
	}

	var ack shared.SubmissionAck
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: ErrSubmissionFailed, StatusCode: resp.StatusCode, Err: err}
	}
	// An empty 2xx body still confirms the rating.
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &ack); err != nil {
			g.logger.Warn("unreadable submission ack", slog.String("request_id", payload.RequestID.String()), slog.String("error", err.Error()))
		}
	}

	g.logger.Debug("feedback submitted",
		slog.String("request_id", payload.RequestID.String()),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)))
	return &ack, nil
}

func (g *HTTPGateway) UploadPhoto(ctx context.Context, requestID uuid.UUID, photo feedback.Photo) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("requestId", requestID.String()); err != nil {
		return fmt.Errorf("write multipart field: %w", err)
	}

	filename := photo.Filename
	if filename == "" {
		filename = requestID.String()
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photo"; filename="%s"`, escapeQuotes(filename)))
	h.Set("Content-Type", photo.ContentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create multipart part: %w", err)
	}
	if _, err := part.Write(photo.Data); err != nil {
		return fmt.Errorf("write photo: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.photoURL, &buf)
	if err != nil {
		return &TransportError{Op: ErrPhotoUploadFailed, Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := g.client.Do(req)
	if err != nil {
		return &TransportError{Op: ErrPhotoUploadFailed, Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, ErrPhotoUploadFailed); err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	g.logger.Debug("feedback photo uploaded",
		slog.String("request_id", requestID.String()),
		slog.Int("bytes", len(photo.Data)))
	return nil
}

func checkStatus(resp *http.Response, op error) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &TransportError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
