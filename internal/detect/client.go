// Package detect calls the remote wine-label localization API. Detection
// is advisory: any failure here degrades to "no detection" and the scan
// proceeds on the uncropped image.
package detect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sahlen/vinkallaren/internal/common"
)

// ConfidenceThreshold is the minimum prediction confidence a detection
// must reach to be used for cropping.
const ConfidenceThreshold = 0.5

type Config struct {
	BaseURL string // e.g. https://detect.roboflow.com
	Model   string // e.g. wine-label/1
	APIKey  string // empty -> detection disabled
	Timeout time.Duration
}

type Client struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, client *http.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Client{cfg: cfg, client: client, logger: logger}
}

// IsConfigured reports whether an API key is set. Without one every
// Detect call returns an error that the pipeline absorbs.
func (c *Client) IsConfigured() bool {
	return strings.TrimSpace(c.cfg.APIKey) != ""
}

// Detect submits JPEG bytes as multipart form data and returns the raw
// detection response.
func (c *Client) Detect(ctx context.Context, imageJPEG []byte) (*LabelDetectionResponse, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("detection API key not configured")
	}

	reqID := uuid.New().String()
	start := time.Now()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "wine_label.jpg")
	if err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}
	if _, err := part.Write(imageJPEG); err != nil {
		return nil, fmt.Errorf("write multipart: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s?api_key=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"),
		strings.Trim(c.cfg.Model, "/"),
		url.QueryEscape(c.cfg.APIKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		c.logger.Error("detect.http.build_request_error", "req_id", reqID, "error", err)
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c.logger.Info("detect.http.request",
		"req_id", reqID,
		"scan_id", common.ScanIDFromContext(ctx),
		"model", c.cfg.Model,
		"content_length", body.Len(),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("detect.http.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}
	defer func(b io.ReadCloser) {
		if err := b.Close(); err != nil {
			c.logger.Warn("detect.http.response_body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	c.logger.Info("detect.http.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	var out LabelDetectionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

// BestPrediction returns the highest-confidence prediction at or above
// the threshold, or nil when nothing qualifies.
func BestPrediction(resp *LabelDetectionResponse) *Prediction {
	if resp == nil {
		return nil
	}
	var best *Prediction
	for i := range resp.Predictions {
		p := &resp.Predictions[i]
		if p.Confidence < ConfidenceThreshold {
			continue
		}
		if best == nil || p.Confidence > best.Confidence {
			best = p
		}
	}
	return best
}
