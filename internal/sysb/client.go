package sysb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sahlen/vinkallaren/constants"
)

const (
	// DefaultBaseURL is Systembolaget's public product API.
	DefaultBaseURL = "https://api.systembolaget.se/api"

	DefaultPageSize = 10
)

type Config struct {
	BaseURL string
	APIKey  string // subscription key; empty disables the client
	Timeout time.Duration
}

type Client struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, client *http.Client, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{cfg: cfg, client: client, logger: logger}
}

// IsConfigured reports whether a subscription key is present.
func (c *Client) IsConfigured() bool {
	return c.cfg.APIKey != ""
}

// Search queries the catalog by free text. Page numbering starts at 1.
func (c *Client) Search(ctx context.Context, query string, page, pageSize int) (*SearchResponse, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("systembolaget client not configured: missing API key")
	}
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query is required")
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/products/search"
	q := url.Values{}
	q.Set("q", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)

	reqID := uuid.NewString()
	start := time.Now()
	c.logger.Debug("systembolaget search", "req_id", reqID, "query", query, "page", page)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("systembolaget request failed", "req_id", reqID, "error", err)
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("systembolaget returned error",
			"req_id", reqID, "status", resp.StatusCode, "elapsed", time.Since(start))
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var out SearchResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.logger.Info("systembolaget search finished",
		"req_id", reqID, "query", query, "hits", out.TotalCount, "elapsed", time.Since(start))
	return &out, nil
}

// WineTypeFor maps a product's category levels onto a WineType. Level 2
// carries the Systembolaget style name ("Rött vin", "Mousserande vin");
// level 3 is tried as a fallback.
func WineTypeFor(p Product) (constants.WineType, bool) {
	for _, level := range []*string{p.CategoryLevel2, p.CategoryLevel3} {
		if level == nil {
			continue
		}
		if wt, ok := constants.CanonicalizeWineType(*level); ok {
			return wt, true
		}
	}
	return constants.Unknown, false
}

// BestMatch scores products against the extracted name, producer, and
// vintage and returns the closest one, or nil when nothing overlaps.
func BestMatch(resp *SearchResponse, name, producer string, vintage *int) *Product {
	if resp == nil || len(resp.Products) == 0 {
		return nil
	}
	nameLower := strings.ToLower(name)
	producerLower := strings.ToLower(producer)

	var best *Product
	bestScore := 0
	for i := range resp.Products {
		p := &resp.Products[i]
		score := 0
		if nameLower != "" && strings.Contains(strings.ToLower(p.ProductName), nameLower) {
			score += 2
		}
		if producerLower != "" && strings.Contains(strings.ToLower(p.ProducerName), producerLower) {
			score += 2
		}
		if vintage != nil && p.Vintage != nil && *p.Vintage == *vintage {
			score++
		}
		if score > bestScore {
			bestScore = score
			best = p
		}
	}
	return best
}
