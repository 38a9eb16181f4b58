// Package insight provides connectivity to the external narrative-analysis
// service that turns a dashboard snapshot into management commentary. The
// service is optional; when it is disabled or unreachable the dashboard
// falls back to a locally generated summary.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mitrasinergi/sales-api/internal/config"
	"github.com/mitrasinergi/sales-api/internal/domain"
	"go.uber.org/zap"
)

const maxResponseBytes = 64 * 1024

// Client calls the narrative-analysis endpoint. A nil *Client is a valid
// "disabled" client and every method on it degrades gracefully.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	logger     *zap.Logger
}

// NewClient builds a narrative-analysis client from configuration.
// Returns nil if the integration is not enabled or not configured.
func NewClient(cfg *config.InsightConfig, logger *zap.Logger) *Client {
	if cfg == nil || !cfg.Enabled {
		logger.Info("Insight integration disabled")
		return nil
	}
	if cfg.Endpoint == "" {
		logger.Warn("Insight integration enabled but no endpoint configured, skipping")
		return nil
	}

	logger.Info("Initializing insight client",
		zap.String("endpoint", cfg.Endpoint),
		zap.Int("request_timeout_seconds", cfg.RequestTimeout),
	)

	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeoutDuration()},
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

type commentaryRequest struct {
	Year  int                    `json:"year"`
	Stats *domain.DashboardStats `json:"stats"`
}

type commentaryResponse struct {
	Commentary string `json:"commentary"`
}

// Commentary posts the computed stats to the analysis service and returns
// its narrative. Errors are returned to the caller so it can substitute a
// fallback; they never carry partial commentary.
func (c *Client) Commentary(ctx context.Context, year int, stats *domain.DashboardStats) (string, error) {
	if c == nil {
		return "", fmt.Errorf("insight client not configured")
	}

	body, err := json.Marshal(commentaryRequest{Year: year, Stats: stats})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("insight request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("insight service returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var parsed commentaryResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if parsed.Commentary == "" {
		return "", fmt.Errorf("insight service returned empty commentary")
	}

	c.logger.Debug("insight commentary received",
		zap.Int("year", year),
		zap.Duration("latency", time.Since(start)))
	return parsed.Commentary, nil
}
