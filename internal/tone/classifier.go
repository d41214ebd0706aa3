// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

// Package tone analyzes the sentiment of a title's genre text through an
// external classifier service and maps the raw model label onto a small
// reader-facing vocabulary. Classifier failures are recoverable: they
// surface as *ClassificationError and callers report the tone as
// unavailable rather than substituting a verdict.
package tone

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/jmorley-dev/catalogus/internal/logging"
	"github.com/jmorley-dev/catalogus/internal/metrics"
)

// MaxInputChars caps the text sent to the classifier. The model's input
// window is fixed, so longer text is truncated, never rejected.
const MaxInputChars = 512

// maxErrorBodySize limits how much of an error response body is read
// for diagnostics.
const maxErrorBodySize = 64 * 1024

// Config holds the classifier service connection settings.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration
}

// Prediction is the raw classifier output for one input text.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier is the classifier exchange: one input text in, one scored
// label out.
type Classifier interface {
	Classify(ctx context.Context, text string) (Prediction, error)
}

// Client talks to the classifier service over HTTP.
type Client struct {
	baseURL        string
	client         *http.Client
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewClient creates a classifier client from config. Timeout defaults to
// 10s, retries to 3 attempts with 1s base backoff.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	retryBaseDelay := cfg.RetryBaseDelay
	if retryBaseDelay <= 0 {
		retryBaseDelay = time.Second
	}

	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		client:         &http.Client{Timeout: timeout},
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

type classifyRequest struct {
	Text string `json:"text"`
}

// Classify sends the text to the classifier and returns its prediction.
// Input longer than MaxInputChars is truncated before sending. Failures
// are wrapped in *ClassificationError.
func (c *Client) Classify(ctx context.Context, text string) (Prediction, error) {
	start := time.Now()

	if runes := []rune(text); len(runes) > MaxInputChars {
		text = string(runes[:MaxInputChars])
	}

	body, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		metrics.RecordClassifierRequest("error", time.Since(start))
		return Prediction{}, &ClassificationError{Op: "encode", Err: err}
	}

	resp, err := c.doRequestWithRateLimit(ctx, c.baseURL+"/classify", body)
	if err != nil {
		metrics.RecordClassifierRequest("error", time.Since(start))
		return Prediction{}, &ClassificationError{Op: "request", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordClassifierRequest("error", time.Since(start))
		errBody := readBodyForError(resp.Body)
		return Prediction{}, &ClassificationError{
			Op:  "request",
			Err: fmt.Errorf("unexpected status %d: %s", resp.StatusCode, errBody),
		}
	}

	var pred Prediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		metrics.RecordClassifierRequest("error", time.Since(start))
		return Prediction{}, &ClassificationError{Op: "decode", Err: err}
	}

	metrics.RecordClassifierRequest("success", time.Since(start))
	return pred, nil
}

// doRequestWithRateLimit posts the payload, retrying HTTP 429 responses
// with exponential backoff. A Retry-After header, when present and
// parseable as seconds, overrides the computed delay.
func (c *Client) doRequestWithRateLimit(ctx context.Context, reqURL string, payload []byte) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		_ = resp.Body.Close()

		if attempt == c.maxRetries {
			lastErr = fmt.Errorf("rate limit exceeded after %d retries (HTTP 429)", c.maxRetries)
			break
		}

		// Exponential backoff: base, 2x, 4x, ...
		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := time.ParseDuration(retryAfter + "s"); err == nil {
				delay = seconds
			}
		}

		logging.Warn().Str("url", reqURL).Dur("delay", delay).Int("attempt", attempt+1).Msg("Classifier rate limited, backing off")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}

// readBodyForError reads a bounded amount of a response body for error
// reporting.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte(fmt.Sprintf("<failed to read body: %v>", err))
	}
	return body
}
