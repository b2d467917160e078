// Package generator talks to the palette generation service.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"paletteai/internal/palette"
	"paletteai/pkg/logging"
)

const subsystem = "Generator"

// DefaultEndpoint is where the bundled backend listens by default.
const DefaultEndpoint = "http://localhost:5000/api/generate-palette"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// ErrMissingPalette is returned when a success response carries no palette.
var ErrMissingPalette = errors.New("response has no palette")

// Generator produces a palette for a form.
type Generator interface {
	Generate(ctx context.Context, form palette.FormInput) (*palette.Palette, error)
}

// StatusError reports a non-success HTTP status from the service.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("generation service returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("generation service returned %d", e.StatusCode)
}

// Response is the service's success body.
type Response struct {
	Palette *palette.Palette `json:"palette"`
}

// errorBody matches the service's failure body.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// HTTPClient posts forms to the generation endpoint. It never retries.
type HTTPClient struct {
	endpoint string
	client   *http.Client
}

// NewHTTPClient returns a client for endpoint. A zero timeout leaves requests
// bounded only by ctx.
func NewHTTPClient(endpoint string, timeout time.Duration) *HTTPClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &HTTPClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the URL requests are sent to.
func (c *HTTPClient) Endpoint() string { return c.endpoint }

// Generate implements Generator.
func (c *HTTPClient) Generate(ctx context.Context, form palette.FormInput) (*palette.Palette, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	logging.Debug(subsystem, "POST %s -> %d in %s", c.endpoint, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Detail: detailOf(respBody)}
	}

	var out Response
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out.Palette == nil {
		return nil, ErrMissingPalette
	}
	return out.Palette, nil
}

func detailOf(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(eb.Detail, &s); err == nil {
		return s
	}
	return string(eb.Detail)
}

// Static always returns the same palette. It backs offline and demo runs.
type Static struct {
	Palette palette.Palette
}

// Generate implements Generator.
func (s Static) Generate(ctx context.Context, _ palette.FormInput) (*palette.Palette, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Palette.IsEmpty() {
		return nil, ErrMissingPalette
	}
	p := s.Palette.Clone()
	return &p, nil
}
