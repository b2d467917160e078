package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"paletteai/internal/llm"
	"paletteai/internal/palette"
	"paletteai/pkg/logging"
)

// ErrInvalidModelOutput is returned when the completion holds no palette object.
var ErrInvalidModelOutput = errors.New("AI did not return valid JSON.")

// Service turns a form into a palette by prompting an LLM. It is shared by the
// HTTP handler and the MCP tool.
type Service struct {
	provider llm.Provider
	opts     llm.Options
}

// NewService creates a generation service.
func NewService(p llm.Provider, opts llm.Options) *Service {
	return &Service{provider: p, opts: opts}
}

// Generate prompts the provider and decodes the first JSON object of the reply.
func (s *Service) Generate(ctx context.Context, form palette.FormInput) (*palette.Palette, error) {
	start := time.Now()
	defer func() { MetricGenerationDuration.Observe(time.Since(start).Seconds()) }()

	resp, err := s.provider.Complete(ctx, []llm.Message{{Role: "user", Content: BuildPrompt(form)}}, s.opts)
	if err != nil {
		MetricGenerationsTotal.WithLabelValues(outcomeProviderError).Inc()
		return nil, fmt.Errorf("completion via %s: %w", s.provider.Name(), err)
	}

	raw, ok := ExtractJSON(resp.Content)
	if !ok {
		MetricGenerationsTotal.WithLabelValues(outcomeInvalidOutput).Inc()
		logging.Warn("Server", "Model reply carried no JSON object (%d bytes)", len(resp.Content))
		return nil, ErrInvalidModelOutput
	}
	var p palette.Palette
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		MetricGenerationsTotal.WithLabelValues(outcomeInvalidOutput).Inc()
		logging.Warn("Server", "Model reply is not a palette: %v", err)
		return nil, ErrInvalidModelOutput
	}

	MetricGenerationsTotal.WithLabelValues(outcomeSuccess).Inc()
	return &p, nil
}
