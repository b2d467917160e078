package app

import (
	"errors"

	"paletteai/internal/config"
	"paletteai/internal/export"
	"paletteai/internal/generator"
	"paletteai/internal/llm"
	"paletteai/internal/server"
	"paletteai/pkg/logging"
)

// ErrNoFallbackPalette is returned for offline runs without client.fallbackPalette.
var ErrNoFallbackPalette = errors.New("offline mode needs client.fallbackPalette in the configuration")

// Services holds the ports the wizard runs against.
type Services struct {
	Generator generator.Generator
	Exporter  *export.Exporter
}

// InitializeServices builds the generator and exporter from settings.
func InitializeServices(cfg *Config, settings config.PaletteConfig) (*Services, error) {
	var gen generator.Generator
	switch {
	case cfg.Offline:
		if settings.Client.FallbackPalette == nil {
			return nil, ErrNoFallbackPalette
		}
		gen = generator.Static{Palette: settings.Client.FallbackPalette.Clone()}
		logging.Info("Bootstrap", "Offline: serving the fallback palette")
	default:
		// Demo mode still needs the backend for "create new palette".
		client := generator.NewHTTPClient(settings.Client.APIURL, settings.Client.Timeout)
		logging.Debug("Bootstrap", "Generation endpoint: %s", client.Endpoint())
		gen = client
	}

	exp := export.NewExporter(
		export.NewRasterizer(settings.Client.ExportScale),
		export.DirSink{Dir: settings.Client.OutputDir},
		settings.Client.FooterHost,
	)

	return &Services{
		Generator: gen,
		Exporter:  exp,
	}, nil
}

// NewBackend wires the LLM provider, generation service and HTTP server for
// `paletteai serve`.
func NewBackend(settings config.PaletteConfig, version string) (*server.Server, error) {
	provider := llm.NewOpenAIProvider(llm.Config{
		APIKey:      settings.LLM.APIKey,
		Model:       settings.LLM.Model,
		Provider:    settings.LLM.Provider,
		Endpoint:    settings.LLM.Endpoint,
		MaxTokens:   settings.LLM.MaxTokens,
		Temperature: settings.LLM.Temperature,
	})
	if !provider.Available() {
		return nil, errors.New("no LLM API key configured (set PALETTEAI_LLM_API_KEY or HF_API_TOKEN)")
	}
	svc := server.NewService(provider, llm.Options{
		MaxTokens:   settings.LLM.MaxTokens,
		Temperature: settings.LLM.Temperature,
	})
	return server.New(settings.Server, svc, version), nil
}
