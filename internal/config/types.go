package config

import (
	"time"

	"paletteai/internal/palette"
)

// PaletteConfig is the top-level configuration structure for paletteai.
type PaletteConfig struct {
	Client  ClientConfig  `yaml:"client"`
	Server  ServerConfig  `yaml:"server"`
	LLM     LLMConfig     `yaml:"llm"`
	Logging LoggingConfig `yaml:"logging"`
}

// ClientConfig configures the wizard side: where palettes come from and where
// exports go.
type ClientConfig struct {
	APIURL      string        `yaml:"apiURL,omitempty"`
	Timeout     time.Duration `yaml:"timeout,omitempty"`
	OutputDir   string        `yaml:"outputDir,omitempty"`
	ExportScale int           `yaml:"exportScale,omitempty"`
	FooterHost  string        `yaml:"footerHost,omitempty"`
	// FallbackPalette is shown in demo mode and served by the offline generator.
	FallbackPalette *palette.Palette `yaml:"fallbackPalette,omitempty"`
}

// ServerConfig configures the generation backend.
type ServerConfig struct {
	Listen        string          `yaml:"listen,omitempty"`
	MetricsListen string          `yaml:"metricsListen,omitempty"`
	AllowOrigins  []string        `yaml:"allowOrigins,omitempty"`
	RateLimit     RateLimitConfig `yaml:"rateLimit,omitempty"`
	MCP           MCPConfig       `yaml:"mcp,omitempty"`
	SentryDSN     string          `yaml:"sentryDSN,omitempty"`
}

// RateLimitConfig is a per-client token bucket. Zero values disable limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond,omitempty"`
	Burst             int     `yaml:"burst,omitempty"`
}

// Enabled reports whether rate limiting should be enforced.
func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerSecond > 0 && c.Burst > 0
}

// MCPConfig controls the MCP tool endpoint of the backend.
type MCPConfig struct {
	Enabled bool `yaml:"enabled,omitempty"`
	// BaseURL is the externally reachable address advertised to MCP clients.
	// Empty derives it from server.listen.
	BaseURL string `yaml:"baseURL,omitempty"`
}

// LLMConfig selects the chat-completions provider the backend calls.
type LLMConfig struct {
	Endpoint    string  `yaml:"endpoint,omitempty"`
	Model       string  `yaml:"model,omitempty"`
	Provider    string  `yaml:"provider,omitempty"`
	APIKey      string  `yaml:"apiKey,omitempty"`
	MaxTokens   int64   `yaml:"maxTokens,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty"`
}

// LoggingConfig controls log verbosity and the optional TUI log file.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}
