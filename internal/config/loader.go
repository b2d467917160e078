package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osGetenv = os.Getenv

const (
	userConfigDir    = ".config/paletteai"
	projectConfigDir = ".paletteai"
	configFileName   = "config.yaml"
)

// LoadDotEnv loads KEY=value pairs from the given files (default ".env") into
// the process environment without overriding variables that are already set.
// Missing files are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}

// LoadConfig loads the paletteai configuration by layering default, user,
// project and environment settings.
func LoadConfig() (PaletteConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return PaletteConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = mergeConfigs(config, userConfig)
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return PaletteConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	// 4. Environment
	applyEnv(&config, osGetenv)

	return config, validate(config)
}

// LoadConfigFromPath loads a single configuration file on top of the defaults.
// path may name the file itself or a directory containing config.yaml.
func LoadConfigFromPath(path string) (PaletteConfig, error) {
	info, err := os.Stat(path)
	if err != nil {
		return PaletteConfig{}, fmt.Errorf("config path %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, configFileName)
	}

	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return PaletteConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), overlay)
	applyEnv(&config, osGetenv)
	return config, validate(config)
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a PaletteConfig from a YAML file, expanding
// ${VAR} and ${VAR:-default} references first.
func loadConfigFromFile(filePath string) (PaletteConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return PaletteConfig{}, err
	}
	return parseConfig([]byte(expandEnv(string(data), osGetenv)))
}

func parseConfig(data []byte) (PaletteConfig, error) {
	var config PaletteConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return PaletteConfig{}, err
	}
	return config, nil
}

func expandEnv(s string, getenv func(string) string) string {
	return os.Expand(s, func(key string) string {
		name, def, hasDefault := strings.Cut(key, ":-")
		if v := getenv(name); v != "" {
			return v
		}
		if hasDefault {
			return def
		}
		return ""
	})
}

// mergeConfigs merges 'overlay' config into 'base' config. Non-zero overlay
// values win.
func mergeConfigs(base, overlay PaletteConfig) PaletteConfig {
	merged := base

	// Client
	mergeString(&merged.Client.APIURL, overlay.Client.APIURL)
	mergeString(&merged.Client.OutputDir, overlay.Client.OutputDir)
	mergeString(&merged.Client.FooterHost, overlay.Client.FooterHost)
	if overlay.Client.Timeout != 0 {
		merged.Client.Timeout = overlay.Client.Timeout
	}
	if overlay.Client.ExportScale != 0 {
		merged.Client.ExportScale = overlay.Client.ExportScale
	}
	// The fallback palette is replaced wholesale, never merged slot by slot.
	if overlay.Client.FallbackPalette != nil {
		p := overlay.Client.FallbackPalette.Clone()
		merged.Client.FallbackPalette = &p
	}

	// Server
	mergeString(&merged.Server.Listen, overlay.Server.Listen)
	mergeString(&merged.Server.MetricsListen, overlay.Server.MetricsListen)
	mergeString(&merged.Server.SentryDSN, overlay.Server.SentryDSN)
	if len(overlay.Server.AllowOrigins) > 0 {
		merged.Server.AllowOrigins = append([]string(nil), overlay.Server.AllowOrigins...)
	}
	if overlay.Server.RateLimit != (RateLimitConfig{}) {
		merged.Server.RateLimit = overlay.Server.RateLimit
	}
	if overlay.Server.MCP.Enabled {
		merged.Server.MCP.Enabled = true
	}
	mergeString(&merged.Server.MCP.BaseURL, overlay.Server.MCP.BaseURL)

	// LLM
	mergeString(&merged.LLM.Endpoint, overlay.LLM.Endpoint)
	mergeString(&merged.LLM.Model, overlay.LLM.Model)
	mergeString(&merged.LLM.Provider, overlay.LLM.Provider)
	mergeString(&merged.LLM.APIKey, overlay.LLM.APIKey)
	if overlay.LLM.MaxTokens != 0 {
		merged.LLM.MaxTokens = overlay.LLM.MaxTokens
	}
	if overlay.LLM.Temperature != 0 {
		merged.LLM.Temperature = overlay.LLM.Temperature
	}

	// Logging
	mergeString(&merged.Logging.Level, overlay.Logging.Level)
	mergeString(&merged.Logging.File, overlay.Logging.File)

	return merged
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// applyEnv overrides file settings from the environment.
func applyEnv(cfg *PaletteConfig, getenv func(string) string) {
	first := func(keys ...string) string {
		for _, k := range keys {
			if v := getenv(k); v != "" {
				return v
			}
		}
		return ""
	}
	mergeString(&cfg.Client.APIURL, first("PALETTEAI_API_URL"))
	mergeString(&cfg.Client.OutputDir, first("PALETTEAI_OUTPUT_DIR"))
	mergeString(&cfg.Server.Listen, first("PALETTEAI_LISTEN"))
	mergeString(&cfg.Server.MetricsListen, first("PALETTEAI_METRICS_LISTEN"))
	mergeString(&cfg.Server.SentryDSN, first("PALETTEAI_SENTRY_DSN"))
	mergeString(&cfg.LLM.Endpoint, first("PALETTEAI_LLM_ENDPOINT"))
	mergeString(&cfg.LLM.APIKey, first("PALETTEAI_LLM_API_KEY", "HF_API_TOKEN"))
	mergeString(&cfg.LLM.Model, first("PALETTEAI_LLM_MODEL", "HF_MODEL"))
	mergeString(&cfg.LLM.Provider, first("PALETTEAI_LLM_PROVIDER", "HF_PROVIDER"))
	mergeString(&cfg.Logging.Level, first("PALETTEAI_LOG_LEVEL"))
}

// validate reports every invalid setting at once.
func validate(cfg PaletteConfig) error {
	var errs []error
	if u, err := url.Parse(cfg.Client.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("client.apiURL %q is not an absolute URL", cfg.Client.APIURL))
	}
	if cfg.Client.Timeout < 0 {
		errs = append(errs, fmt.Errorf("client.timeout must not be negative"))
	}
	if cfg.Client.ExportScale < 1 || cfg.Client.ExportScale > 4 {
		errs = append(errs, fmt.Errorf("client.exportScale %d out of range 1-4", cfg.Client.ExportScale))
	}
	if cfg.Server.RateLimit.RequestsPerSecond < 0 || cfg.Server.RateLimit.Burst < 0 {
		errs = append(errs, fmt.Errorf("server.rateLimit values must not be negative"))
	}
	if cfg.LLM.MaxTokens < 0 {
		errs = append(errs, fmt.Errorf("llm.maxTokens must not be negative"))
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		errs = append(errs, fmt.Errorf("llm.temperature %.2f out of range 0-2", cfg.LLM.Temperature))
	}
	return errors.Join(errs...)
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
