package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPaths points the user and project layers into dir and clears the
// environment for the duration of the test.
func mockPaths(t *testing.T, dir string, env map[string]string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	originalGetenv := osGetenv
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
		osGetenv = originalGetenv
	})

	getUserConfigPath = func() (string, error) {
		return filepath.Join(dir, "user", configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(dir, "project", configFileName), nil
	}
	osGetenv = func(k string) string { return env[k] }
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.Equal(t, "http://localhost:5000/api/generate-palette", cfg.Client.APIURL)
	assert.Equal(t, time.Duration(0), cfg.Client.Timeout)
	assert.Equal(t, 2, cfg.Client.ExportScale)
	assert.Equal(t, ":5000", cfg.Server.Listen)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowOrigins)
	assert.True(t, cfg.Server.RateLimit.Enabled())
	assert.False(t, cfg.Server.MCP.Enabled)
	assert.Equal(t, "mistralai/Mistral-7B-Instruct-v0.3", cfg.LLM.Model)
	assert.Equal(t, "novita", cfg.LLM.Provider)
	assert.Equal(t, int64(768), cfg.LLM.MaxTokens)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 1e-9)

	require.NotNil(t, cfg.Client.FallbackPalette)
	fb := cfg.Client.FallbackPalette
	assert.Equal(t, "#3A86FF", fb.Primary)
	assert.Equal(t, "#10B981", fb.Success)
	assert.Equal(t, "Inter, sans-serif", fb.FontSuggestion)
	require.Len(t, fb.ColorNamesDetailed, 8)
	assert.Equal(t, "Emerald", fb.ColorNamesDetailed[7].Name)
	assert.Len(t, fb.ColorPsychology, 8)
}

func TestGetDefaultConfig_IndependentCopies(t *testing.T) {
	a := GetDefaultConfig()
	a.Client.FallbackPalette.Primary = "#000000"
	b := GetDefaultConfig()
	assert.Equal(t, "#3A86FF", b.Client.FallbackPalette.Primary)
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockPaths(t, t.TempDir(), nil)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
}

func TestLoadConfig_Layering(t *testing.T) {
	dir := t.TempDir()
	mockPaths(t, dir, nil)

	writeConfig(t, filepath.Join(dir, "user", configFileName), `
client:
  apiURL: "https://user.example.com/api/generate-palette"
  outputDir: "/tmp/user-exports"
  timeout: "15s"
llm:
  model: "user/model"
`)
	writeConfig(t, filepath.Join(dir, "project", configFileName), `
client:
  outputDir: "./exports"
  fallbackPalette:
    primary: "#000000"
server:
  mcp:
    enabled: true
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://user.example.com/api/generate-palette", loaded.Client.APIURL, "user overrides default")
	assert.Equal(t, "./exports", loaded.Client.OutputDir, "project overrides user")
	assert.Equal(t, 15*time.Second, loaded.Client.Timeout)
	assert.Equal(t, "user/model", loaded.LLM.Model)
	assert.Equal(t, "novita", loaded.LLM.Provider, "untouched values keep defaults")
	assert.True(t, loaded.Server.MCP.Enabled)

	require.NotNil(t, loaded.Client.FallbackPalette)
	assert.Equal(t, "#000000", loaded.Client.FallbackPalette.Primary)
	assert.Empty(t, loaded.Client.FallbackPalette.Secondary, "fallback palette is replaced wholesale")
}

func TestLoadConfig_EnvOverridesFiles(t *testing.T) {
	dir := t.TempDir()
	mockPaths(t, dir, map[string]string{
		"PALETTEAI_API_URL":    "http://env.example.com/generate",
		"PALETTEAI_LISTEN":     ":8080",
		"HF_API_TOKEN":         "hf_fallback",
		"PALETTEAI_LLM_MODEL":  "env/model",
		"HF_MODEL":             "ignored/model",
		"PALETTEAI_LOG_LEVEL":  "debug",
		"PALETTEAI_SENTRY_DSN": "https://key@sentry.example.com/1",
	})
	writeConfig(t, filepath.Join(dir, "project", configFileName), `
client:
  apiURL: "http://project.example.com/generate"
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com/generate", loaded.Client.APIURL)
	assert.Equal(t, ":8080", loaded.Server.Listen)
	assert.Equal(t, "hf_fallback", loaded.LLM.APIKey)
	assert.Equal(t, "env/model", loaded.LLM.Model, "PALETTEAI_ variables win over HF_ fallbacks")
	assert.Equal(t, "debug", loaded.Logging.Level)
	assert.Equal(t, "https://key@sentry.example.com/1", loaded.Server.SentryDSN)
}

func TestLoadConfig_ExpandsVariables(t *testing.T) {
	dir := t.TempDir()
	mockPaths(t, dir, map[string]string{"MY_KEY": "secret"})
	writeConfig(t, filepath.Join(dir, "user", configFileName), `
llm:
  apiKey: "${MY_KEY}"
  model: "${MISSING_MODEL:-fallback/model}"
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "secret", loaded.LLM.APIKey)
	assert.Equal(t, "fallback/model", loaded.LLM.Model)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	mockPaths(t, dir, nil)
	writeConfig(t, filepath.Join(dir, "user", configFileName), "client: [unclosed")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading user config")
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	dir := t.TempDir()
	mockPaths(t, dir, nil)
	writeConfig(t, filepath.Join(dir, "project", configFileName), `
client:
  apiURL: "not a url"
  exportScale: 9
llm:
  temperature: 3.5
`)

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client.apiURL")
	assert.Contains(t, err.Error(), "client.exportScale")
	assert.Contains(t, err.Error(), "llm.temperature")
}

func TestLoadConfigFromPath(t *testing.T) {
	dir := t.TempDir()
	mockPaths(t, dir, nil)
	writeConfig(t, filepath.Join(dir, "custom", configFileName), `
client:
  footerHost: "brand.example.com"
`)

	fromDir, err := LoadConfigFromPath(filepath.Join(dir, "custom"))
	require.NoError(t, err)
	assert.Equal(t, "brand.example.com", fromDir.Client.FooterHost)

	fromFile, err := LoadConfigFromPath(filepath.Join(dir, "custom", configFileName))
	require.NoError(t, err)
	assert.Equal(t, fromDir, fromFile)

	_, err = LoadConfigFromPath(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestMergeConfigs_RateLimitReplacedTogether(t *testing.T) {
	base := GetDefaultConfig()
	overlay := PaletteConfig{Server: ServerConfig{RateLimit: RateLimitConfig{RequestsPerSecond: 10, Burst: 1}}}

	merged := mergeConfigs(base, overlay)
	assert.Equal(t, RateLimitConfig{RequestsPerSecond: 10, Burst: 1}, merged.Server.RateLimit)
	assert.Equal(t, base.Server.Listen, merged.Server.Listen)
}

func TestExpandEnv(t *testing.T) {
	env := map[string]string{"HOME": "/home/me"}
	get := func(k string) string { return env[k] }

	assert.Equal(t, "/home/me/palettes", expandEnv("${HOME}/palettes", get))
	assert.Equal(t, "x", expandEnv("${NOPE:-x}", get))
	assert.Equal(t, "", expandEnv("${NOPE}", get))
}

func TestGetUserConfigDir(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()
	osUserHomeDir = func() (string, error) { return "/home/test", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/test", ".config", "paletteai"), dir)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PALETTEAI_TEST_DOTENV=loaded\n"), 0644))
	t.Setenv("PALETTEAI_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("PALETTEAI_TEST_DOTENV"))

	LoadDotEnv(path, filepath.Join(dir, "missing.env"))
	assert.Equal(t, "loaded", os.Getenv("PALETTEAI_TEST_DOTENV"))
}
