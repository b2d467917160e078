package app

// Config holds the command-line settings that select how the application runs.
type Config struct {
	// ConfigPath loads a single config directory instead of the layered lookup.
	ConfigPath string

	// Debug enables debug logging and debug lines in the activity log.
	Debug bool

	// Demo opens the wizard on the configured fallback palette.
	Demo bool

	// Offline serves the fallback palette instead of calling the backend.
	Offline bool

	// APIURL overrides client.apiURL when set.
	APIURL string

	// OutputDir overrides client.outputDir when set.
	OutputDir string
}

// NewConfig creates a new application configuration
func NewConfig(configPath string, debug bool) *Config {
	return &Config{
		ConfigPath: configPath,
		Debug:      debug,
	}
}
