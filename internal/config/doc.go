// Package config provides configuration management for paletteai.
//
// Configuration is layered. Later sources override earlier ones:
//
//  1. Default configuration (defaults.yaml, embedded in the binary)
//     - The generation endpoint, export settings and the fallback palette
//     - Ensures paletteai works out-of-the-box against a local backend
//
//  2. User configuration (~/.config/paletteai/config.yaml)
//
//  3. Project configuration (./.paletteai/config.yaml)
//
//  4. Environment variables (after an optional .env file is loaded)
//
// A single file or directory can be given instead of layers 2 and 3 with
// LoadConfigFromPath.
//
// # Configuration Structure
//
//	client:
//	  apiURL: "http://localhost:5000/api/generate-palette"
//	  timeout: "30s"        # 0 leaves requests unbounded
//	  outputDir: "./exports"
//	  exportScale: 2
//	  footerHost: "brand.example.com"
//	  fallbackPalette:
//	    primary: "#3A86FF"
//	    fontSuggestion: "Inter, sans-serif"
//
//	server:
//	  listen: ":5000"
//	  metricsListen: ":9090"
//	  allowOrigins: ["*"]
//	  rateLimit:
//	    requestsPerSecond: 1.67
//	    burst: 20
//	  mcp:
//	    enabled: true
//	  sentryDSN: ""
//
//	llm:
//	  endpoint: "https://router.huggingface.co/v1"
//	  model: "mistralai/Mistral-7B-Instruct-v0.3"
//	  provider: "novita"
//	  apiKey: "${HF_API_TOKEN}"
//	  maxTokens: 768
//	  temperature: 0.7
//
// # Environment Variable Expansion
//
// Values in configuration files may reference the environment:
//
//	apiKey: "${MY_API_KEY}"
//	outputDir: "${HOME}/palettes"
//	model: "${MODEL:-mistralai/Mistral-7B-Instruct-v0.3}"
//
// # Environment Overrides
//
//	PALETTEAI_API_URL         client.apiURL
//	PALETTEAI_OUTPUT_DIR      client.outputDir
//	PALETTEAI_LISTEN          server.listen
//	PALETTEAI_METRICS_LISTEN  server.metricsListen
//	PALETTEAI_SENTRY_DSN      server.sentryDSN
//	PALETTEAI_LLM_ENDPOINT    llm.endpoint
//	PALETTEAI_LLM_API_KEY     llm.apiKey   (fallback HF_API_TOKEN)
//	PALETTEAI_LLM_MODEL       llm.model    (fallback HF_MODEL)
//	PALETTEAI_LLM_PROVIDER    llm.provider (fallback HF_PROVIDER)
//	PALETTEAI_LOG_LEVEL       logging.level
package config
