package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paletteai/internal/app"
	"paletteai/pkg/logging"

	"github.com/fatih/color"
	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
)

var serveListen string

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the palette generation backend",
		Long: `Runs the HTTP backend the wizard talks to. It exposes:

  GET  /                      health message
  POST /api/generate-palette  turns the wizard's answers into a palette via an LLM
  /mcp/                       the generate_palette tool for MCP clients (server.mcp.enabled)

The LLM is any OpenAI-compatible chat completions endpoint; by default the
Hugging Face router. Set PALETTEAI_LLM_API_KEY (or HF_API_TOKEN) before starting.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().StringVar(&serveListen, "listen", "", "Listen address (overrides server.listen)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(configPath, debug)
	logging.InitForCLI(logging.LevelInfo, os.Stderr)

	settings, err := app.LoadSettings(cfg)
	if err != nil {
		return err
	}
	logging.InitForCLI(app.LogLevel(cfg, settings), os.Stderr)
	if serveListen != "" {
		settings.Server.Listen = serveListen
	}

	if dsn := settings.Server.SentryDSN; dsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			Release:          rootCmd.Version,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			logging.Warn("Bootstrap", "Sentry initialization failed: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	srv, err := app.NewBackend(settings, rootCmd.Version)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s listening on %s\n", color.New(color.FgHiMagenta, color.Bold).Sprint("PaletteAI backend"), settings.Server.Listen)
	if settings.Server.MCP.Enabled {
		fmt.Fprintf(out, "  %s MCP tools at /mcp/sse\n", color.New(color.FgCyan).Sprint("•"))
	}
	if settings.Server.MetricsListen != "" {
		fmt.Fprintf(out, "  %s metrics on %s/metrics\n", color.New(color.FgCyan).Sprint("•"), settings.Server.MetricsListen)
	}
	return srv.Run(ctx)
}
