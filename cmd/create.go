package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"paletteai/internal/app"

	"github.com/spf13/cobra"
)

var (
	createDemo   bool
	createAPIURL string
	createOutDir string
)

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start the interactive palette wizard",
		Long: `Starts the terminal wizard: describe your business in three steps,
generate a palette, then copy colors with c or save the palette image with d.

With --demo the wizard opens directly on the fallback palette from the
configuration, which is handy for trying the result view without a backend.`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}
	cmd.Flags().BoolVar(&createDemo, "demo", false, "Open on the configured fallback palette")
	cmd.Flags().StringVar(&createAPIURL, "api-url", "", "Generation endpoint (overrides client.apiURL)")
	cmd.Flags().StringVarP(&createOutDir, "output-dir", "o", "", "Directory for exported images (overrides client.outputDir)")
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(configPath, debug)
	cfg.Demo = createDemo
	cfg.APIURL = createAPIURL
	cfg.OutputDir = createOutDir

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()
	return application.Run(ctx)
}
