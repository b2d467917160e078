package cmd

import (
	"context"
	"fmt"
	"os"

	"paletteai/internal/app"
	"paletteai/internal/palette"
	"paletteai/pkg/logging"

	"github.com/spf13/cobra"
)

type generateFlags struct {
	form        palette.FormInput
	interactive bool
	offline     bool
	noExport    bool
	apiURL      string
	outputDir   string
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a palette without the wizard",
		Long: `Generates a palette from command-line flags, prints the swatches and saves
the palette image.

Use --interactive to answer the questions in a prompt instead of passing flags.
With --offline no backend is contacted and the configured fallback palette is
returned.`,
		Example: `  paletteai generate --business-type Startup --industry Technology \
    --audience "Developers" --design-style Modern --usage Website,App`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.form.BusinessType, "business-type", "", "Business type, one of: Startup, Small Business, Corporate, Non-Profit, Personal Brand")
	flags.StringVar(&f.form.Industry, "industry", "", "Industry, e.g. Technology or Healthcare")
	flags.StringVar(&f.form.Audience, "audience", "", "Target audience")
	flags.StringVar(&f.form.DesignStyle, "design-style", "", "Design style, e.g. Modern or Minimalist")
	flags.StringVar(&f.form.ColorPref, "color-pref", "", "Color preference: Warm, Cool or Neutral")
	flags.StringSliceVar(&f.form.Usage, "usage", nil, "Where the palette will be used (comma separated)")
	flags.BoolVarP(&f.interactive, "interactive", "i", false, "Ask for the fields in a prompt")
	flags.BoolVar(&f.offline, "offline", false, "Return the fallback palette without calling the backend")
	flags.BoolVar(&f.noExport, "no-export", false, "Only print the palette, do not write an image")
	flags.StringVar(&f.apiURL, "api-url", "", "Generation endpoint (overrides client.apiURL)")
	flags.StringVarP(&f.outputDir, "output-dir", "o", "", "Directory for the exported image (overrides client.outputDir)")
	return cmd
}

func runGenerate(cmd *cobra.Command, f generateFlags) error {
	level := logging.LevelWarn
	if debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, os.Stderr)

	cfg := app.NewConfig(configPath, debug)
	cfg.Offline = f.offline
	cfg.APIURL = f.apiURL
	cfg.OutputDir = f.outputDir

	settings, err := app.LoadSettings(cfg)
	if err != nil {
		return err
	}
	services, err := app.InitializeServices(cfg, settings)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	form := f.form
	if f.interactive {
		form, err = app.PromptForm(ctx, form)
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
	}

	return app.RunGenerate(ctx, services, app.GenerateOptions{
		Form:     form,
		NoExport: f.noExport,
		Out:      cmd.OutOrStdout(),
	})
}
