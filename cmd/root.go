package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// configPath and debug are shared by every command that loads configuration.
var (
	configPath string
	debug      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "paletteai",
	Short: "Generate brand color palettes with AI",
	Long: `paletteai walks you through a short questionnaire about your business,
asks an AI backend for a matching color palette and lets you copy the colors
or save the palette as an image.

Run without a subcommand to start the interactive wizard.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. failed generations, unreachable backend)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runCreate,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// SetRepository points self-update at another GitHub "owner/name" project.
// An empty slug keeps the default.
func SetRepository(slug string) {
	if slug != "" {
		githubRepoSlug = slug
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "paletteai version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Load configuration from this file or directory instead of the layered lookup")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
