package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const defaultRepoSlug = "paletteai/paletteai"

// githubRepoSlug is the release source, overridable with SetRepository.
var githubRepoSlug = defaultRepoSlug

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update paletteai to the latest version",
		Long: `Checks for the latest release of paletteai on GitHub and, if it is newer
than the running binary, downloads it and replaces the current executable.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	current := rootCmd.Version
	if current == "" || current == "dev" {
		return errors.New("cannot self-update a development version, install a release build instead")
	}

	ctx := context.Background()
	if cmd != nil && cmd.Context() != nil {
		ctx = cmd.Context()
	}

	repo, err := repositorySlug(githubRepoSlug)
	if err != nil {
		return err
	}

	latest, found, err := selfupdate.DetectLatest(ctx, repo)
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s could not be found from github repository", githubRepoSlug)
	}

	if latest.LessOrEqual(current) {
		fmt.Printf("Current version (%s) is the latest\n", current)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}
	fmt.Printf("Successfully updated to version %s\n", latest.Version())
	return nil
}

func repositorySlug(slug string) (selfupdate.RepositorySlug, error) {
	owner, name, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return selfupdate.RepositorySlug{}, fmt.Errorf("invalid release repository %q, want owner/name", slug)
	}
	return selfupdate.ParseSlug(slug), nil
}
