package cmd

import (
	"errors"
	"fmt"
	"strings"

	"cinematch/pkg/logging"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update cinematch to the latest version",
		Long: `Checks for the latest release of cinematch on GitHub and updates the
current binary if a newer version is found.

The release repository is read from update.repository in the configuration
file, as an "owner/name" slug.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	currentVersion := rootCmd.Version
	if currentVersion == "" || currentVersion == "dev" {
		return errors.New("cannot self-update a development version")
	}

	application, err := newApplication()
	if err != nil {
		return err
	}

	slug, err := repositorySlug(application.Settings().Update.Repository)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Current version: %s\n", currentVersion)
	fmt.Fprintf(out, "Checking for updates in %s...\n", slug)

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(slug))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s could not be found in %s", currentVersion, slug)
	}

	if latest.LessOrEqual(currentVersion) {
		fmt.Fprintf(out, "Current version (%s) is the latest.\n", currentVersion)
		return nil
	}

	fmt.Fprintf(out, "Found newer version: %s\n", latest.Version())
	logging.Debug("SelfUpdate", "Downloading %s from %s", latest.AssetName, latest.AssetURL)

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Fprintf(out, "Successfully updated to version %s\n", latest.Version())
	return nil
}

// repositorySlug validates an "owner/name" release repository.
func repositorySlug(repository string) (string, error) {
	repository = strings.TrimSpace(repository)
	if repository == "" {
		return "", errors.New("no release repository configured: set update.repository in the config file")
	}
	owner, name, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", fmt.Errorf("invalid update.repository %q: expected owner/name", repository)
	}
	return repository, nil
}
