package cmd

import (
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive terminal UI",
		Long: `Opens the interactive terminal UI. This is also what runs when cinematch
is started without a subcommand.

Type part of a title to see up to seven matching suggestions, pick one with
the arrow keys and enter (or click it), then press enter again to ask for
recommendations. Press ctrl+l to show the activity log and ctrl+c to quit.`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	application, err := newApplication()
	if err != nil {
		return err
	}
	return application.Run(cmd.Context())
}
