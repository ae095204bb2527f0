package cmd

import (
	"strings"

	"cinematch/internal/cli"

	"github.com/spf13/cobra"
)

var (
	recommendOutputFormat string
	recommendQuiet        bool
)

func newRecommendCmd() *cobra.Command {
	recommendCmd := &cobra.Command{
		Use:   "recommend <title...>",
		Short: "Print recommendations for a movie",
		Long: `Asks the recommendation service for movies similar to the given title
and prints them.

All arguments are joined with single spaces, so quoting the title is optional:

  cinematch recommend The Matrix
  cinematch recommend "The Matrix" -o json

A blank title is rejected with a non-zero exit code. A title the service
knows nothing about prints a notice and exits successfully.`,
		RunE: runRecommend,
	}

	recommendCmd.Flags().StringVarP(&recommendOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	recommendCmd.Flags().BoolVarP(&recommendQuiet, "quiet", "q", false, "Suppress non-essential output")
	return recommendCmd
}

func runRecommend(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(recommendOutputFormat)
	if err != nil {
		return err
	}

	application, err := newApplication()
	if err != nil {
		return err
	}

	executor := cli.NewExecutor(application.Service(), cli.ExecutorOptions{
		Format: format,
		Quiet:  recommendQuiet,
		Out:    cmd.OutOrStdout(),
	})
	return executor.Recommend(cmd.Context(), strings.Join(args, " "))
}
