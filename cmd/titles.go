package cmd

import (
	"cinematch/internal/cli"

	"github.com/spf13/cobra"
)

var (
	titlesOutputFormat string
	titlesQuiet        bool
	titlesLimit        int
)

func newTitlesCmd() *cobra.Command {
	titlesCmd := &cobra.Command{
		Use:   "titles [query]",
		Short: "List known movie titles",
		Long: `Without a query, prints every title the recommendation service knows.

With a query, prints the suggestions the terminal UI would show for it:
titles containing the query, ignoring case, in catalog order, with the
matched text highlighted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTitles,
	}

	titlesCmd.Flags().StringVarP(&titlesOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	titlesCmd.Flags().BoolVarP(&titlesQuiet, "quiet", "q", false, "Suppress non-essential output")
	titlesCmd.Flags().IntVar(&titlesLimit, "limit", 0, "Maximum number of suggestions for a query (default: suggestions.limit)")
	return titlesCmd
}

func runTitles(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(titlesOutputFormat)
	if err != nil {
		return err
	}

	application, err := newApplication()
	if err != nil {
		return err
	}

	limit := titlesLimit
	if limit <= 0 {
		limit = application.Settings().Suggestions.Limit
	}

	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	executor := cli.NewExecutor(application.Service(), cli.ExecutorOptions{
		Format: format,
		Quiet:  titlesQuiet,
		Limit:  limit,
		Out:    cmd.OutOrStdout(),
	})
	return executor.Titles(cmd.Context(), query)
}
