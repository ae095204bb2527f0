package cmd

import (
	"os"

	"cinematch/internal/app"

	"github.com/spf13/cobra"
)

var (
	configPath string
	baseURL    string
	debugMode  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cinematch",
	Short: "Find movies similar to the ones you like",
	Long: `cinematch asks a recommendation service for movies similar to a title
you pick. Run without arguments to open the interactive terminal UI, where
titles autocomplete as you type, or use the recommend and titles commands
for scripting.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. blank titles, an unreachable service)
	SilenceUsage: true,
	RunE:         runBrowse,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "cinematch version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newApplication bootstraps configuration, logging and the service client
// from the persistent flags.
func newApplication() (*app.Application, error) {
	return app.NewApplication(app.NewConfig(debugMode, configPath, baseURL))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: layered ~/.config/cinematch and ./.cinematch)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Recommendation service address, overrides service.baseURL")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newRecommendCmd())
	rootCmd.AddCommand(newTitlesCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
