package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var profileFile string

//nolint:gochecknoglobals // Cobra boilerplate
var jsonLogs bool

//nolint:gochecknoglobals // Cobra boilerplate
var debugLogs bool

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "cv-tailor",
	Short: "Tailor a CV and cover letter to a job posting",
	Long: `cv-tailor reads a job posting, works out what the role emphasises and
selects the most relevant experience from your profile.

It writes a LaTeX CV, a cover letter (plain text and LaTeX) and, when a
typesetter is installed, the matching PDFs.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.cv-tailor/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&profileFile, "profile", "", "Profile file (default from config, else the built-in sample)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "Log as JSON")
	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "Log pipeline decisions at debug level")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}
