package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/autocommit/internal/config"
)

const version = "0.3.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitNoChanges    = 1
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "autocommit",
	Short: "Generate commit messages from staged changes",
	Long:  "Autocommit suggests commit messages for staged changes using a rule-based classifier, falling back to an LLM provider for large diffs.",
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command and returns an exit code.
func Run() int {
	config.LoadEnvFiles()

	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print autocommit version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "autocommit version %s\n", version)
	},
}
