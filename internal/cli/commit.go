package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/autocommit/internal/gitio"
)

var (
	flagYes    bool
	flagDryRun bool
	flagPush   bool
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Generate a message and commit staged changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadGenerateConfig()
		if err != nil {
			return err
		}

		if cfg.AutoStage {
			if err := gitio.StageAll(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
		}

		suggestion, err := generate(cfg)
		if err != nil {
			return handleGenerateError(err)
		}

		message := suggestion.Message()
		fmt.Fprintln(os.Stdout, message)

		if flagExplain {
			printExplain(suggestion)
		}

		if flagDryRun {
			return nil
		}

		if cfg.ConfirmBeforeCommit && !flagYes {
			if !confirm("Commit with this message?") {
				fmt.Fprintln(os.Stderr, "Aborted.")
				exitCode = ExitNoChanges
				return nil
			}
		}

		if err := gitio.Commit(message); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		fmt.Fprintln(os.Stderr, "Committed.")

		if cfg.AutoPush || flagPush {
			if err := gitio.Push(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
			fmt.Fprintln(os.Stderr, "Pushed.")
		}
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	addGenerateFlags(commitCmd)
	commitCmd.Flags().BoolVar(&flagYes, "yes", false, "Skip the confirmation prompt")
	commitCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the message without committing")
	commitCmd.Flags().BoolVar(&flagPush, "push", false, "Push after committing")
	commitCmd.Flags().BoolVar(&flagExplain, "explain", false, "Print the classification details to stderr")
}
