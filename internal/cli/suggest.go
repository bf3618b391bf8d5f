package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/dshills/autocommit/internal/config"
	"github.com/dshills/autocommit/internal/engine"
	"github.com/dshills/autocommit/internal/format"
	"github.com/dshills/autocommit/internal/gitio"
	"github.com/dshills/autocommit/internal/logger"
	"github.com/dshills/autocommit/internal/providers"
)

// Shared generation flags
var (
	flagStyle     string
	flagModel     string
	flagNoCache   bool
	flagAllStyles bool
	flagExplain   bool
	flagVerbose   bool
	flagOut       string
)

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagStyle, "style", "", "Message style (conventional, short, verbose)")
	cmd.Flags().StringVar(&flagModel, "model", "", "Generation path (auto, rules, llm)")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the message cache")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagStyle != "" {
		m["style"] = flagStyle
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagNoCache {
		m["useCache"] = "false"
	}
	return m
}

func loadGenerateConfig() (config.Config, error) {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return config.Config{}, err
	}
	if !format.Valid(format.Style(cfg.Style)) {
		return config.Config{}, fmt.Errorf("invalid style: %s", cfg.Style)
	}
	return cfg, nil
}

// generate runs the engine against the staged diff, with cache load/save
// around the call and a spinner when the LLM path is taken.
func generate(cfg config.Config) (engine.Suggestion, error) {
	log := logger.New(flagVerbose)

	if !gitio.InRepository() {
		return engine.Suggestion{}, fmt.Errorf("not a git repository")
	}

	rawDiff, err := gitio.StagedDiff()
	if err != nil {
		return engine.Suggestion{}, err
	}
	branch := gitio.BranchName()

	store, cachePath, err := openStore(cfg)
	if err != nil {
		return engine.Suggestion{}, err
	}

	eng := engine.New(cfg, store, log)

	var spin *spinner.Spinner
	if eng.RoutesToLLM(len(rawDiff)) {
		spin = spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		spin.Suffix = " Generating commit message..."
		spin.Start()
	}

	suggestion, genErr := eng.Generate(context.Background(), rawDiff, branch)
	if spin != nil {
		spin.Stop()
	}

	if cfg.UseCache {
		if err := saveStore(store, cachePath); err != nil {
			log.Warn().Err(err).Msg("cache not saved")
		}
	}

	return suggestion, genErr
}

func printExplain(s engine.Suggestion) {
	fmt.Fprintf(os.Stderr, "type: %s\n", s.Result.Type)
	if s.Result.Scope != "" {
		fmt.Fprintf(os.Stderr, "scope: %s\n", s.Result.Scope)
	}
	fmt.Fprintf(os.Stderr, "description: %s\n", s.Result.Description)
	fmt.Fprintf(os.Stderr, "source: %s\n", s.Source)
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a commit message for staged changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadGenerateConfig()
		if err != nil {
			return err
		}

		suggestion, err := generate(cfg)
		if err != nil {
			return handleGenerateError(err)
		}

		out := os.Stdout
		if flagOut != "" {
			f, err := os.Create(flagOut)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
			defer f.Close()
			out = f
		}

		if flagAllStyles {
			for _, style := range format.Styles() {
				msg, err := format.Render(suggestion.Result, style)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					exitCode = ExitRuntimeError
					return nil
				}
				fmt.Fprintf(out, "[%s]\n%s\n\n", style, msg)
			}
		} else {
			for _, msg := range suggestion.Messages {
				fmt.Fprintln(out, msg)
			}
		}

		if flagExplain {
			printExplain(suggestion)
		}
		return nil
	},
}

func handleGenerateError(err error) error {
	switch {
	case errors.Is(err, engine.ErrNoChanges):
		fmt.Fprintln(os.Stderr, "No staged changes. Stage some files and try again.")
		exitCode = ExitNoChanges
	case providers.IsAuthError(err):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitAuthError
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
	}
	return nil
}

func init() {
	addGenerateFlags(suggestCmd)
	suggestCmd.Flags().BoolVar(&flagAllStyles, "all-styles", false, "Print the message in every style")
	suggestCmd.Flags().BoolVar(&flagExplain, "explain", false, "Print the classification details to stderr")
	suggestCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
}
