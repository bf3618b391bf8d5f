package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/autocommit/internal/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the message cache",
}

var cacheShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(nil)
		if err != nil {
			return err
		}
		store, path, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}

		stats := store.Stats()
		out := struct {
			Path    string `json:"path"`
			Entries int    `json:"entries"`
			Hits    int    `json:"hits"`
			Misses  int    `json:"misses"`
		}{path, stats.Entries, stats.Hits, stats.Misses}

		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all cached messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(nil)
		if err != nil {
			return err
		}
		store, path, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		store.Clear()
		if err := saveStore(store, path); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Cache cleared.")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheShowCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
