// Package cli wires together the Cobra command tree for the autocommit
// binary.
//
// It defines the root command and all subcommands (suggest, commit, config,
// cache, version), binds flags, loads configuration and the persisted cache,
// invokes the generation engine, and returns deterministic exit codes.
package cli
