// Package config loads and merges autocommit configuration from multiple
// sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (AUTOCOMMIT_STYLE, AUTOCOMMIT_MODEL, etc.)
//  3. Config file ($XDG_CONFIG_HOME/autocommit/config.json)
//  4. Built-in defaults
//
// API keys for the LLM path are read from the environment, with .env files
// (working directory, then ~/.autocommit/.env) loaded first via godotenv.
package config
